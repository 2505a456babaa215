package models

// Retrieval is the outcome of one pipeline retrieval call. Confidence is the
// top blended score, or 0 when no document matched.
type Retrieval struct {
	Results    []*ScoredDocument `json:"results"`
	Confidence float64           `json:"confidence"`
}

// Answer is a composed response with its provenance.
type Answer struct {
	Answer     string   `json:"answer"`
	Sources    []Source `json:"sources"`
	Confidence float64  `json:"confidence"`
}

// Page is a fetched web page reduced to readable text.
type Page struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// WebResult is a single web search hit.
type WebResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}
