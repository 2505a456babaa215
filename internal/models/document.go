// Package models defines core data structures for documents, retrieval results, and answers.
package models

import "time"

// Source type values for Document.SourceType.
const (
	SourceLocal = "local"
	SourceWeb   = "web"
)

// Document is a stored knowledge-base record. Text is the only field that
// changes after creation (via Store.Update); documents are never deleted.
type Document struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	URL        string    `json:"url"`
	SourceType string    `json:"source_type"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// ScoredDocument is a single search hit with its blended and component scores.
type ScoredDocument struct {
	Document    *Document `json:"document"`
	Score       float64   `json:"score"`
	VectorScore float64   `json:"vector_score"`
	OkapiScore  float64   `json:"okapi_score"`
}

// Source identifies a document surfaced in an answer's provenance list.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
