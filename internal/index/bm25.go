package index

import "math"

// Okapi BM25 parameters: term-frequency saturation (k1) and document-length
// normalization (b).
const (
	okapiK1 = 1.5
	okapiB  = 0.75
)

// okapiIndex holds per-document term frequencies, document lengths, and the
// collection-wide average length needed for Okapi BM25 scoring. Like the
// vector index, it is rebuilt in full after every mutation.
type okapiIndex struct {
	termFreqs []map[string]int
	docLens   []int
	docFreqs  map[string]int
	avgLen    float64
	n         int
}

// buildOkapiIndex builds the probabilistic index over tokenized documents.
func buildOkapiIndex(tokenized [][]string) *okapiIndex {
	n := len(tokenized)
	idx := &okapiIndex{
		termFreqs: make([]map[string]int, n),
		docLens:   make([]int, n),
		docFreqs:  make(map[string]int),
		n:         n,
	}
	var totalLen int
	for i, terms := range tokenized {
		tf := make(map[string]int, len(terms))
		for _, t := range terms {
			tf[t]++
		}
		for t := range tf {
			idx.docFreqs[t]++
		}
		idx.termFreqs[i] = tf
		idx.docLens[i] = len(terms)
		totalLen += len(terms)
	}
	if n > 0 {
		idx.avgLen = float64(totalLen) / float64(n)
	}
	return idx
}

// Score returns the BM25 relevance of the query against every document, in
// document insertion order. The non-negative idf variant is used so scores
// never drop below zero for very common terms.
func (o *okapiIndex) Score(queryTokens []string) []float64 {
	scores := make([]float64, o.n)
	if o.avgLen == 0 {
		return scores
	}
	for _, term := range queryTokens {
		df := o.docFreqs[term]
		if df == 0 {
			continue
		}
		idf := math.Log(1 + (float64(o.n)-float64(df)+0.5)/(float64(df)+0.5))
		for i := 0; i < o.n; i++ {
			tf := float64(o.termFreqs[i][term])
			if tf == 0 {
				continue
			}
			lenNorm := 1 - okapiB + okapiB*float64(o.docLens[i])/o.avgLen
			scores[i] += idf * tf * (okapiK1 + 1) / (tf + okapiK1*lenNorm)
		}
	}
	return scores
}
