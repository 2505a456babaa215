package index

import "math"

// vectorIndex holds one L2-normalized sparse tf-idf vector per document plus
// the collection's smoothed inverse document frequencies. It is a pure
// function of the document set and is rebuilt in full after every mutation.
type vectorIndex struct {
	idf     map[string]float64
	vectors []map[string]float64
}

// buildVectorIndex builds the vector-space index over tokenized documents.
func buildVectorIndex(tokenized [][]string) *vectorIndex {
	n := len(tokenized)
	df := make(map[string]int)
	for _, terms := range tokenized {
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	// Smoothed idf keeps unseen-document counts from zeroing weights.
	idf := make(map[string]float64, len(df))
	for t, d := range df {
		idf[t] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	vectors := make([]map[string]float64, n)
	for i, terms := range tokenized {
		vectors[i] = termVector(terms, idf)
	}
	return &vectorIndex{idf: idf, vectors: vectors}
}

// Score returns the cosine similarity between the query and every document,
// in document insertion order. Query terms outside the vocabulary contribute
// nothing.
func (v *vectorIndex) Score(queryTokens []string) []float64 {
	q := termVector(queryTokens, v.idf)
	scores := make([]float64, len(v.vectors))
	if len(q) == 0 {
		return scores
	}
	for i, dv := range v.vectors {
		var dot float64
		for t, w := range q {
			dot += w * dv[t]
		}
		scores[i] = dot
	}
	return scores
}

// termVector builds an L2-normalized tf-idf weight vector for the given
// terms. Terms without an idf entry are skipped. Since both document and
// query vectors are unit length, their dot product is the cosine similarity.
func termVector(terms []string, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64)
	for _, t := range terms {
		if w, ok := idf[t]; ok {
			vec[t] += w
		}
	}
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return vec
	}
	norm := 1 / math.Sqrt(sum)
	for t := range vec {
		vec[t] *= norm
	}
	return vec
}
