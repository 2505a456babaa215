package index

// Blend weights are fixed design constants favoring the vector-space signal.
const (
	vectorWeight = 0.6
	okapiWeight  = 0.4
)

// NormalizeByMax divides every score by the maximum, in place, equalizing
// the dynamic range of unrelated scoring scales before blending. When the
// maximum is not positive the scores are left untouched.
func NormalizeByMax(scores []float64) {
	var max float64
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	if max <= 0 {
		return
	}
	for i := range scores {
		scores[i] /= max
	}
}

// Blend combines normalized vector-space and Okapi scores per document.
// Inputs must be the same length and in document insertion order.
func Blend(vector, okapi []float64) []float64 {
	combined := make([]float64, len(vector))
	for i := range combined {
		combined[i] = vectorWeight*vector[i] + okapiWeight*okapi[i]
	}
	return combined
}
