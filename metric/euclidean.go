package metric

import "math"

// Euclidean is the reference metric over fixed- or variable-length
// coordinate vectors: sqrt(sum((a_i - b_i)^2)).
//
// If a and b differ in length, the shorter vector is treated as implicitly
// zero-padded — this keeps Euclidean total over []float64 without forcing
// every caller to pre-validate dimensionality, at the cost of silently
// tolerating mismatched inputs. No dimension check is made anywhere; a
// query whose length differs from the dataset's is padded the same way.
type Euclidean struct{}

// Distance implements Metric[[]float64].
func (Euclidean) Distance(a, b []float64) float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	var sum float64
	for i := 0; i < n; i++ {
		var av, bv float64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		d := av - bv
		sum += d * d
	}

	return math.Sqrt(sum)
}
