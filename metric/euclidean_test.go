package metric_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emeraldsearch/bitpart/metric"
)

func TestEuclidean_Distance(t *testing.T) {
	var e metric.Euclidean

	cases := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identity", []float64{0, 0}, []float64{0, 0}, 0},
		{"unit axis", []float64{0, 0}, []float64{1, 0}, 1},
		{"diagonal", []float64{0, 0}, []float64{1, 1}, 1.4142135623730951},
		{"symmetry", []float64{5, 5}, []float64{0, 0}, 7.0710678118654755},
		{"far apart", []float64{0, 0}, []float64{5, 5}, 7.0710678118654755},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, e.Distance(tc.a, tc.b), 1e-9)
			// symmetry: d(a,b) == d(b,a)
			require.InDelta(t, e.Distance(tc.a, tc.b), e.Distance(tc.b, tc.a), 1e-9)
		})
	}
}

func TestEuclidean_TriangleInequality(t *testing.T) {
	var e metric.Euclidean
	a := []float64{0, 0}
	b := []float64{1, 0}
	c := []float64{1, 1}

	require.LessOrEqual(t, e.Distance(a, c), e.Distance(a, b)+e.Distance(b, c))
}

func TestEuclidean_MismatchedLength(t *testing.T) {
	var e metric.Euclidean
	require.InDelta(t, 1.0, e.Distance([]float64{0, 0}, []float64{0, 0, 1}), 1e-9)
}

func TestFunc_AdaptsPlainFunction(t *testing.T) {
	calls := 0
	m := metric.Func[int](func(a, b int) float64 {
		calls++
		if a > b {
			return float64(a - b)
		}
		return float64(b - a)
	})

	require.Equal(t, 3.0, m.Distance(2, 5))
	require.Equal(t, 1, calls)
}
