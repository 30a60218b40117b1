package fixtures

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Square returns the five-point 2-D dataset the seed scenarios are defined
// against: a unit square plus one far outlier.
func Square() [][]float64 {
	return [][]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
		{5, 5},
	}
}

// UniformRandom draws n points of dim dimensions, each coordinate
// independently uniform over [low, high). seed fixes the draw so a test
// run is reproducible; distuv.Uniform is the same generator family
// gonum's own test suites use for synthetic inputs.
func UniformRandom(n, dim int, low, high float64, seed uint64) [][]float64 {
	dist := distuv.Uniform{
		Min: low,
		Max: high,
		Src: rand.New(rand.NewSource(int64(seed))),
	}

	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, dim)
		for j := range p {
			p[j] = dist.Rand()
		}
		points[i] = p
	}

	return points
}
