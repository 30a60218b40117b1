package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emeraldsearch/bitpart/internal/oracle"
	"github.com/emeraldsearch/bitpart/metric"
)

func TestRangeSearch_LinearScan(t *testing.T) {
	d := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {5, 5}}
	e := metric.Euclidean{}

	results := oracle.RangeSearch(e, d, []float64{0, 0}, 1.5)
	require.Len(t, results, 4)
}

func TestSortByDistance_Ascending(t *testing.T) {
	d := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {5, 5}}
	e := metric.Euclidean{}

	results := oracle.RangeSearch(e, d, []float64{0, 0}, 10)
	oracle.SortByDistance(results)

	for i := 1; i < len(results); i++ {
		require.LessOrEqual(t, results[i-1].Distance, results[i].Distance)
	}
}
