package oracle

import (
	"sort"

	"github.com/emeraldsearch/bitpart/metric"
	"github.com/emeraldsearch/bitpart/query"
)

// RangeSearch computes the exact range-search answer by scanning every
// point in dataset and keeping those within t of q. It makes no use of
// zones, bitsets or blocks — the only thing a test should trust it for is
// correctness, not speed.
func RangeSearch[T any](m metric.Metric[T], dataset []T, q T, t float64) []query.Result[T] {
	var results []query.Result[T]
	for _, p := range dataset {
		d := m.Distance(q, p)
		if d <= t {
			results = append(results, query.Result[T]{Point: p, Distance: d})
		}
	}

	return results
}

// SortByDistance orders results by ascending distance, breaking ties by
// the order they appear in results. It exists only so tests can compare
// an oracle answer against a backend's answer without caring about either
// one's internal iteration order.
func SortByDistance[T any](results []query.Result[T]) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
}
