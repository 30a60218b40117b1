package query

import (
	"github.com/emeraldsearch/bitpart/metric"
	"github.com/emeraldsearch/bitpart/zone"
)

// RangeSearch runs the full classify/combine/verify pipeline against a
// single RowSource and returns the verified result set. Backends with no
// block structure (the sequential index) call this directly; blocked
// backends call Classify and then Combine/VerifyAt per block.
func RangeSearch[T any](m metric.Metric[T], zones []zone.Zone[T], rs RowSource, dataset []T, q T, t float64) []Result[T] {
	in, out := Classify(m, zones, q, t)
	candidates := Combine(rs, in, out)

	return Verify(m, dataset, candidates, q, t)
}
