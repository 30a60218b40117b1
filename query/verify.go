package query

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/emeraldsearch/bitpart/internal/debugassert"
	"github.com/emeraldsearch/bitpart/metric"
)

// Result pairs a dataset point with its verified distance to the query.
type Result[T any] struct {
	Point    T
	Distance float64
}

// Verify scans candidates in ascending position order, computes the exact
// distance to q for each, and keeps those at or under t. It never produces
// a false positive and never drops a true answer that reached it — the
// soundness/completeness split BitPart promises is: Combine is sound but
// not complete, Verify makes the final result complete.
func Verify[T any](m metric.Metric[T], dataset []T, candidates *bitset.BitSet, q T, t float64) []Result[T] {
	m = debugassert.WrapMetric(m)

	var results []Result[T]
	for i, ok := candidates.NextSet(0); ok; i, ok = candidates.NextSet(i + 1) {
		d := m.Distance(q, dataset[i])
		if d <= t {
			results = append(results, Result[T]{Point: dataset[i], Distance: d})
		}
	}

	return results
}

// VerifyAt is Verify for a block-scoped candidate set: candidates is
// indexed from 0 within the block, but dataset positions are offset by
// offset. Results within a block are emitted in ascending column order;
// BitPart makes no ordering guarantee across blocks.
func VerifyAt[T any](m metric.Metric[T], dataset []T, candidates *bitset.BitSet, offset uint, q T, t float64) []Result[T] {
	m = debugassert.WrapMetric(m)

	var results []Result[T]
	for i, ok := candidates.NextSet(0); ok; i, ok = candidates.NextSet(i + 1) {
		pos := offset + i
		d := m.Distance(q, dataset[pos])
		if d <= t {
			results = append(results, Result[T]{Point: dataset[pos], Distance: d})
		}
	}

	return results
}
