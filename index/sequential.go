package index

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/emeraldsearch/bitpart/metric"
	"github.com/emeraldsearch/bitpart/partition"
	"github.com/emeraldsearch/bitpart/query"
	"github.com/emeraldsearch/bitpart/zone"
)

// Sequential is the single-threaded, fully in-memory backend: one
// contiguous bitset per zone, queried with a single pass over full-length
// rows. It never spawns a goroutine.
type Sequential[T any] struct {
	metric  metric.Metric[T]
	dataset []T
	zones   []zone.Zone[T]
	rows    []*bitset.BitSet
}

// NewSequential builds a Sequential index from an already-computed
// partitioning model.
func NewSequential[T any](m metric.Metric[T], dataset []T, model *partition.Model[T]) *Sequential[T] {
	return &Sequential[T]{
		metric:  m,
		dataset: dataset,
		zones:   model.Zones,
		rows:    model.Rows,
	}
}

// RangeSearch implements Index[T].
func (s *Sequential[T]) RangeSearch(q T, t float64) []query.Result[T] {
	rs := fullRowSource{rows: s.rows, n: uint(len(s.dataset))}
	return query.RangeSearch(s.metric, s.zones, rs, s.dataset, q, t)
}

// Len implements Index[T].
func (s *Sequential[T]) Len() int { return len(s.dataset) }

// IsEmpty implements Index[T].
func (s *Sequential[T]) IsEmpty() bool { return len(s.dataset) == 0 }

// Zones implements Index[T].
func (s *Sequential[T]) Zones() int { return len(s.zones) }
