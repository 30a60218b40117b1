package index

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/emeraldsearch/bitpart/metric"
	"github.com/emeraldsearch/bitpart/partition"
	"github.com/emeraldsearch/bitpart/query"
	"github.com/emeraldsearch/bitpart/zone"
)

// Parallel is the blocked, worker-pool-backed in-memory backend. Dataset
// columns are conceptually sliced into blocks of BlockSize; classification
// is parallel across zones and, independently, each block's candidate
// computation and verification runs on its own worker. BlockSize is the
// sole knob controlling parallelism granularity — a nil BlockSize (one
// block spanning the whole dataset) makes queries run sequentially even
// on this backend.
type Parallel[T any] struct {
	metric  metric.Metric[T]
	dataset []T
	zones   []zone.Zone[T]
	rows    []*bitset.BitSet
	blocks  []Block
	workers int
}

// NewParallel builds a Parallel index from an already-computed
// partitioning model. blockSize follows the builder's documented
// semantics: nil means one block of size N.
func NewParallel[T any](m metric.Metric[T], dataset []T, model *partition.Model[T], blockSize *uint, workers int) *Parallel[T] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Parallel[T]{
		metric:  m,
		dataset: dataset,
		zones:   model.Zones,
		rows:    model.Rows,
		blocks:  Blocks(uint(len(dataset)), blockSize),
		workers: workers,
	}
}

// RangeSearch implements Index[T].
func (p *Parallel[T]) RangeSearch(q T, t float64) []query.Result[T] {
	results, _ := p.RangeSearchContext(context.Background(), q, t)
	return results
}

// RangeSearchContext is RangeSearch with cooperative cancellation: ctx.Err()
// is checked between block dispatches, and a canceled context stops further
// blocks from being scanned, returning whatever results had already been
// verified along with ctx.Err(). A block already dispatched runs to
// completion — cancellation is checked only at block boundaries.
func (p *Parallel[T]) RangeSearchContext(ctx context.Context, q T, t float64) ([]query.Result[T], error) {
	slog.Debug("index: parallel range_search start", "threshold", t, "blocks", len(p.blocks), "zones", len(p.zones))

	in, out := p.classifyParallel(q, t)
	if len(p.blocks) == 0 {
		return nil, nil
	}

	perBlock := make([][]query.Result[T], len(p.blocks))
	var g errgroup.Group
	g.SetLimit(p.workers)
	var canceled bool
	for bi, blk := range p.blocks {
		if ctx.Err() != nil {
			canceled = true
			break
		}
		bi, blk := bi, blk
		g.Go(func() error {
			rs := blockRowSource{rows: p.rows, block: blk}
			cand := query.Combine(rs, in, out)
			perBlock[bi] = query.VerifyAt(p.metric, p.dataset, cand, blk.Start, q, t)
			return nil
		})
	}
	_ = g.Wait()

	var total int
	for _, r := range perBlock {
		total += len(r)
	}
	results := make([]query.Result[T], 0, total)
	for _, r := range perBlock {
		results = append(results, r...)
	}

	slog.Debug("index: parallel range_search done", "in_zones", len(in), "out_zones", len(out), "results", len(results))

	if canceled {
		return results, ctx.Err()
	}
	return results, nil
}

// classifyParallel evaluates every zone's must-be-in/must-be-out
// predicates against (q, t), splitting the zone list across the worker
// pool. Order within the returned slices is not meaningful — Combine's
// AND/OR folding is commutative.
func (p *Parallel[T]) classifyParallel(q T, t float64) (in, out []int) {
	nz := len(p.zones)
	if nz == 0 {
		return nil, nil
	}

	chunks := p.workers
	if chunks > nz {
		chunks = nz
	}
	chunkSize := (nz + chunks - 1) / chunks

	localIn := make([][]int, chunks)
	localOut := make([][]int, chunks)

	var g errgroup.Group
	for c := 0; c < chunks; c++ {
		c := c
		start := c * chunkSize
		end := start + chunkSize
		if end > nz {
			end = nz
		}
		if start >= end {
			continue
		}
		g.Go(func() error {
			localIn[c], localOut[c] = query.Classify(p.metric, p.zones[start:end], q, t)
			return nil
		})
	}
	_ = g.Wait()

	for c := 0; c < chunks; c++ {
		in = append(in, localIn[c]...)
		out = append(out, localOut[c]...)
	}

	return in, out
}

// Len implements Index[T].
func (p *Parallel[T]) Len() int { return len(p.dataset) }

// IsEmpty implements Index[T].
func (p *Parallel[T]) IsEmpty() bool { return len(p.dataset) == 0 }

// Zones implements Index[T].
func (p *Parallel[T]) Zones() int { return len(p.zones) }
