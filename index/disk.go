package index

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/emeraldsearch/bitpart/metric"
	"github.com/emeraldsearch/bitpart/partition"
	"github.com/emeraldsearch/bitpart/query"
	"github.com/emeraldsearch/bitpart/zone"
)

// Disk is the memory-mapped backend: the same schema as Parallel, but
// every zone row lives in its own file under dir and is accessed through
// a read-only mapping instead of a Go-heap bitset. The OS page cache
// becomes the working set; resident memory is capped at the OS's
// discretion.
type Disk[T any] struct {
	metric  metric.Metric[T]
	dataset []T
	zones   []zone.Zone[T]
	files   []*mmapRow
	blocks  []Block
	workers int
	dir     string
}

// NewDisk persists model's rows under dir (one file per zone, created via
// a non-recursive mkdir that fails if dir already exists or its parent is
// missing) and opens each one as a read-only memory mapping. Any I/O
// failure during this process is wrapped in ErrDiskBuildFailed.
func NewDisk[T any](m metric.Metric[T], dataset []T, model *partition.Model[T], dir string, blockSize *uint, workers int) (*Disk[T], error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if err := writeZoneFiles(dir, model.Rows); err != nil {
		return nil, err
	}

	files := make([]*mmapRow, len(model.Zones))
	for z := range model.Zones {
		f, err := openMMapRow(zoneFileName(dir, z))
		if err != nil {
			closeAll(files[:z])
			return nil, err
		}
		files[z] = f
	}

	return &Disk[T]{
		metric:  m,
		dataset: dataset,
		zones:   model.Zones,
		files:   files,
		blocks:  Blocks(uint(len(dataset)), blockSize),
		workers: workers,
		dir:     dir,
	}, nil
}

func closeAll(files []*mmapRow) {
	for _, f := range files {
		if f != nil {
			_ = f.close()
		}
	}
}

// Close unmaps and closes every zone file. The caller remains responsible
// for the directory's own lifetime (removing it, if desired) per the
// on-disk backend's contract.
func (d *Disk[T]) Close() error {
	for z, f := range d.files {
		if err := f.close(); err != nil {
			return fmt.Errorf("index: close zone file %d: %w", z, err)
		}
	}

	return nil
}

// diskRowSource adapts one block's window of the mapped zone files into a
// query.RowSource.
type diskRowSource struct {
	files []*mmapRow
	block Block
}

func (d diskRowSource) Row(z int) *bitset.BitSet {
	return d.files[z].slice(uint64(d.block.Start), uint64(d.block.Length))
}

func (d diskRowSource) N() uint { return d.block.Length }

// RangeSearch implements Index[T]. Zone classification touches no bits —
// only In/Out rows are read, and only the block windows a query actually
// needs are paged in.
func (d *Disk[T]) RangeSearch(q T, t float64) []query.Result[T] {
	results, _ := d.RangeSearchContext(context.Background(), q, t)
	return results
}

// RangeSearchContext is RangeSearch with cooperative cancellation: ctx.Err()
// is checked between block dispatches, and a canceled context stops further
// blocks from being scanned, returning whatever results had already been
// verified along with ctx.Err(). A page fault mid-block is not interrupted —
// cancellation is checked only at block boundaries.
func (d *Disk[T]) RangeSearchContext(ctx context.Context, q T, t float64) ([]query.Result[T], error) {
	slog.Debug("index: disk range_search start", "threshold", t, "blocks", len(d.blocks), "zones", len(d.zones))

	in, out := query.Classify(d.metric, d.zones, q, t)
	if len(d.blocks) == 0 {
		return nil, nil
	}

	perBlock := make([][]query.Result[T], len(d.blocks))
	var g errgroup.Group
	g.SetLimit(d.workers)
	var canceled bool
	for bi, blk := range d.blocks {
		if ctx.Err() != nil {
			canceled = true
			break
		}
		bi, blk := bi, blk
		g.Go(func() error {
			rs := diskRowSource{files: d.files, block: blk}
			cand := query.Combine(rs, in, out)
			perBlock[bi] = query.VerifyAt(d.metric, d.dataset, cand, blk.Start, q, t)
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

	slog.Debug("index: disk range_search done", "in_zones", len(in), "out_zones", len(out), "results", len(results))

	if canceled {
		return results, ctx.Err()
	}
	return results, nil
}

// Len implements Index[T].
func (d *Disk[T]) Len() int { return len(d.dataset) }

// IsEmpty implements Index[T].
func (d *Disk[T]) IsEmpty() bool { return len(d.dataset) == 0 }

// Zones implements Index[T].
func (d *Disk[T]) Zones() int { return len(d.zones) }
