package builder

import (
	"fmt"

	"github.com/emeraldsearch/bitpart/index"
	"github.com/emeraldsearch/bitpart/metric"
	"github.com/emeraldsearch/bitpart/partition"
)

// Builder accumulates a dataset, a metric and partitioning parameters. Use
// NewBuilder to construct one, then call exactly one of Build,
// BuildParallel or BuildOnDisk per index you want — each call reruns
// partitioning independently and shares no mutable state with the others.
type Builder[T any] struct {
	dataset []T
	metric  metric.Metric[T]
	opts    options
}

// NewBuilder resolves opts against the documented defaults and validates
// the ref_points invariant (0 < ref_points <= len(dataset)).
//
// Panics if the invariant is violated — ref_points is a configuration-time
// programmer error, not a recoverable runtime condition, per the spec's
// fail-fast propagation policy.
func NewBuilder[T any](dataset []T, m metric.Metric[T], opts ...Option) *Builder[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.refPoints <= 0 || o.refPoints > len(dataset) {
		panic(panicRefPointsInvalid)
	}

	return &Builder[T]{dataset: dataset, metric: m, opts: o}
}

func (b *Builder[T]) params() partition.Params {
	return partition.Params{
		MeanDistance:    b.opts.meanDistance,
		RadiusIncrement: b.opts.radiusIncrement,
		RefPoints:       b.opts.refPoints,
		Seed:            b.opts.seed,
	}
}

// Build materializes a Sequential index.
func (b *Builder[T]) Build() *index.Sequential[T] {
	model := partition.Build[T](b.dataset, b.metric, b.params())
	return index.NewSequential[T](b.metric, b.dataset, model)
}

// BuildParallel materializes a Parallel index. blockSize follows the
// documented semantics: nil means one block spanning the whole dataset
// (query-time parallelism disabled); a non-nil value of B means chunks of
// B columns. workers <= 0 defaults to runtime.GOMAXPROCS(0).
func (b *Builder[T]) BuildParallel(blockSize *uint, workers int) *index.Parallel[T] {
	validateBlockSize(blockSize)
	model := partition.BuildParallel[T](b.dataset, b.metric, b.params(), workers)
	return index.NewParallel[T](b.metric, b.dataset, model, blockSize, workers)
}

// BuildOnDisk materializes a Disk index, persisting the partitioning
// model's bitset matrix under dir (one file per zone). dir must not
// already exist; it is created with a non-recursive mkdir.
//
// Per the on-disk backend's contract, any I/O failure here is fatal:
// BuildOnDisk panics, wrapping index.ErrDiskBuildFailed so a caller that
// chooses to recover can still errors.Is against it.
func (b *Builder[T]) BuildOnDisk(dir string, blockSize *uint, workers int) *index.Disk[T] {
	validateBlockSize(blockSize)
	model := partition.BuildParallel[T](b.dataset, b.metric, b.params(), workers)
	disk, err := index.NewDisk[T](b.metric, b.dataset, model, dir, blockSize, workers)
	if err != nil {
		panic(fmt.Errorf("builder: BuildOnDisk: %w", err))
	}

	return disk
}

func validateBlockSize(blockSize *uint) {
	if blockSize != nil && *blockSize == 0 {
		panic(panicBlockSizeInvalid)
	}
}
