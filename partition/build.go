package partition

import (
	"log/slog"
	"runtime"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/emeraldsearch/bitpart/internal/debugassert"
	"github.com/emeraldsearch/bitpart/metric"
	"github.com/emeraldsearch/bitpart/zone"
)

// Model is the partitioning model's output: the zone list and the bitset
// matrix it induces over the dataset. M[z] is zone Zones[z]'s column of N
// bits; M[z].Test(i) == Zones[z].IsIn(metric, dataset[i]).
type Model[T any] struct {
	Zones []zone.Zone[T]
	Rows  []*bitset.BitSet
	N     int
}

// Params bundles the knobs that determine a partitioning's shape. Zero
// value is not meaningful; use NewParams or fill every field explicitly.
type Params struct {
	MeanDistance    float64
	RadiusIncrement float64
	RefPoints       int
	Seed            *int64
}

// NewParams returns the documented defaults.
func NewParams() Params {
	return Params{
		MeanDistance:    DefaultMeanDistance,
		RadiusIncrement: DefaultRadiusIncrement,
		RefPoints:       DefaultRefPoints,
	}
}

// buildZones constructs the zone list (without bits) for the given
// reference points. Stage 1 emits 5k ball zones; stage 2 emits k(k-1)/2
// sheet zones for every unordered pair of distinct reference points.
func buildZones[T any](dataset []T, refs []int, p Params) []zone.Zone[T] {
	k := len(refs)
	zones := make([]zone.Zone[T], 0, ZoneCount(k))

	// Stage 1: ball zones, five radii per reference point.
	for _, ri := range refs {
		pivot := dataset[ri]
		for _, off := range radiusOffsets {
			radius := p.MeanDistance + float64(off)*p.RadiusIncrement
			zones = append(zones, zone.NewBall(pivot, radius))
		}
	}

	// Stage 2: sheet zones, one per unordered pair of reference points.
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			a, b := dataset[refs[i]], dataset[refs[j]]
			zones = append(zones, zone.NewSheet(a, b, 0.0))
		}
	}

	for i := range zones {
		zones[i].Index = i
	}

	return zones
}

// rowFor computes zone z's bit column over the dataset.
func rowFor[T any](m metric.Metric[T], z zone.Zone[T], dataset []T) *bitset.BitSet {
	m = debugassert.WrapMetric(m)

	row := bitset.New(uint(len(dataset)))
	for i, x := range dataset {
		if z.IsIn(m, x) {
			row.Set(uint(i))
		}
	}

	return row
}

// Build computes the partitioning model sequentially: one reference-point
// selection pass, one zone-construction pass, then one is_in evaluation
// per (zone, point) pair.
//
// Complexity: O(Z*N) distance evaluations, where Z = ZoneCount(RefPoints).
func Build[T any](dataset []T, m metric.Metric[T], p Params) *Model[T] {
	slog.Debug("partition: build start", "n", len(dataset), "ref_points", p.RefPoints)

	refs := SelectReferences(len(dataset), p.RefPoints, p.Seed)
	zones := buildZones(dataset, refs, p)

	rows := make([]*bitset.BitSet, len(zones))
	for i, z := range zones {
		rows[i] = rowFor(m, z, dataset)
	}

	slog.Debug("partition: build done", "zones", len(zones))

	return &Model[T]{Zones: zones, Rows: rows, N: len(dataset)}
}

// BuildParallel computes the partitioning model with zone-row construction
// spread over a bounded worker pool: each zone's is_in column is
// embarrassingly parallel with every other zone's, so no synchronization
// is needed beyond writing to disjoint slots of rows.
//
// workers <= 0 defaults to runtime.GOMAXPROCS(0).
func BuildParallel[T any](dataset []T, m metric.Metric[T], p Params, workers int) *Model[T] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	slog.Debug("partition: build_parallel start", "n", len(dataset), "ref_points", p.RefPoints, "workers", workers)

	refs := SelectReferences(len(dataset), p.RefPoints, p.Seed)
	zones := buildZones(dataset, refs, p)
	rows := make([]*bitset.BitSet, len(zones))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, z := range zones {
		i, z := i, z
		g.Go(func() error {
			rows[i] = rowFor(m, z, dataset)
			return nil
		})
	}
	_ = g.Wait() // rowFor never errors; Wait only synchronizes completion

	slog.Debug("partition: build_parallel done", "zones", len(zones))

	return &Model[T]{Zones: zones, Rows: rows, N: len(dataset)}
}
