package query_test

import (
	"fmt"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"

	"github.com/emeraldsearch/bitpart/metric"
	"github.com/emeraldsearch/bitpart/partition"
	"github.com/emeraldsearch/bitpart/query"
)

type sliceRows struct {
	rows []*bitset.BitSet
	n    uint
}

func (s sliceRows) Row(z int) *bitset.BitSet { return s.rows[z] }
func (s sliceRows) N() uint                  { return s.n }

func square() [][]float64 {
	return [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {5, 5}}
}

func buildModel(t *testing.T) *partition.Model[[]float64] {
	t.Helper()
	d := square()
	p := partition.NewParams()
	p.RefPoints = 2
	return partition.Build[[]float64](d, metric.Euclidean{}, p)
}

// Scenario S1 from the specification.
func TestRangeSearch_S1(t *testing.T) {
	d := square()
	m := buildModel(t)
	e := metric.Euclidean{}
	rs := sliceRows{rows: m.Rows, n: uint(m.N)}

	results := query.RangeSearch(e, m.Zones, rs, d, []float64{0, 0}, 1.5)

	require.Len(t, results, 4)
	want := map[string]float64{
		"0,0": 0,
		"1,0": 1,
		"0,1": 1,
		"1,1": 1.4142135623730951,
	}
	got := map[string]float64{}
	for _, r := range results {
		got[fmt.Sprintf("%g,%g", r.Point[0], r.Point[1])] = r.Distance
	}
	for k, v := range want {
		require.InDelta(t, v, got[k], 1e-9, "point %s", k)
	}
}

// Scenario S2: t = 0 keeps only exact coincidences.
func TestRangeSearch_S2(t *testing.T) {
	d := square()
	m := buildModel(t)
	e := metric.Euclidean{}
	rs := sliceRows{rows: m.Rows, n: uint(m.N)}

	results := query.RangeSearch(e, m.Zones, rs, d, []float64{0, 0}, 0)

	require.Len(t, results, 1)
	require.Equal(t, []float64{0, 0}, results[0].Point)
	require.Equal(t, 0.0, results[0].Distance)
}

// Scenario S3: a query far from everything returns nothing.
func TestRangeSearch_S3(t *testing.T) {
	d := square()
	m := buildModel(t)
	e := metric.Euclidean{}
	rs := sliceRows{rows: m.Rows, n: uint(m.N)}

	results := query.RangeSearch(e, m.Zones, rs, d, []float64{10, 10}, 1.0)

	require.Empty(t, results)
}

func TestClassify_AllUnknownOnLargeThreshold(t *testing.T) {
	m := buildModel(t)
	e := metric.Euclidean{}

	// A threshold large enough that no zone's conservative test fires
	// degenerates to the documented all-candidates fast path.
	in, out := query.Classify(e, m.Zones, []float64{2, 2}, 100)
	rs := sliceRows{rows: m.Rows, n: uint(m.N)}
	cand := query.Combine(rs, in, out)
	require.EqualValues(t, m.N, cand.Count(), "In==Out==∅ must degenerate to all-ones")
}

func TestCombine_Soundness(t *testing.T) {
	// Soundness: every true answer survives Combine (is a 1 bit) even
	// though Combine may retain extra false positives.
	d := square()
	m := buildModel(t)
	e := metric.Euclidean{}
	rs := sliceRows{rows: m.Rows, n: uint(m.N)}

	q := []float64{0, 0}
	thr := 1.5
	in, out := query.Classify(e, m.Zones, q, thr)
	cand := query.Combine(rs, in, out)

	for i, x := range d {
		if e.Distance(q, x) <= thr {
			require.True(t, cand.Test(uint(i)), "point %d must survive pruning", i)
		}
	}
}
