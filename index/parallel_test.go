package index_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emeraldsearch/bitpart/index"
	"github.com/emeraldsearch/bitpart/internal/fixtures"
	"github.com/emeraldsearch/bitpart/internal/oracle"
	"github.com/emeraldsearch/bitpart/metric"
	"github.com/emeraldsearch/bitpart/partition"
)

func buildParallel(t *testing.T, dataset [][]float64, refPoints int, blockSize *uint) *index.Parallel[[]float64] {
	t.Helper()
	p := partition.NewParams()
	p.RefPoints = refPoints
	model := partition.BuildParallel[[]float64](dataset, metric.Euclidean{}, p, 0)
	return index.NewParallel[[]float64](metric.Euclidean{}, dataset, model, blockSize, 0)
}

func TestParallel_S1(t *testing.T) {
	d := fixtures.Square()
	idx := buildParallel(t, d, 2, nil)

	results := idx.RangeSearch([]float64{0, 0}, 1.5)
	require.Len(t, results, 4)
}

func TestParallel_MatchesSequentialAcrossBlockSizes(t *testing.T) {
	d := fixtures.UniformRandom(150, 3, -5, 5, 11)
	seq := buildSequential(t, d, 8)
	q := []float64{0, 0, 0}
	const t0 = 2.0
	want := seq.RangeSearch(q, t0)
	oracle.SortByDistance(want)

	small := uint(7)
	large := uint(64)
	for _, bs := range []*uint{nil, &small, &large} {
		par := buildParallel(t, d, 8, bs)
		got := par.RangeSearch(q, t0)
		oracle.SortByDistance(got)

		require.Len(t, got, len(want), "blockSize=%v", bs)
		for i := range want {
			require.InDelta(t, want[i].Distance, got[i].Distance, 1e-9)
		}
	}
}

func TestParallel_MatchesOracle(t *testing.T) {
	d := fixtures.UniformRandom(100, 5, -4, 4, 13)
	e := metric.Euclidean{}
	idx := buildParallel(t, d, 6, nil)

	q := d[3]
	const t0 = 3.5
	got := idx.RangeSearch(q, t0)
	want := oracle.RangeSearch(e, d, q, t0)

	oracle.SortByDistance(got)
	oracle.SortByDistance(want)
	require.Len(t, got, len(want))
}

func TestParallel_RangeSearchContext_CanceledBeforeStartReturnsErrAndNoResults(t *testing.T) {
	d := fixtures.UniformRandom(60, 3, -5, 5, 17)
	small := uint(5)
	idx := buildParallel(t, d, 6, &small)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := idx.RangeSearchContext(ctx, d[0], 3.0)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, results)
}

func TestParallel_RangeSearchContext_MatchesRangeSearchWhenNotCanceled(t *testing.T) {
	d := fixtures.UniformRandom(60, 3, -5, 5, 19)
	idx := buildParallel(t, d, 6, nil)

	q := d[2]
	const t0 = 3.0
	want := idx.RangeSearch(q, t0)
	got, err := idx.RangeSearchContext(context.Background(), q, t0)

	require.NoError(t, err)
	oracle.SortByDistance(want)
	oracle.SortByDistance(got)
	require.Equal(t, len(want), len(got))
}

func TestParallel_EmptyDataset(t *testing.T) {
	var d [][]float64
	model := &partition.Model[[]float64]{N: 0}
	idx := index.NewParallel[[]float64](metric.Euclidean{}, d, model, nil, 0)

	require.True(t, idx.IsEmpty())
	require.Empty(t, idx.RangeSearch([]float64{0, 0}, 1.0))
}
