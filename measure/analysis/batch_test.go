package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-seismic/internal/testutil"
)

func batchRecords(t *testing.T) []Record {
	t.Helper()
	var recs []Record
	for i, dir := range []Direction{East, North, Up} {
		ts, err := UniformTimeSeries(testutil.GaussianWavelet(1.5, 100, float64(10*(i+1)), 1, 200), 0.01)
		require.NoError(t, err)
		recs = append(recs, Record{ID: "st01", Direction: dir, Series: ts})
	}
	return recs
}

func TestAnalyzeAllPreservesOrder(t *testing.T) {
	a, err := New(WithPeriods([]float64{0.1, 1}))
	require.NoError(t, err)

	recs := batchRecords(t)
	got, err := a.AnalyzeAll(context.Background(), recs, 2)
	require.NoError(t, err)
	require.Len(t, got, len(recs))

	for i, rec := range recs {
		want, err := a.AnalyzeRecord(context.Background(), rec)
		require.NoError(t, err)
		assert.Equal(t, rec.Direction, got[i].Direction)
		assert.Equal(t, "st01", got[i].ID)
		assert.Equal(t, want.PGA, got[i].PGA)
	}
	assert.Less(t, got[0].PGA, got[1].PGA)
	assert.Less(t, got[1].PGA, got[2].PGA)
}

func TestAnalyzeAllFailsOnBadRecord(t *testing.T) {
	a, err := New(WithPeriods([]float64{1}))
	require.NoError(t, err)

	recs := batchRecords(t)
	recs[1].Series = TimeSeries{Time: []float64{0}, Values: []float64{1}}

	_, err = a.AnalyzeAll(context.Background(), recs, 1)
	require.ErrorIs(t, err, ErrTooShort)
	assert.Contains(t, err.Error(), `"st01" (N)`)
}

func TestAnalyzeAllEmpty(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	got, err := a.AnalyzeAll(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
