package flyby

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2014, 2, 4, 3, 30, 1, 0, time.UTC)

func days(ns ...int) CaptureSet {
	set := make(CaptureSet, len(ns))
	for i, n := range ns {
		set[i] = CaptureRecord{Date: day0.AddDate(0, 0, n)}
	}
	return set
}

func TestPredictNextScenarios(t *testing.T) {
	tests := []struct {
		name    string
		records CaptureSet
		want    time.Time
	}{
		{"even spacing", days(0, 2, 4), day0.AddDate(0, 0, 6)},
		{"uneven spacing", days(0, 1, 4), day0.AddDate(0, 0, 6)},
		{"duplicates", days(0, 0), day0},
		{"unsorted input", days(4, 0, 2), day0.AddDate(0, 0, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PredictNext(tt.records)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestPredictNextInsufficientData(t *testing.T) {
	for _, records := range []CaptureSet{nil, days(3)} {
		_, err := PredictNext(records)
		require.Error(t, err)
		assert.True(t, IsInsufficientData(err))

		var e *InsufficientDataError
		require.ErrorAs(t, err, &e)
		assert.Equal(t, len(records), e.Count)
	}
}

func TestPredictNextOrderInvariant(t *testing.T) {
	records := days(0, 3, 7, 8, 15, 15, 31)
	want, err := PredictNext(records)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make(CaptureSet, len(records))
		copy(shuffled, records)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := PredictNext(shuffled)
		require.NoError(t, err)
		assert.True(t, want.Equal(got))
	}
}

func TestEstimateNextTruncatesMean(t *testing.T) {
	// Intervals of 1ms and 2ms average to 1.5ms, truncated to 1ms.
	records := CaptureSet{
		{Date: time.UnixMilli(0)},
		{Date: time.UnixMilli(1)},
		{Date: time.UnixMilli(3)},
	}

	est, err := EstimateNext(records)
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, est.MeanInterval)
	assert.Equal(t, int64(3), est.Last.UnixMilli())
	assert.Equal(t, int64(4), est.Next.UnixMilli())
	assert.Equal(t, 3, est.Captures)
}

func TestEstimateNextSortsNumerically(t *testing.T) {
	// Lexicographic order would put 10000 before 9000.
	records := CaptureSet{
		{Date: time.UnixMilli(10000)},
		{Date: time.UnixMilli(9000)},
		{Date: time.UnixMilli(100000)},
	}

	est, err := EstimateNext(records)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), est.Last.UnixMilli())
	assert.Equal(t, 45500*time.Millisecond, est.MeanInterval)
}
