package flyby

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	records CaptureSet
	err     error
	calls   int
}

func (f *fakeCatalog) Name() string { return "fake" }

func (f *fakeCatalog) Fetch(context.Context, Coordinate) (CaptureSet, error) {
	f.calls++
	return f.records, f.err
}

type fakeStore struct {
	saved []Prediction
}

func (s *fakeStore) SavePrediction(p Prediction) { s.saved = append(s.saved, p) }

func (s *fakeStore) Recent(Coordinate) ([]Prediction, error) { return s.saved, nil }

func (s *fakeStore) RecentSince(_ Coordinate, since time.Time) ([]Prediction, error) {
	var out []Prediction
	for _, p := range s.saved {
		if !p.CreatedAt.Before(since) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeGeocoder struct {
	lat, lon float64
	err      error
}

func (g fakeGeocoder) Locate(context.Context, Place) (float64, float64, error) {
	return g.lat, g.lon, g.err
}

func TestServicePredict(t *testing.T) {
	cat := &fakeCatalog{records: days(0, 1, 4)}
	st := &fakeStore{}
	svc := NewService(cat, st, nil)

	p, err := svc.Predict(context.Background(), ptr(36.098592), ptr(-112.097796))
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.True(t, day0.AddDate(0, 0, 6).Equal(p.NextCapture))
	assert.True(t, day0.AddDate(0, 0, 4).Equal(p.LastCapture))
	assert.Equal(t, 48*time.Hour, p.MeanInterval)
	assert.Equal(t, 3, p.Captures)
	assert.Equal(t, Coordinate{Latitude: 36.098592, Longitude: -112.097796}, p.Coordinate)
	require.Len(t, st.saved, 1)
	assert.Equal(t, p.ID, st.saved[0].ID)

	recent, err := svc.Recent(p.Coordinate, time.Time{})
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestServicePredictInvalidCoordinateSkipsCatalog(t *testing.T) {
	cat := &fakeCatalog{records: days(0, 1)}
	svc := NewService(cat, nil, nil)

	_, err := svc.Predict(context.Background(), ptr(91), ptr(0))
	var rng *OutOfRangeError
	require.ErrorAs(t, err, &rng)
	assert.Equal(t, 0, cat.calls)
}

func TestServicePropagatesErrors(t *testing.T) {
	catalogErr := &CatalogError{StatusCode: 500, Err: errors.New("boom")}

	_, err := NewService(&fakeCatalog{err: catalogErr}, nil, nil).Predict(context.Background(), ptr(0), ptr(0))
	assert.Same(t, catalogErr, err)

	st := &fakeStore{}
	_, err = NewService(&fakeCatalog{records: days(0)}, st, nil).Predict(context.Background(), ptr(0), ptr(0))
	assert.True(t, IsInsufficientData(err))
	assert.Empty(t, st.saved)
}

func TestServicePredictPlace(t *testing.T) {
	cat := &fakeCatalog{records: days(0, 2)}

	_, err := NewService(cat, nil, nil).PredictPlace(context.Background(), Place{City: "Paris", Country: "FR"})
	assert.ErrorIs(t, err, ErrNoGeocoder)

	p, err := NewService(cat, nil, fakeGeocoder{lat: 48.8566, lon: 2.3522}).
		PredictPlace(context.Background(), Place{City: "Paris", Country: "FR"})
	require.NoError(t, err)
	assert.Equal(t, 48.8566, p.Coordinate.Latitude)

	_, err = NewService(cat, nil, fakeGeocoder{lat: 123, lon: 0}).
		PredictPlace(context.Background(), Place{City: "Nowhere", Country: "XX"})
	assert.True(t, IsInputError(err))
}

func TestCatalogErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &CatalogError{Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, (&CatalogError{StatusCode: 403, Err: inner}).Error(), "403")
}
