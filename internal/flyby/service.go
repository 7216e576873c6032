package flyby

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// ErrNoGeocoder is returned by PredictPlace when no geocoder is configured.
var ErrNoGeocoder = errors.New("geocoding is not configured")

// Service runs validation, the catalog lookup and the prediction in order.
type Service struct {
	catalog  Catalog
	store    Store
	geocoder Geocoder

	now func() time.Time
}

// NewService creates a new Service. store and geocoder may be nil.
func NewService(catalog Catalog, store Store, geocoder Geocoder) *Service {
	return &Service{
		catalog:  catalog,
		store:    store,
		geocoder: geocoder,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Predict validates the coordinate, fetches its capture history and predicts
// the next capture. Errors are returned unchanged and no partial result is
// ever produced.
func (s *Service) Predict(ctx context.Context, lat, lon *float64) (Prediction, error) {
	coord, err := Validate(lat, lon)
	if err != nil {
		return Prediction{}, err
	}

	log.Printf("DEBUG: Predict called for %s using %s", coord.Key(), s.catalog.Name())

	records, err := s.catalog.Fetch(ctx, coord)
	if err != nil {
		return Prediction{}, err
	}

	est, err := EstimateNext(records)
	if err != nil {
		return Prediction{}, err
	}

	p := Prediction{
		ID:           uuid.NewString(),
		Coordinate:   coord,
		NextCapture:  est.Next,
		LastCapture:  est.Last,
		MeanInterval: est.MeanInterval,
		Captures:     est.Captures,
		CreatedAt:    s.now(),
	}
	if s.store != nil {
		s.store.SavePrediction(p)
	}
	return p, nil
}

// PredictPlace geocodes a city/country pair and predicts for the result.
func (s *Service) PredictPlace(ctx context.Context, place Place) (Prediction, error) {
	if s.geocoder == nil {
		return Prediction{}, ErrNoGeocoder
	}

	lat, lon, err := s.geocoder.Locate(ctx, place)
	if err != nil {
		return Prediction{}, fmt.Errorf("geocoding %s: %w", place.Key(), err)
	}
	return s.Predict(ctx, &lat, &lon)
}

// Recent returns the predictions served for a coordinate, oldest first.
// A zero since returns everything still retained.
func (s *Service) Recent(c Coordinate, since time.Time) ([]Prediction, error) {
	if s.store == nil {
		return nil, nil
	}
	if since.IsZero() {
		return s.store.Recent(c)
	}
	return s.store.RecentSince(c, since)
}
