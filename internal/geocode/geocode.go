// Package geocode resolves city/country pairs through the Google geocoding API.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/flyby-predictor/internal/flyby"
)

var errEmptyPlace = errors.New("city and country are required")

// The geocoder package keeps its key in a package variable.
var keyMu sync.Mutex

// GoogleGeocoder implements flyby.Geocoder.
type GoogleGeocoder struct {
	apiKey string
	lookup func(geocoder.Address) (geocoder.Location, error)
}

func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey: apiKey,
		lookup: geocoder.Geocoding,
	}
}

// Locate returns the raw coordinates of the place. Validation is left to the caller.
func (g *GoogleGeocoder) Locate(ctx context.Context, p flyby.Place) (float64, float64, error) {
	city := strings.TrimSpace(p.City)
	country := strings.TrimSpace(p.Country)
	if city == "" || country == "" {
		return 0, 0, errEmptyPlace
	}
	if g.apiKey == "" {
		return 0, 0, flyby.ErrNoGeocoder
	}
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	keyMu.Lock()
	geocoder.ApiKey = g.apiKey
	loc, err := g.lookup(geocoder.Address{City: city, Country: country})
	keyMu.Unlock()
	if err != nil {
		return 0, 0, fmt.Errorf("geocode %s, %s: %w", city, country, err)
	}

	return loc.Latitude, loc.Longitude, nil
}
