package flyby

import (
	"context"
	"time"
)

// Catalog abstracts an imagery catalog that knows when a location was captured.
type Catalog interface {
	Name() string
	Fetch(ctx context.Context, c Coordinate) (CaptureSet, error)
}

// Place is a human-readable location that has to be geocoded first.
type Place struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Key returns a canonical string key for this place.
func (p Place) Key() string {
	return p.City + ":" + p.Country
}

// Geocoder resolves a Place into raw latitude/longitude values.
// The result still goes through Validate.
type Geocoder interface {
	Locate(ctx context.Context, p Place) (lat, lon float64, err error)
}

// Store keeps the predictions served so far.
type Store interface {
	SavePrediction(p Prediction)
	Recent(c Coordinate) ([]Prediction, error)
	RecentSince(c Coordinate, since time.Time) ([]Prediction, error)
}
