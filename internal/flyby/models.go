package flyby

import (
	"fmt"
	"time"
)

// Field names a coordinate component.
type Field string

const (
	FieldLatitude  Field = "latitude"
	FieldLongitude Field = "longitude"
)

// Coordinate is a validated latitude/longitude pair.
// Values are only produced by Validate and are never mutated afterwards.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Key returns a canonical string key for indexing this coordinate in stores.
func (c Coordinate) Key() string {
	return fmt.Sprintf("%.6f,%.6f", c.Latitude, c.Longitude)
}

// CaptureRecord is a single historical imagery capture reported by a catalog.
// Only Date is consumed by the predictor.
type CaptureRecord struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
}

// CaptureSet is an unordered collection of capture records for one coordinate.
type CaptureSet []CaptureRecord

// Prediction is the outcome of a single fly-by prediction.
type Prediction struct {
	ID           string        `json:"id"`
	Coordinate   Coordinate    `json:"coordinate"`
	NextCapture  time.Time     `json:"nextCapture"` // always UTC
	LastCapture  time.Time     `json:"lastCapture"`
	MeanInterval time.Duration `json:"meanIntervalNs"`
	Captures     int           `json:"captures"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// String renders the prediction the way the command line prints it.
func (p Prediction) String() string {
	return "Next time: " + p.NextCapture.Format(time.RFC1123)
}
