package flyby

import (
	"math"
	"strconv"
	"strings"
)

func bounds(f Field) (float64, float64) {
	if f == FieldLatitude {
		return -90, 90
	}
	return -180, 180
}

// Validate checks a latitude/longitude pair before it is sent anywhere.
// Presence is checked before range, latitude before longitude.
func Validate(lat, lon *float64) (Coordinate, error) {
	if lat == nil {
		return Coordinate{}, &MissingFieldError{Field: FieldLatitude}
	}
	if lon == nil {
		return Coordinate{}, &MissingFieldError{Field: FieldLongitude}
	}
	if !inRange(FieldLatitude, *lat) {
		return Coordinate{}, &OutOfRangeError{Field: FieldLatitude, Value: *lat}
	}
	if !inRange(FieldLongitude, *lon) {
		return Coordinate{}, &OutOfRangeError{Field: FieldLongitude, Value: *lon}
	}
	return Coordinate{Latitude: *lat, Longitude: *lon}, nil
}

// NaN fails every comparison, so it is rejected here too.
func inRange(f Field, v float64) bool {
	lo, hi := bounds(f)
	return v >= lo && v <= hi
}

// ParseCoordinate validates a textual pair. Blank values count as missing and
// values that are not numbers are reported as out of range.
func ParseCoordinate(lat, lon string) (Coordinate, error) {
	return Validate(ParseComponent(lat), ParseComponent(lon))
}

// ParseComponent converts one textual coordinate component for Validate:
// nil when blank, NaN when not a number.
func ParseComponent(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		v = math.NaN()
	}
	return &v
}
