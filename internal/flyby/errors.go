package flyby

import (
	"errors"
	"fmt"
)

// MissingFieldError is returned when a coordinate component was not supplied.
type MissingFieldError struct {
	Field Field
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing %s", e.Field)
}

// OutOfRangeError is returned when a coordinate component is not a number
// within its valid range.
type OutOfRangeError struct {
	Field Field
	Value float64
}

func (e *OutOfRangeError) Error() string {
	lo, hi := bounds(e.Field)
	return fmt.Sprintf("%s %v is not a number within the range of %v to %v", e.Field, e.Value, lo, hi)
}

// InsufficientDataError is returned when fewer than two captures are known,
// so no interval can be derived.
type InsufficientDataError struct {
	Count int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("not enough imagery to make a prediction: %d capture(s), need at least 2", e.Count)
}

// CatalogError wraps any failure of the imagery catalog lookup.
// StatusCode is the upstream HTTP status, or 0 for transport failures.
type CatalogError struct {
	StatusCode int
	Err        error
}

func (e *CatalogError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("catalog error: %v", e.Err)
	}
	return fmt.Sprintf("catalog error: status code %d: %v", e.StatusCode, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err is a caller-correctable coordinate error.
func IsInputError(err error) bool {
	var missing *MissingFieldError
	var rng *OutOfRangeError
	return errors.As(err, &missing) || errors.As(err, &rng)
}

// IsInsufficientData reports whether err signals too few captures.
func IsInsufficientData(err error) bool {
	var e *InsufficientDataError
	return errors.As(err, &e)
}

// IsCatalogError reports whether err originated in the catalog lookup.
func IsCatalogError(err error) bool {
	var e *CatalogError
	return errors.As(err, &e)
}
