package entity

import "errors"

var (
	ErrIDIsRequired        = errors.New("id is required")
	ErrLatitudeOutOfRange  = errors.New("latitude must be between -90 and 90")
	ErrLongitudeOutOfRange = errors.New("longitude must be between -180 and 180")
	ErrCoordinatesRequired = errors.New("either 'coordinates' array or both 'longitude' and 'latitude' fields must be provided")
	ErrCoordinatesShape    = errors.New("'coordinates' must be a [longitude, latitude] pair")
	ErrLocationNotFound    = errors.New("location not found")
)

// IsValidationError reports whether err is an input validation failure,
// as opposed to a not-found or an infrastructure error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLatitudeOutOfRange) ||
		errors.Is(err, ErrLongitudeOutOfRange) ||
		errors.Is(err, ErrCoordinatesRequired) ||
		errors.Is(err, ErrCoordinatesShape)
}
