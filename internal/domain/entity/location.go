package entity

import (
	"fmt"
	"time"
)

// Owner is the user a location was attributed to at creation time.
// Only id and username are ever exposed.
type Owner struct {
	ID       string
	Username string
}

// Location is a stored geographic point. Coordinates are always validated
// before a Location can exist; the distance annotation is only set when the
// record was produced by a radius query.
type Location struct {
	id             string
	longitude      float64
	latitude       float64
	recordedAt     time.Time
	owner          *Owner
	distanceMeters *float64
}

func NewLocation(id string, longitude, latitude float64, recordedAt time.Time, owner *Owner) (*Location, error) {
	l := &Location{
		id:         id,
		longitude:  longitude,
		latitude:   latitude,
		recordedAt: recordedAt,
		owner:      owner,
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Location) Validate() error {
	if l.id == "" {
		return ErrIDIsRequired
	}
	if err := ValidateCoordinate(l.longitude, l.latitude); err != nil {
		return err
	}
	return nil
}

// ValidateCoordinate checks a (longitude, latitude) pair against geographic
// bounds, citing the offending value.
func ValidateCoordinate(longitude, latitude float64) error {
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("%w, got %v", ErrLongitudeOutOfRange, longitude)
	}
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("%w, got %v", ErrLatitudeOutOfRange, latitude)
	}
	return nil
}

func (l *Location) ID() string {
	return l.id
}

func (l *Location) Longitude() float64 {
	return l.longitude
}

func (l *Location) Latitude() float64 {
	return l.latitude
}

func (l *Location) RecordedAt() time.Time {
	return l.recordedAt
}

func (l *Location) Owner() *Owner {
	return l.owner
}

// ClearOwner drops the owner reference. Mirrors the store behaviour when the
// referenced user is deleted.
func (l *Location) ClearOwner() {
	l.owner = nil
}

// DistanceMeters returns the geodesic distance annotation, or nil when the
// record was not produced by a radius query.
func (l *Location) DistanceMeters() *float64 {
	return l.distanceMeters
}

func (l *Location) AnnotateDistance(meters float64) {
	l.distanceMeters = &meters
}
