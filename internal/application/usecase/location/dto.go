package location

import (
	"time"

	"github.com/dlaan/geopoint/internal/domain/entity"
)

// CreateInput accepts the two equivalent request shapes: a
// `coordinates:[longitude,latitude]` pair, or separate `longitude` and
// `latitude` fields. Owner is never taken from the body; the handler fills it
// in from the authenticated caller.
type CreateInput struct {
	Coordinates []float64     `json:"coordinates"`
	Longitude   *float64      `json:"longitude"`
	Latitude    *float64      `json:"latitude"`
	Timestamp   *time.Time    `json:"timestamp"`
	Owner       *entity.Owner `json:"-"`
}

// Coordinate normalizes the two shapes to a single (longitude, latitude)
// pair. The array form wins when both are present; the separate fields are
// then discarded silently.
func (in CreateInput) Coordinate() (longitude, latitude float64, err error) {
	if in.Coordinates != nil {
		if len(in.Coordinates) != 2 {
			return 0, 0, entity.ErrCoordinatesShape
		}
		return in.Coordinates[0], in.Coordinates[1], nil
	}
	if in.Longitude != nil && in.Latitude != nil {
		return *in.Longitude, *in.Latitude, nil
	}
	return 0, 0, entity.ErrCoordinatesRequired
}

// ListInput carries the optional listing parameters. The radius filter only
// triggers when Latitude, Longitude and RadiusMeters are all present.
type ListInput struct {
	Latitude     *float64
	Longitude    *float64
	RadiusMeters *float64
	OwnerID      string
	Ordering     string
}

func (in ListInput) HasRadius() bool {
	return in.Latitude != nil && in.Longitude != nil && in.RadiusMeters != nil
}

type UserOutput struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Output struct {
	ID          string      `json:"id"`
	Coordinates [2]float64  `json:"coordinates"`
	Timestamp   time.Time   `json:"timestamp"`
	Distance    *float64    `json:"distance"`
	User        *UserOutput `json:"user"`
}

func newOutput(l *entity.Location) Output {
	out := Output{
		ID:          l.ID(),
		Coordinates: [2]float64{l.Longitude(), l.Latitude()},
		Timestamp:   l.RecordedAt(),
		Distance:    l.DistanceMeters(),
	}
	if owner := l.Owner(); owner != nil {
		out.User = &UserOutput{ID: owner.ID, Username: owner.Username}
	}
	return out
}
