package outbound

import (
	"context"

	"github.com/dlaan/geopoint/internal/domain/entity"
)

// RadiusFilter restricts a listing to records within Meters of the center
// point and forces distance-ascending ordering.
type RadiusFilter struct {
	Latitude  float64
	Longitude float64
	Meters    float64
}

// ListQuery carries the optional listing predicates. A nil Radius means no
// spatial filtering. Ordering is "timestamp" or "-timestamp"; empty means the
// default most-recent-first, and it is ignored entirely when Radius is set.
type ListQuery struct {
	Radius   *RadiusFilter
	OwnerID  string
	Ordering string
}

type LocationRepository interface {
	Save(ctx context.Context, location *entity.Location) error
	FindByID(ctx context.Context, id string) (*entity.Location, error)
	List(ctx context.Context, query ListQuery) ([]*entity.Location, error)
}
