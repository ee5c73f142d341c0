package location

import (
	"context"

	"github.com/dlaan/geopoint/internal/application/port/outbound"
	"github.com/dlaan/geopoint/internal/domain/entity"
)

type ListUseCaseImpl struct {
	Locations outbound.LocationRepository
}

func NewListLocationsUseCase(locations outbound.LocationRepository) *ListUseCaseImpl {
	return &ListUseCaseImpl{Locations: locations}
}

func (uc *ListUseCaseImpl) Execute(ctx context.Context, input ListInput) ([]Output, error) {
	query := outbound.ListQuery{OwnerID: input.OwnerID}

	if input.HasRadius() {
		if err := entity.ValidateCoordinate(*input.Longitude, *input.Latitude); err != nil {
			return nil, err
		}
		query.Radius = &outbound.RadiusFilter{
			Latitude:  *input.Latitude,
			Longitude: *input.Longitude,
			Meters:    *input.RadiusMeters,
		}
	} else {
		// Explicit ordering only applies without a radius filter; the filter
		// forces distance-ascending order. Unknown values fall back to the
		// default most-recent-first.
		query.Ordering = normalizeOrdering(input.Ordering)
	}

	locations, err := uc.Locations.List(ctx, query)
	if err != nil {
		return nil, err
	}

	outputs := make([]Output, len(locations))
	for i, l := range locations {
		outputs[i] = newOutput(l)
	}
	return outputs, nil
}

func normalizeOrdering(ordering string) string {
	switch ordering {
	case "timestamp", "-timestamp":
		return ordering
	default:
		return ""
	}
}
