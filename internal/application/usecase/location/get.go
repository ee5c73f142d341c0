package location

import (
	"context"

	"github.com/dlaan/geopoint/internal/application/port/outbound"
	"github.com/dlaan/geopoint/internal/domain/entity"
)

type GetUseCaseImpl struct {
	Locations outbound.LocationRepository
}

func NewGetLocationUseCase(locations outbound.LocationRepository) *GetUseCaseImpl {
	return &GetUseCaseImpl{Locations: locations}
}

func (uc *GetUseCaseImpl) Execute(ctx context.Context, id string) (Output, error) {
	if id == "" {
		return Output{}, entity.ErrIDIsRequired
	}

	loc, err := uc.Locations.FindByID(ctx, id)
	if err != nil {
		return Output{}, err
	}
	return newOutput(loc), nil
}
