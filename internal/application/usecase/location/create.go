package location

import (
	"context"
	"time"

	"github.com/dlaan/geopoint/internal/application/port/outbound"
	"github.com/dlaan/geopoint/internal/domain/entity"
	"github.com/dlaan/geopoint/pkg/events"
	"github.com/dlaan/geopoint/pkg/logger"
	"github.com/google/uuid"
)

type CreateUseCaseImpl struct {
	Locations  outbound.LocationRepository
	Dispatcher events.EventDispatcher
	Logger     logger.Logger

	now func() time.Time
}

func NewCreateLocationUseCase(locations outbound.LocationRepository, dispatcher events.EventDispatcher, log logger.Logger) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{
		Locations:  locations,
		Dispatcher: dispatcher,
		Logger:     log,
		now:        time.Now,
	}
}

func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input CreateInput) (Output, error) {
	longitude, latitude, err := input.Coordinate()
	if err != nil {
		return Output{}, err
	}

	recordedAt := uc.now().UTC()
	if input.Timestamp != nil {
		recordedAt = *input.Timestamp
	}

	loc, err := entity.NewLocation(uuid.NewString(), longitude, latitude, recordedAt, input.Owner)
	if err != nil {
		return Output{}, err
	}

	if err := uc.Locations.Save(ctx, loc); err != nil {
		return Output{}, err
	}

	output := newOutput(loc)

	// The record is already persisted; a failed publish must not fail the
	// request.
	if uc.Dispatcher != nil {
		if err := uc.Dispatcher.Dispatch(ctx, events.New("location.created", output)); err != nil {
			uc.Logger.Warn(ctx, "location.created publish failed",
				logger.String("location_id", loc.ID()),
				logger.WithError(err),
			)
		}
	}

	return output, nil
}
