package location

import (
	"context"
	"time"

	"github.com/dlaan/geopoint/internal/domain/entity"
	"github.com/dlaan/geopoint/pkg/metrics"
)

type CreateMetricsDecorator struct {
	Next    CreateUseCase
	Metrics metrics.Metrics
}

func (d *CreateMetricsDecorator) Execute(ctx context.Context, input CreateInput) (Output, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("CreateLocation", err == nil, time.Since(start))

	switch {
	case err == nil:
		d.Metrics.RecordLocationCreated("success")
	case entity.IsValidationError(err):
		d.Metrics.RecordLocationCreated("rejected")
	default:
		d.Metrics.RecordLocationCreated("error")
	}
	return output, err
}

type ListMetricsDecorator struct {
	Next    ListUseCase
	Metrics metrics.Metrics
}

func (d *ListMetricsDecorator) Execute(ctx context.Context, input ListInput) ([]Output, error) {
	start := time.Now()
	outputs, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("ListLocations", err == nil, time.Since(start))

	if input.HasRadius() {
		if err == nil {
			d.Metrics.RecordRadiusQuery("success")
		} else {
			d.Metrics.RecordRadiusQuery("error")
		}
	}
	return outputs, err
}

type GetMetricsDecorator struct {
	Next    GetUseCase
	Metrics metrics.Metrics
}

func (d *GetMetricsDecorator) Execute(ctx context.Context, id string) (Output, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, id)
	d.Metrics.RecordUseCaseExecution("GetLocation", err == nil, time.Since(start))
	return output, err
}
