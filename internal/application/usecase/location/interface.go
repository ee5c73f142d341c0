package location

import (
	"context"
)

type CreateUseCase interface {
	Execute(ctx context.Context, input CreateInput) (Output, error)
}

type ListUseCase interface {
	Execute(ctx context.Context, input ListInput) ([]Output, error)
}

type GetUseCase interface {
	Execute(ctx context.Context, id string) (Output, error)
}
