package outbound

import (
	"context"

	"github.com/dlaan/geopoint/internal/domain/entity"
)

// TokenDirectory resolves an API token to the user it belongs to.
// An unknown token resolves to (nil, nil).
type TokenDirectory interface {
	Resolve(ctx context.Context, token string) (*entity.Owner, error)
}
