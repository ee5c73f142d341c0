package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dlaan/geopoint/internal/application/port/outbound"
	"github.com/dlaan/geopoint/internal/domain/entity"
	"github.com/dlaan/geopoint/pkg/logger"
)

type callerCtxKey struct{}

// CallerFromContext returns the authenticated user, or nil for anonymous
// requests.
func CallerFromContext(ctx context.Context) *entity.Owner {
	caller, _ := ctx.Value(callerCtxKey{}).(*entity.Owner)
	return caller
}

// WithCaller injects a caller directly, for tests.
func WithCaller(ctx context.Context, caller *entity.Owner) context.Context {
	return context.WithValue(ctx, callerCtxKey{}, caller)
}

// Authenticator resolves an optional bearer token to a user and stores it on
// the request context. Requests without a token, with an unknown token, or
// hitting a failing directory continue anonymously; reads and creates are
// public either way.
func Authenticator(directory outbound.TokenDirectory, log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			caller, err := directory.Resolve(r.Context(), token)
			if err != nil {
				log.Warn(r.Context(), "token resolution failed", logger.WithError(err))
			}
			if caller != nil {
				r = r.WithContext(WithCaller(r.Context(), caller))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
