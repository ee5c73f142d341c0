package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dlaan/geopoint/internal/domain/entity"
	"github.com/dlaan/geopoint/pkg/logger"
	"github.com/dlaan/geopoint/pkg/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

const tokenKeyPrefix = "auth:token:"

// RedisTokenDirectory resolves API tokens against Redis hashes of the form
// auth:token:<token> -> {id, username}. Lookups run through a circuit
// breaker: when Redis is down the breaker opens and requests proceed
// unauthenticated instead of failing.
type RedisTokenDirectory struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
	logger  logger.Logger
	metrics metrics.Metrics
}

func NewRedisTokenDirectory(client *redis.Client, log logger.Logger, m metrics.Metrics) *RedisTokenDirectory {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "auth-token-directory",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &RedisTokenDirectory{
		client:  client,
		breaker: breaker,
		logger:  log,
		metrics: m,
	}
}

func (d *RedisTokenDirectory) Resolve(ctx context.Context, token string) (*entity.Owner, error) {
	if token == "" {
		return nil, nil
	}

	result, err := d.breaker.Execute(func() (interface{}, error) {
		return d.client.HGetAll(ctx, tokenKeyPrefix+token).Result()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		d.metrics.IncAuthLookupFailure("breaker_open")
		d.logger.Warn(ctx, "token directory breaker open, proceeding unauthenticated")
		return nil, nil
	}
	if err != nil {
		d.metrics.IncAuthLookupFailure("redis_error")
		d.logger.Error(ctx, "token lookup failed", logger.WithError(err))
		return nil, fmt.Errorf("token lookup failed: %w", err)
	}

	fields := result.(map[string]string)
	if len(fields) == 0 {
		// unknown token
		return nil, nil
	}

	return &entity.Owner{ID: fields["id"], Username: fields["username"]}, nil
}

// RegisterToken stores a token to user mapping, used by provisioning and
// tests.
func (d *RedisTokenDirectory) RegisterToken(ctx context.Context, token string, owner entity.Owner) error {
	return d.client.HSet(ctx, tokenKeyPrefix+token, "id", owner.ID, "username", owner.Username).Err()
}
