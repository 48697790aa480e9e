package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const keyPrefix = "dental-clinic:revoked:"

// RedisStore keeps revocations in Redis with a TTL matching the token
// expiry, so every API instance sees the same sign-outs.
type RedisStore struct {
	client redis.Cmdable
	now    func() time.Time
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

// NewRedisClient dials addr and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return client, nil
}

func (s *RedisStore) span(ctx context.Context, op string) (context.Context, trace.Span) {
	return otel.Tracer("redis").Start(ctx, "redis."+op,
		trace.WithAttributes(
			attribute.String("redis.operation", op),
			attribute.String("redis.client", "dental-clinic"),
		),
	)
}

func (s *RedisStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	ctx, span := s.span(ctx, "set")
	defer span.End()

	if err := s.client.Set(ctx, keyPrefix+jti, expiresAt.Unix(), ttl).Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *RedisStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	ctx, span := s.span(ctx, "exists")
	defer span.End()

	n, err := s.client.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
