package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bodyshop-chat/internal/booking"
)

const keyPrefix = "booking:session:"

// RedisStore keeps sessions as JSON values with a server-side expiry, so
// several server instances can share a dialogue.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisStore returns a RedisStore. A non-positive ttl uses DefaultTTL.
func NewRedisStore(client redis.Cmdable, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("session: redis client must not be nil")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func (r *RedisStore) Get(ctx context.Context, id string) (booking.Session, bool, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return booking.Session{}, false, nil
		}
		return booking.Session{}, false, fmt.Errorf("session: Get: %w", err)
	}

	var s booking.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return booking.Session{}, false, fmt.Errorf("session: Get decode: %w", err)
	}
	return s, true, nil
}

func (r *RedisStore) Set(ctx context.Context, s booking.Session) error {
	if s.ID == "" {
		return errors.New("session: Set: id must not be empty")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: Set encode: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("session: Set: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("session: Delete: %w", err)
	}
	return nil
}
