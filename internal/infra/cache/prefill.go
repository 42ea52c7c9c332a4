package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"course-booking/internal/pkg/errs"
	"course-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const prefillKeyPrefix = "prefill:"

type RedisPrefillStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPrefillStore(client *redis.Client, ttl time.Duration) *RedisPrefillStore {
	return &RedisPrefillStore{client: client, ttl: ttl}
}

func (s *RedisPrefillStore) Save(ctx context.Context, clientID string, p shared.Prefill) error {
	b, err := json.Marshal(p)
	if err != nil {
		return errs.Wrap(err, "encode prefill")
	}
	if err := s.client.Set(ctx, prefillKeyPrefix+clientID, b, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "save prefill")
	}
	return nil
}

func (s *RedisPrefillStore) Load(ctx context.Context, clientID string) (shared.Prefill, error) {
	b, err := s.client.Get(ctx, prefillKeyPrefix+clientID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return shared.Prefill{}, errs.ErrPrefillNotFound
		}
		return shared.Prefill{}, errs.Wrap(err, "load prefill")
	}
	var p shared.Prefill
	if err := json.Unmarshal(b, &p); err != nil {
		return shared.Prefill{}, errs.Wrap(err, "decode prefill")
	}
	return p, nil
}

// NopPrefillStore is used when Redis is not configured; nothing is remembered.
type NopPrefillStore struct{}

func (NopPrefillStore) Save(context.Context, string, shared.Prefill) error { return nil }

func (NopPrefillStore) Load(context.Context, string) (shared.Prefill, error) {
	return shared.Prefill{}, errs.ErrPrefillNotFound
}

var (
	_ shared.PrefillStore = (*RedisPrefillStore)(nil)
	_ shared.PrefillStore = NopPrefillStore{}
)
