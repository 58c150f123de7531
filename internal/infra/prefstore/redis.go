package prefstore

import (
	"context"

	"tab-kiosk/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "kiosk:prefs:display_id:"

// RedisStore persists the opt-in remembered display ID per kiosk device.
// Values live until explicitly cleared; forgetting is always an explicit
// user action.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) SaveDisplayID(ctx context.Context, deviceKey, displayID string) error {
	if err := s.client.Set(ctx, keyPrefix+deviceKey, displayID, 0).Err(); err != nil {
		return errs.Wrap(err, "failed to persist display id")
	}
	return nil
}

func (s *RedisStore) ClearDisplayID(ctx context.Context, deviceKey string) error {
	if err := s.client.Del(ctx, keyPrefix+deviceKey).Err(); err != nil {
		return errs.Wrap(err, "failed to clear display id")
	}
	return nil
}

func (s *RedisStore) LoadDisplayID(ctx context.Context, deviceKey string) (string, bool, error) {
	value, err := s.client.Get(ctx, keyPrefix+deviceKey).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.Wrap(err, "failed to load display id")
	}
	return value, true, nil
}
