package redis

import (
	"context"
	"encoding/json"
	"errors"

	"overstay/internal/domain"
	"overstay/pkg/e"

	goredis "github.com/redis/go-redis/v9"
)

// AllowedMinutesStore shares the setting between instances through one key.
// The whole setting is written with a single SET, so readers observe one
// snapshot and concurrent writers are last-write-wins.
type AllowedMinutesStore struct {
	client goredis.UniversalClient
	key    string
}

func NewAllowedMinutesStore(client goredis.UniversalClient, key string) *AllowedMinutesStore {
	return &AllowedMinutesStore{
		client: client,
		key:    key,
	}
}

func (s *AllowedMinutesStore) Get(ctx context.Context) (*domain.AllowedMinutesSetting, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, e.WrapError(ctx, "redis.AllowedMinutesStore.Get", err)
	}

	var setting domain.AllowedMinutesSetting
	if err := json.Unmarshal(data, &setting); err != nil {
		return nil, e.Wrap("redis.AllowedMinutesStore.Get.Unmarshal", err)
	}

	return &setting, nil
}

func (s *AllowedMinutesStore) Set(ctx context.Context, setting domain.AllowedMinutesSetting) error {
	b, err := json.Marshal(setting)
	if err != nil {
		return e.Wrap("redis.AllowedMinutesStore.Set.Marshal", err)
	}
	if err := s.client.Set(ctx, s.key, b, 0).Err(); err != nil {
		return e.WrapError(ctx, "redis.AllowedMinutesStore.Set", err)
	}
	return nil
}
