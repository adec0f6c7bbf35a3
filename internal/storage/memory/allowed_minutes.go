package memory

import (
	"context"
	"sync/atomic"

	"overstay/internal/domain"
)

// AllowedMinutesStore keeps the setting for the life of the process.
// Writers swap a whole snapshot, so concurrent writes are last-write-wins
// and readers never see a partial update.
type AllowedMinutesStore struct {
	current atomic.Pointer[domain.AllowedMinutesSetting]
}

func NewAllowedMinutesStore() *AllowedMinutesStore {
	return &AllowedMinutesStore{}
}

// Get returns nil, nil when nothing has been configured.
func (s *AllowedMinutesStore) Get(ctx context.Context) (*domain.AllowedMinutesSetting, error) {
	cur := s.current.Load()
	if cur == nil {
		return nil, nil
	}
	cp := *cur
	return &cp, nil
}

func (s *AllowedMinutesStore) Set(ctx context.Context, setting domain.AllowedMinutesSetting) error {
	s.current.Store(&setting)
	return nil
}
