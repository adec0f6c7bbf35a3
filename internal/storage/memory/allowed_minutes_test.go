package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"overstay/internal/domain"
	"overstay/internal/storage/memory"
)

func TestAllowedMinutesStore_UnsetIsNil(t *testing.T) {
	t.Parallel()

	s := memory.NewAllowedMinutesStore()

	got, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil setting got %+v", got)
	}
}

func TestAllowedMinutesStore_SetThenGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.NewAllowedMinutesStore()

	want := domain.NewAllowedMinutesSetting(0, time.Now())
	if err := s.Set(ctx, want); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || *got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}

	got.Minutes = 99
	again, _ := s.Get(ctx)
	if again.Minutes != 0 {
		t.Fatalf("caller mutation leaked into store: %d", again.Minutes)
	}
}

func TestAllowedMinutesStore_LastWriteWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.NewAllowedMinutesStore()

	var wg sync.WaitGroup
	for i := 0; i <= 180; i++ {
		wg.Add(1)
		go func(m int) {
			defer wg.Done()
			_ = s.Set(ctx, domain.NewAllowedMinutesSetting(m, time.Now()))
			if cur, _ := s.Get(ctx); cur == nil || cur.Minutes < 0 || cur.Minutes > 180 {
				t.Errorf("inconsistent snapshot: %+v", cur)
			}
		}(i)
	}
	wg.Wait()

	final := domain.NewAllowedMinutesSetting(42, time.Now())
	_ = s.Set(ctx, final)
	got, _ := s.Get(ctx)
	if *got != final {
		t.Fatalf("got %+v want %+v", got, final)
	}
}
