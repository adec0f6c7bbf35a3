//go:build integration

package redis

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"overstay/internal/domain"
)

var (
	testClient *goredis.Client
	tc         testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("6379/tcp"),
			wait.ForLog("Ready to accept connections"),
		).WithDeadline(60 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "6379/tcp")

	testClient = goredis.NewClient(&goredis.Options{Addr: fmt.Sprintf("%s:%s", host, mappedPort.Port())})
	if err := testClient.Ping(ctx).Err(); err != nil {
		fmt.Println("redis ping:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	_ = testClient.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func newStore(t *testing.T) *AllowedMinutesStore {
	t.Helper()
	key := "test:" + t.Name()
	t.Cleanup(func() { testClient.Del(context.Background(), key) })
	return NewAllowedMinutesStore(testClient, key)
}

func TestAllowedMinutesStore_UnsetIsNil(t *testing.T) {
	s := newStore(t)

	got, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil got %+v", got)
	}
}

func TestAllowedMinutesStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	want := domain.NewAllowedMinutesSetting(0, time.Now().Truncate(time.Millisecond))
	if err := s.Set(ctx, want); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Minutes != 0 || got.Revision != want.Revision || !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestAllowedMinutesStore_SharedBetweenInstances(t *testing.T) {
	ctx := context.Background()
	a := newStore(t)
	b := NewAllowedMinutesStore(testClient, a.key)

	if err := a.Set(ctx, domain.NewAllowedMinutesSetting(90, time.Now())); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := b.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Minutes != 90 {
		t.Fatalf("second instance saw %+v", got)
	}
}

func TestAllowedMinutesStore_ConcurrentWritesLastWins(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(m int) {
			defer wg.Done()
			if err := s.Set(ctx, domain.NewAllowedMinutesSetting(m, time.Now())); err != nil {
				t.Errorf("set: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Minutes < 0 || got.Minutes >= 50 {
		t.Fatalf("unexpected final value %+v", got)
	}
}

func TestAllowedMinutesStore_CorruptValue(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	if err := testClient.Set(ctx, s.key, "not-json", 0).Err(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := s.Get(ctx); err == nil {
		t.Fatalf("expected error for corrupt value")
	}
}
