// AngelaMos | 2026
// cache_test.go

package readmodel

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestCacheServesFreshWithoutRebuild(t *testing.T) {
	clock := newFakeClock()
	var builds atomic.Int32

	cache := NewCache("companies", 5*time.Minute, clock.Now,
		func(ctx context.Context) ([]string, error) {
			builds.Add(1)
			return []string{"a", "b"}, nil
		})

	ctx := context.Background()

	first, err := cache.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	clock.Advance(4 * time.Minute)

	second, err := cache.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if builds.Load() != 1 {
		t.Fatalf("builds = %d, want 1 within freshness window", builds.Load())
	}
	if len(first) != len(second) || first[0] != second[0] {
		t.Fatal("fresh Get returned different data")
	}
}

func TestCacheRebuildsAfterTTL(t *testing.T) {
	clock := newFakeClock()
	var builds atomic.Int32

	cache := NewCache("companies", 5*time.Minute, clock.Now,
		func(ctx context.Context) ([]int, error) {
			builds.Add(1)
			return []int{int(builds.Load())}, nil
		})

	ctx := context.Background()

	if _, err := cache.Get(ctx); err != nil {
		t.Fatalf("Get: %v", err)
	}

	clock.Advance(5 * time.Minute)

	data, err := cache.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if builds.Load() != 2 {
		t.Fatalf("builds = %d, want 2 after TTL", builds.Load())
	}
	if data[0] != 2 {
		t.Fatalf("data = %v, want rebuilt snapshot", data)
	}
}

func TestCacheInvalidateForcesRebuild(t *testing.T) {
	clock := newFakeClock()
	var builds atomic.Int32

	cache := NewCache("users", 5*time.Minute, clock.Now,
		func(ctx context.Context) ([]int, error) {
			builds.Add(1)
			return []int{1}, nil
		})

	ctx := context.Background()

	if _, err := cache.Get(ctx); err != nil {
		t.Fatalf("Get: %v", err)
	}

	cache.Invalidate()

	if _, err := cache.Get(ctx); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if builds.Load() != 2 {
		t.Fatalf("builds = %d, want 2 after invalidate", builds.Load())
	}
}

func TestCacheFailureStoresNothing(t *testing.T) {
	clock := newFakeClock()
	wantErr := errors.New("store down")
	var builds atomic.Int32
	var fail atomic.Bool
	fail.Store(true)

	cache := NewCache("events", 5*time.Minute, clock.Now,
		func(ctx context.Context) ([]string, error) {
			builds.Add(1)
			if fail.Load() {
				return nil, wantErr
			}
			return []string{"ok"}, nil
		})

	ctx := context.Background()

	if _, err := cache.Get(ctx); !errors.Is(err, wantErr) {
		t.Fatalf("Get error = %v, want %v", err, wantErr)
	}

	// The failed rebuild must not have filled the slot: the next Get
	// rebuilds again rather than serving anything.
	fail.Store(false)
	data, err := cache.Get(ctx)
	if err != nil {
		t.Fatalf("Get after recovery: %v", err)
	}
	if builds.Load() != 2 {
		t.Fatalf("builds = %d, want retry after failure", builds.Load())
	}
	if len(data) != 1 || data[0] != "ok" {
		t.Fatalf("data = %v", data)
	}
}

func TestCacheConcurrentGetsShareOneRebuild(t *testing.T) {
	clock := newFakeClock()
	var builds atomic.Int32
	release := make(chan struct{})

	cache := NewCache("companies", 5*time.Minute, clock.Now,
		func(ctx context.Context) ([]int, error) {
			builds.Add(1)
			<-release
			return []int{42}, nil
		})

	ctx := context.Background()

	const readers = 8
	var wg sync.WaitGroup
	results := make([][]int, readers)
	errs := make([]error, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = cache.Get(ctx)
		}(i)
	}

	// Give the goroutines a moment to pile up on the shared rebuild.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if builds.Load() != 1 {
		t.Fatalf("builds = %d, want concurrent readers to share one", builds.Load())
	}
	for i := 0; i < readers; i++ {
		if errs[i] != nil {
			t.Fatalf("reader %d: %v", i, errs[i])
		}
		if len(results[i]) != 1 || results[i][0] != 42 {
			t.Fatalf("reader %d got %v", i, results[i])
		}
	}
}

func TestRegistryInvalidateAll(t *testing.T) {
	clock := newFakeClock()

	st := &fakeStore{}
	registry := NewRegistry(NewBuilder(st), 5*time.Minute, clock.Now)

	ctx := context.Background()
	if _, err := registry.Companies.Get(ctx); err != nil {
		t.Fatalf("companies: %v", err)
	}
	if _, err := registry.Users.Get(ctx); err != nil {
		t.Fatalf("users: %v", err)
	}
	if _, err := registry.Events.Get(ctx); err != nil {
		t.Fatalf("events: %v", err)
	}

	registry.Invalidate(EntityAll)

	if registry.Companies.valid || registry.Users.valid || registry.Events.valid {
		t.Fatal("EntityAll should clear every cache")
	}
}
