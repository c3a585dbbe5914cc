// AngelaMos | 2026
// cache.go

package readmodel

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes one entity type's full view collection within a
// staleness bound. It is constructed explicitly with its clock and TTL
// rather than living in package-level state, and one instance is shared
// by every concurrent reader of the entity type.
//
// Concurrent callers that find the entry stale share a single rebuild
// via singleflight instead of each issuing their own. Rebuilds are pure
// functions of store state, so an Invalidate racing an in-flight Get
// can at worst cost one extra rebuild; that is tolerated, not locked
// away.
type Cache[T any] struct {
	name  string
	ttl   time.Duration
	now   func() time.Time
	build func(ctx context.Context) ([]T, error)

	group singleflight.Group

	mu        sync.Mutex
	data      []T
	fetchedAt time.Time
	valid     bool
}

func NewCache[T any](
	name string,
	ttl time.Duration,
	now func() time.Time,
	build func(ctx context.Context) ([]T, error),
) *Cache[T] {
	if now == nil {
		now = time.Now
	}

	return &Cache[T]{
		name:  name,
		ttl:   ttl,
		now:   now,
		build: build,
	}
}

// Get returns the cached collection verbatim while the entry is fresh,
// rebuilding it otherwise. On rebuild failure nothing is stored: the
// slot stays empty, the error propagates, and the caller retries by
// calling Get again. Stale cached data is never substituted for a
// failed rebuild.
func (c *Cache[T]) Get(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	if c.valid && c.now().Sub(c.fetchedAt) < c.ttl {
		data := c.data
		c.mu.Unlock()
		return data, nil
	}
	c.mu.Unlock()

	result, err, _ := c.group.Do(c.name, func() (any, error) {
		buildCtx, span := tracer().Start(ctx, "readmodel.rebuild",
			trace.WithAttributes(attribute.String("entity", c.name)))
		defer span.End()

		data, buildErr := c.build(buildCtx)
		if buildErr != nil {
			span.RecordError(buildErr)
			return nil, buildErr
		}

		c.mu.Lock()
		c.data = data
		c.fetchedAt = c.now()
		c.valid = true
		c.mu.Unlock()

		return data, nil
	})
	if err != nil {
		return nil, err
	}

	//nolint:errcheck // the build func only ever stores []T
	return result.([]T), nil
}

// Invalidate clears the entry unconditionally; the next Get rebuilds
// regardless of age. Writers must call this themselves; there is no
// automatic write-triggered invalidation.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	c.data = nil
	c.valid = false
	c.mu.Unlock()
}

func tracer() trace.Tracer {
	return otel.Tracer("readmodel")
}
