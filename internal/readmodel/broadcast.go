// AngelaMos | 2026
// broadcast.go

package readmodel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const invalidationChannel = "stagedoor:readmodel:invalidate"

// Invalidator fans cache invalidations out across processes. Writers in
// the excluded admin flows publish the entity they touched; every
// replica subscribed to the channel clears its in-process cache so the
// next Get rebuilds.
type Invalidator struct {
	rdb      *redis.Client
	registry *Registry
	logger   *slog.Logger
}

func NewInvalidator(
	rdb *redis.Client,
	registry *Registry,
	logger *slog.Logger,
) *Invalidator {
	return &Invalidator{
		rdb:      rdb,
		registry: registry,
		logger:   logger,
	}
}

// Publish invalidates the local caches immediately and broadcasts the
// entity name to every other replica.
func (i *Invalidator) Publish(ctx context.Context, entity string) error {
	i.registry.Invalidate(entity)

	if err := i.rdb.Publish(ctx, invalidationChannel, entity).Err(); err != nil {
		return fmt.Errorf("publish invalidation: %w", err)
	}

	return nil
}

// Listen consumes invalidation broadcasts until ctx is cancelled. Run
// it in its own goroutine.
func (i *Invalidator) Listen(ctx context.Context) {
	pubsub := i.rdb.Subscribe(ctx, invalidationChannel)
	defer func() {
		//nolint:errcheck // best-effort close on shutdown
		_ = pubsub.Close()
	}()

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			i.registry.Invalidate(msg.Payload)
			i.logger.Debug("cache invalidated by broadcast",
				"entity", msg.Payload,
			)
		}
	}
}
