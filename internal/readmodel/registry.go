// AngelaMos | 2026
// registry.go

package readmodel

import (
	"time"
)

// Entity names used for cache registration and invalidation fan-out.
const (
	EntityCompanies = "companies"
	EntityUsers     = "users"
	EntityEvents    = "events"
	EntityAll       = "all"
)

// Registry holds exactly one cache per entity type, all sharing the
// same TTL and clock. It replaces the module-level cache variables the
// original carried: consumers receive the registry explicitly.
type Registry struct {
	Companies *Cache[CompanyView]
	Users     *Cache[UserView]
	Events    *Cache[EventView]
}

func NewRegistry(
	builder *Builder,
	ttl time.Duration,
	now func() time.Time,
) *Registry {
	return &Registry{
		Companies: NewCache(EntityCompanies, ttl, now, builder.CompanyViews),
		Users:     NewCache(EntityUsers, ttl, now, builder.UserViews),
		Events:    NewCache(EntityEvents, ttl, now, builder.EventViews),
	}
}

// Invalidate clears the named entity's cache, or every cache for
// EntityAll. Unknown names are ignored so a malformed broadcast cannot
// take the process down.
func (r *Registry) Invalidate(entity string) {
	switch entity {
	case EntityCompanies:
		r.Companies.Invalidate()
	case EntityUsers:
		r.Users.Invalidate()
	case EntityEvents:
		r.Events.Invalidate()
	case EntityAll:
		r.Companies.Invalidate()
		r.Users.Invalidate()
		r.Events.Invalidate()
	}
}
