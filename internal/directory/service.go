// AngelaMos | 2026
// service.go

package directory

import (
	"context"
	"time"

	"github.com/ovationworks/stagedoor/internal/query"
	"github.com/ovationworks/stagedoor/internal/readmodel"
)

// Searchable attributes and sort vocabularies are fixed per entity;
// anything outside them fails fast as an invalid query.
var companyDefinition = query.Definition[readmodel.CompanyView]{
	SearchFields: []func(readmodel.CompanyView) string{
		func(v readmodel.CompanyView) string { return v.Name },
		func(v readmodel.CompanyView) string { return v.Email },
		func(v readmodel.CompanyView) string { return v.ContactName },
	},
	SortString: map[string]func(readmodel.CompanyView) string{
		"name":  func(v readmodel.CompanyView) string { return v.Name },
		"email": func(v readmodel.CompanyView) string { return v.Email },
	},
	SortTime: map[string]func(readmodel.CompanyView) time.Time{
		"created_at": func(v readmodel.CompanyView) time.Time { return v.CreatedAt },
	},
	SortInt: map[string]func(readmodel.CompanyView) int{
		"openings": func(v readmodel.CompanyView) int { return v.OpeningCount },
	},
	DefaultSort: "created_at",
}

var userDefinition = query.Definition[readmodel.UserView]{
	SearchFields: []func(readmodel.UserView) string{
		func(v readmodel.UserView) string { return v.Name },
		func(v readmodel.UserView) string { return v.Email },
		func(v readmodel.UserView) string { return v.Location },
	},
	SortString: map[string]func(readmodel.UserView) string{
		"name":  func(v readmodel.UserView) string { return v.Name },
		"email": func(v readmodel.UserView) string { return v.Email },
	},
	SortTime: map[string]func(readmodel.UserView) time.Time{
		"created_at": func(v readmodel.UserView) time.Time { return v.CreatedAt },
	},
	SortInt: map[string]func(readmodel.UserView) int{
		"applications": func(v readmodel.UserView) int { return v.ApplicationCount },
	},
	DefaultSort: "created_at",
}

var eventDefinition = query.Definition[readmodel.EventView]{
	SearchFields: []func(readmodel.EventView) string{
		func(v readmodel.EventView) string { return v.Title },
		func(v readmodel.EventView) string { return v.OrganizerName },
		func(v readmodel.EventView) string { return v.Venue },
	},
	SortString: map[string]func(readmodel.EventView) string{
		"title": func(v readmodel.EventView) string { return v.Title },
	},
	SortTime: map[string]func(readmodel.EventView) time.Time{
		"starts_at":  func(v readmodel.EventView) time.Time { return v.StartsAt },
		"created_at": func(v readmodel.EventView) time.Time { return v.CreatedAt },
	},
	SortInt: map[string]func(readmodel.EventView) int{
		"signups": func(v readmodel.EventView) int { return v.SignupCount },
	},
	DefaultSort: "starts_at",
}

// Broadcaster fans an invalidation out to other replicas. The registry
// is still invalidated locally when no broadcaster is configured.
type Broadcaster interface {
	Publish(ctx context.Context, entity string) error
}

type Service struct {
	registry    *readmodel.Registry
	broadcaster Broadcaster
	pageSize    int
	maxPageSize int
}

func NewService(
	registry *readmodel.Registry,
	broadcaster Broadcaster,
	pageSize, maxPageSize int,
) *Service {
	return &Service{
		registry:    registry,
		broadcaster: broadcaster,
		pageSize:    pageSize,
		maxPageSize: maxPageSize,
	}
}

func (s *Service) ListCompanies(
	ctx context.Context,
	p CompanyListParams,
) (query.Result[readmodel.CompanyView], error) {
	views, err := s.registry.Companies.Get(ctx)
	if err != nil {
		return query.Result[readmodel.CompanyView]{}, err
	}

	return companyDefinition.Run(views, query.Request[readmodel.CompanyView]{
		Search:   p.Search,
		Filters:  companyPredicates(p),
		SortKey:  p.Sort,
		SortDesc: p.Order == "desc",
		Page:     s.page(p.Page, p.PageSize),
	})
}

func (s *Service) ListUsers(
	ctx context.Context,
	p UserListParams,
) (query.Result[readmodel.UserView], error) {
	views, err := s.registry.Users.Get(ctx)
	if err != nil {
		return query.Result[readmodel.UserView]{}, err
	}

	return userDefinition.Run(views, query.Request[readmodel.UserView]{
		Search:   p.Search,
		Filters:  userPredicates(p),
		SortKey:  p.Sort,
		SortDesc: p.Order == "desc",
		Page:     s.page(p.Page, p.PageSize),
	})
}

func (s *Service) ListEvents(
	ctx context.Context,
	p EventListParams,
) (query.Result[readmodel.EventView], error) {
	views, err := s.registry.Events.Get(ctx)
	if err != nil {
		return query.Result[readmodel.EventView]{}, err
	}

	return eventDefinition.Run(views, query.Request[readmodel.EventView]{
		Search:   p.Search,
		Filters:  eventPredicates(p),
		SortKey:  p.Sort,
		SortDesc: p.Order == "desc",
		Page:     s.page(p.Page, p.PageSize),
	})
}

// Refresh invalidates the entity's cache and immediately rebuilds it,
// so the caller observes a warm, current view or the rebuild error.
func (s *Service) Refresh(ctx context.Context, entity string) error {
	if s.broadcaster != nil {
		if err := s.broadcaster.Publish(ctx, entity); err != nil {
			return err
		}
	} else {
		s.registry.Invalidate(entity)
	}

	var err error
	switch entity {
	case readmodel.EntityCompanies:
		_, err = s.registry.Companies.Get(ctx)
	case readmodel.EntityUsers:
		_, err = s.registry.Users.Get(ctx)
	case readmodel.EntityEvents:
		_, err = s.registry.Events.Get(ctx)
	}

	return err
}

func (s *Service) page(number, size int) query.Page {
	p := query.Page{Number: number, Size: size}
	p.Normalize(s.pageSize, s.maxPageSize)
	return p
}

// EffectivePageSize reports the page size a request will actually use
// after normalization, for response metadata.
func (s *Service) EffectivePageSize(size int) int {
	p := query.Page{Number: 1, Size: size}
	p.Normalize(s.pageSize, s.maxPageSize)
	return p.Size
}
