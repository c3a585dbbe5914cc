// AngelaMos | 2026
// handler.go

package directory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ovationworks/stagedoor/internal/audit"
	"github.com/ovationworks/stagedoor/internal/core"
	"github.com/ovationworks/stagedoor/internal/middleware"
	"github.com/ovationworks/stagedoor/internal/permissions"
	"github.com/ovationworks/stagedoor/internal/readmodel"
)

type Handler struct {
	service   *Service
	checker   *permissions.Checker
	sink      audit.Sink
	validator *validator.Validate
}

func NewHandler(
	service *Service,
	checker *permissions.Checker,
	sink audit.Sink,
) *Handler {
	return &Handler{
		service:   service,
		checker:   checker,
		sink:      sink,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	requirePermission func(permissions.Resource, permissions.Action) func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)

		r.Group(func(r chi.Router) {
			r.Use(requirePermission(permissions.ResourceCompanies, permissions.ActionView))
			r.Get("/companies", h.ListCompanies)
			r.Post("/companies/refresh", h.refreshHandler(readmodel.EntityCompanies))
		})

		r.Group(func(r chi.Router) {
			r.Use(requirePermission(permissions.ResourceUsers, permissions.ActionView))
			r.Get("/users", h.ListUsers)
			r.Post("/users/refresh", h.refreshHandler(readmodel.EntityUsers))
		})

		r.Group(func(r chi.Router) {
			r.Use(requirePermission(permissions.ResourceEvents, permissions.ActionView))
			r.Get("/events", h.ListEvents)
			r.Post("/events/refresh", h.refreshHandler(readmodel.EntityEvents))
		})

		r.Get("/permissions", h.GetPermissions)
	})
}

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	params := CompanyListParams{
		Search:   r.URL.Query().Get("search"),
		Status:   r.URL.Query().Get("status"),
		Sort:     r.URL.Query().Get("sort"),
		Order:    r.URL.Query().Get("order"),
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 0),
	}

	if err := h.validator.Struct(params); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result, err := h.service.ListCompanies(r.Context(), params)
	if err != nil {
		h.writeListError(w, err)
		return
	}

	h.recordAccess(r, "list", "companies")
	core.Paginated(w, result.Items, pageNumber(params.Page),
		h.service.EffectivePageSize(params.PageSize), result.Total)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := UserListParams{
		Search:   r.URL.Query().Get("search"),
		Status:   r.URL.Query().Get("status"),
		Role:     r.URL.Query().Get("role"),
		Sort:     r.URL.Query().Get("sort"),
		Order:    r.URL.Query().Get("order"),
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 0),
	}

	if err := h.validator.Struct(params); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result, err := h.service.ListUsers(r.Context(), params)
	if err != nil {
		h.writeListError(w, err)
		return
	}

	h.recordAccess(r, "list", "users")
	core.Paginated(w, result.Items, pageNumber(params.Page),
		h.service.EffectivePageSize(params.PageSize), result.Total)
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := EventListParams{
		Search:   r.URL.Query().Get("search"),
		Status:   r.URL.Query().Get("status"),
		Sort:     r.URL.Query().Get("sort"),
		Order:    r.URL.Query().Get("order"),
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 0),
	}

	if err := h.validator.Struct(params); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result, err := h.service.ListEvents(r.Context(), params)
	if err != nil {
		h.writeListError(w, err)
		return
	}

	h.recordAccess(r, "list", "events")
	core.Paginated(w, result.Items, pageNumber(params.Page),
		h.service.EffectivePageSize(params.PageSize), result.Total)
}

func (h *Handler) refreshHandler(entity string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.service.Refresh(r.Context(), entity); err != nil {
			h.writeListError(w, err)
			return
		}

		h.recordAccess(r, "refresh", entity)
		core.NoContent(w)
	}
}

// GetPermissions returns the caller's full matrix row plus the
// navigation sections it may see at all.
func (h *Handler) GetPermissions(w http.ResponseWriter, r *http.Request) {
	role := permissions.ParseRole(middleware.GetUserRole(r.Context()))

	row := h.checker.PermissionsForRole(role)
	grants := make(map[string]GrantRow, len(row))
	for resource, actions := range row {
		grantRow := make(GrantRow, len(actions))
		for action, granted := range actions {
			grantRow[string(action)] = granted
		}
		grants[string(resource)] = grantRow
	}

	sections := make([]string, 0, len(permissions.Resources))
	for _, resource := range permissions.Resources {
		if h.checker.HasAnyPermissionOn(role, resource) {
			sections = append(sections, string(resource))
		}
	}

	core.OK(w, PermissionsResponse{
		Role:     role.String(),
		Level:    role.Level(),
		Grants:   grants,
		Sections: sections,
	})
}

func (h *Handler) writeListError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidQuery):
		core.BadRequest(w, err.Error())
	case errors.Is(err, core.ErrStoreUnavailable):
		core.ServiceUnavailable(w, "record store unavailable")
	default:
		core.InternalServerError(w, err)
	}
}

func (h *Handler) recordAccess(r *http.Request, action, resource string) {
	h.sink.Record(r.Context(), audit.Entry{
		Actor:    middleware.GetUserID(r.Context()),
		Role:     middleware.GetUserRole(r.Context()),
		Action:   action,
		Resource: resource,
	})
}

func pageNumber(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
