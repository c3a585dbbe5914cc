// AngelaMos | 2026
// permissions.go

package middleware

import (
	"fmt"
	"net/http"

	"github.com/ovationworks/stagedoor/internal/audit"
	"github.com/ovationworks/stagedoor/internal/core"
	"github.com/ovationworks/stagedoor/internal/permissions"
)

// PermissionGate builds route middleware from the declarative matrix.
// Every role decision in the HTTP layer goes through the checker; no
// call site branches on role strings directly.
type PermissionGate struct {
	checker *permissions.Checker
	sink    audit.Sink
}

func NewPermissionGate(
	checker *permissions.Checker,
	sink audit.Sink,
) *PermissionGate {
	return &PermissionGate{checker: checker, sink: sink}
}

// Require gates a route on one (resource, action) grant. Denials are
// audited and reported with the minimal role that would be sufficient.
func (g *PermissionGate) Require(
	resource permissions.Resource,
	action permissions.Action,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := permissions.ParseRole(GetUserRole(r.Context()))

			decision := g.checker.Check(role, resource, action)
			if decision.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			g.sink.Record(r.Context(), audit.Entry{
				Actor:    GetUserID(r.Context()),
				Role:     role.String(),
				Action:   "denied:" + string(action),
				Resource: string(resource),
				Detail:   decision.Reason,
			})

			message := decision.Reason
			if decision.RequiredRole != permissions.RoleNone {
				message = fmt.Sprintf(
					"%s (requires %s)", decision.Reason, decision.RequiredRole)
			}

			core.JSONError(w, core.ForbiddenError(message))
		})
	}
}

// RequireAnyOn gates a route on holding at least one grant for the
// resource, mirroring how navigation sections are shown.
func (g *PermissionGate) RequireAnyOn(
	resource permissions.Resource,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := permissions.ParseRole(GetUserRole(r.Context()))

			if !g.checker.HasAnyPermissionOn(role, resource) {
				core.JSONError(
					w,
					core.ForbiddenError("no access to "+string(resource)),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
