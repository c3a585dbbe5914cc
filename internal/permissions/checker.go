// AngelaMos | 2026
// checker.go

package permissions

// Decision is the structured result of a permission check. Denials are
// values, never errors.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`

	// RequiredRole is the lowest-privilege role whose row grants this
	// exact (resource, action) pair, set only on denial and only when
	// some row grants it.
	RequiredRole Role `json:"required_role,omitempty"`
}

const (
	ReasonNoPrivileges  = "no admin privileges"
	ReasonInvalidTarget = "invalid resource/action"
	ReasonNotGranted    = "role does not grant this action"
)

// Checker answers permission queries against the static matrix.
type Checker struct{}

func NewChecker() *Checker {
	return &Checker{}
}

// Check resolves a single (role, resource, action) cell of the matrix.
// On denial it scans roles in ascending privilege order and reports the
// first one that grants the pair, giving callers a minimal-privilege
// hint.
func (c *Checker) Check(role Role, resource Resource, action Action) Decision {
	if role == RoleNone {
		return Decision{Allowed: false, Reason: ReasonNoPrivileges}
	}

	row, ok := matrix[role]
	if !ok {
		return Decision{Allowed: false, Reason: ReasonNoPrivileges}
	}

	grants, ok := row[resource]
	if !ok {
		return Decision{Allowed: false, Reason: ReasonInvalidTarget}
	}

	allowed, ok := grants[action]
	if !ok {
		return Decision{Allowed: false, Reason: ReasonInvalidTarget}
	}

	if allowed {
		return Decision{Allowed: true}
	}

	return Decision{
		Allowed:      false,
		Reason:       ReasonNotGranted,
		RequiredRole: c.requiredRoleFor(resource, action),
	}
}

func (c *Checker) requiredRoleFor(resource Resource, action Action) Role {
	for _, candidate := range ascendingRoles {
		if matrix[candidate][resource][action] {
			return candidate
		}
	}
	return RoleNone
}

// HasAnyPermissionOn reports whether the role holds at least one grant
// on the resource. Used to decide whether a whole navigation section is
// shown at all.
func (c *Checker) HasAnyPermissionOn(role Role, resource Resource) bool {
	row, ok := matrix[role]
	if !ok {
		return false
	}

	for _, granted := range row[resource] {
		if granted {
			return true
		}
	}

	return false
}

// HasRoleLevel compares positions in the total role order. It must not
// stand in for a resource-specific Check call: the matrix is not
// monotonic across the order for every cell.
func (c *Checker) HasRoleLevel(role, minimum Role) bool {
	return role.Level() >= minimum.Level()
}

// PermissionsForRole returns a defensive copy of the role's full matrix
// row. A null role gets an all-false row rather than a missing one.
func (c *Checker) PermissionsForRole(role Role) Row {
	row, ok := matrix[role]
	if !ok {
		return emptyRow()
	}

	out := make(Row, len(row))
	for resource, grants := range row {
		copied := make(Grants, len(grants))
		for action, granted := range grants {
			copied[action] = granted
		}
		out[resource] = copied
	}

	return out
}
