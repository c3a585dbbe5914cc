// AngelaMos | 2026
// role.go

package permissions

// Role is the closed set of admin roles. The zero value RoleNone means
// the account carries no admin privileges at all.
type Role string

const (
	RoleNone       Role = ""
	RoleStaff      Role = "staff"
	RoleModerator  Role = "moderator"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// ascendingRoles orders non-null roles by privilege, lowest first. The
// required-role scan in Check walks this slice.
var ascendingRoles = []Role{
	RoleStaff,
	RoleModerator,
	RoleAdmin,
	RoleSuperAdmin,
}

var roleLevels = map[Role]int{
	RoleNone:       0,
	RoleStaff:      1,
	RoleModerator:  2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

// ParseRole maps a stored role string onto the closed set. Anything
// unrecognized degrades to RoleNone rather than erroring, matching how
// the record store treats the field as free-form text.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleStaff, RoleModerator, RoleAdmin, RoleSuperAdmin:
		return Role(s)
	default:
		return RoleNone
	}
}

// Level returns the position of the role in the total privilege order.
// The order is only safe for coarse comparisons: per-resource grants
// are not guaranteed monotonic across it.
func (r Role) Level() int {
	return roleLevels[r]
}

func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok && r != RoleNone
}

func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}
	return string(r)
}

type Resource string

const (
	ResourceUsers     Resource = "users"
	ResourceCompanies Resource = "companies"
	ResourceOpenings  Resource = "openings"
	ResourceEvents    Resource = "events"
	ResourceAnalytics Resource = "analytics"
)

var Resources = []Resource{
	ResourceUsers,
	ResourceCompanies,
	ResourceOpenings,
	ResourceEvents,
	ResourceAnalytics,
}

type Action string

const (
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
)

var Actions = []Action{
	ActionView,
	ActionCreate,
	ActionEdit,
	ActionDelete,
	ActionApprove,
}
