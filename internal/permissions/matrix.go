// AngelaMos | 2026
// matrix.go

package permissions

// Grants maps every action in the closed vocabulary to an explicit
// boolean. Rows are fully enumerated on purpose: an absent entry is a
// table-authoring bug, not an implicit deny.
type Grants map[Action]bool

// Row maps every resource to its grants for one role.
type Row map[Resource]Grants

// matrix is the hand-authored permission table, one row per non-null
// role. Grants are deliberately not monotonic across the role order
// (staff edit events that moderators cannot), so callers must consult
// the table rather than compare role levels.
var matrix = map[Role]Row{
	RoleStaff: {
		ResourceUsers:     {ActionView: false, ActionCreate: false, ActionEdit: false, ActionDelete: false, ActionApprove: false},
		ResourceCompanies: {ActionView: true, ActionCreate: false, ActionEdit: false, ActionDelete: false, ActionApprove: false},
		ResourceOpenings:  {ActionView: true, ActionCreate: false, ActionEdit: false, ActionDelete: false, ActionApprove: false},
		ResourceEvents:    {ActionView: true, ActionCreate: false, ActionEdit: true, ActionDelete: false, ActionApprove: false},
		ResourceAnalytics: {ActionView: false, ActionCreate: false, ActionEdit: false, ActionDelete: false, ActionApprove: false},
	},
	RoleModerator: {
		ResourceUsers:     {ActionView: true, ActionCreate: false, ActionEdit: true, ActionDelete: false, ActionApprove: true},
		ResourceCompanies: {ActionView: true, ActionCreate: false, ActionEdit: true, ActionDelete: false, ActionApprove: true},
		ResourceOpenings:  {ActionView: true, ActionCreate: false, ActionEdit: true, ActionDelete: false, ActionApprove: true},
		ResourceEvents:    {ActionView: true, ActionCreate: false, ActionEdit: false, ActionDelete: false, ActionApprove: true},
		ResourceAnalytics: {ActionView: true, ActionCreate: false, ActionEdit: false, ActionDelete: false, ActionApprove: false},
	},
	RoleAdmin: {
		ResourceUsers:     {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true, ActionApprove: true},
		ResourceCompanies: {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true, ActionApprove: true},
		ResourceOpenings:  {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true, ActionApprove: true},
		ResourceEvents:    {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true, ActionApprove: true},
		ResourceAnalytics: {ActionView: true, ActionCreate: false, ActionEdit: false, ActionDelete: false, ActionApprove: false},
	},
	RoleSuperAdmin: {
		ResourceUsers:     {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true, ActionApprove: true},
		ResourceCompanies: {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true, ActionApprove: true},
		ResourceOpenings:  {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true, ActionApprove: true},
		ResourceEvents:    {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true, ActionApprove: true},
		ResourceAnalytics: {ActionView: true, ActionCreate: true, ActionEdit: true, ActionDelete: true, ActionApprove: true},
	},
}

func emptyGrants() Grants {
	g := make(Grants, len(Actions))
	for _, a := range Actions {
		g[a] = false
	}
	return g
}

func emptyRow() Row {
	row := make(Row, len(Resources))
	for _, res := range Resources {
		row[res] = emptyGrants()
	}
	return row
}
