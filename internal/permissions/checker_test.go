// AngelaMos | 2026
// checker_test.go

package permissions

import "testing"

func TestCheckMatchesMatrix(t *testing.T) {
	checker := NewChecker()

	for role, row := range matrix {
		for resource, grants := range row {
			for action, granted := range grants {
				decision := checker.Check(role, resource, action)
				if decision.Allowed != granted {
					t.Errorf("Check(%s, %s, %s) = %v, matrix says %v",
						role, resource, action, decision.Allowed, granted)
				}
			}
		}
	}
}

func TestCheckNullRoleDeniesEverything(t *testing.T) {
	checker := NewChecker()

	for _, resource := range Resources {
		for _, action := range Actions {
			decision := checker.Check(RoleNone, resource, action)
			if decision.Allowed {
				t.Errorf("Check(none, %s, %s) allowed", resource, action)
			}
			if decision.Reason != ReasonNoPrivileges {
				t.Errorf("Check(none, %s, %s) reason = %q, want %q",
					resource, action, decision.Reason, ReasonNoPrivileges)
			}
		}
	}
}

func TestCheckUnknownRole(t *testing.T) {
	checker := NewChecker()

	decision := checker.Check(Role("owner"), ResourceUsers, ActionView)
	if decision.Allowed {
		t.Fatal("unknown role allowed")
	}
	if decision.Reason != ReasonNoPrivileges {
		t.Fatalf("reason = %q, want %q", decision.Reason, ReasonNoPrivileges)
	}
}

func TestCheckInvalidTarget(t *testing.T) {
	checker := NewChecker()

	decision := checker.Check(RoleAdmin, Resource("payments"), ActionView)
	if decision.Allowed {
		t.Fatal("invalid resource allowed")
	}
	if decision.Reason != ReasonInvalidTarget {
		t.Fatalf("reason = %q, want %q", decision.Reason, ReasonInvalidTarget)
	}

	decision = checker.Check(RoleAdmin, ResourceUsers, Action("export"))
	if decision.Allowed {
		t.Fatal("invalid action allowed")
	}
	if decision.Reason != ReasonInvalidTarget {
		t.Fatalf("reason = %q, want %q", decision.Reason, ReasonInvalidTarget)
	}
}

func TestCheckRequiredRoleHint(t *testing.T) {
	checker := NewChecker()

	// Staff cannot view users; the moderator row is the lowest that can,
	// even though staff holds grants moderators lack elsewhere.
	decision := checker.Check(RoleStaff, ResourceUsers, ActionView)
	if decision.Allowed {
		t.Fatal("staff users.view allowed")
	}
	if decision.RequiredRole != RoleModerator {
		t.Fatalf("required role = %q, want %q",
			decision.RequiredRole, RoleModerator)
	}

	// Moderators cannot edit events while staff can; the hint is the
	// lowest granting role in the order, not the next level up.
	decision = checker.Check(RoleModerator, ResourceEvents, ActionEdit)
	if decision.Allowed {
		t.Fatal("moderator events.edit allowed")
	}
	if decision.RequiredRole != RoleStaff {
		t.Fatalf("required role = %q, want %q",
			decision.RequiredRole, RoleStaff)
	}

	if decision.Reason != ReasonNotGranted {
		t.Fatalf("reason = %q, want %q", decision.Reason, ReasonNotGranted)
	}
}

func TestHasAnyPermissionOn(t *testing.T) {
	checker := NewChecker()

	tests := []struct {
		role     Role
		resource Resource
		want     bool
	}{
		{RoleStaff, ResourceUsers, false},
		{RoleStaff, ResourceEvents, true},
		{RoleStaff, ResourceAnalytics, false},
		{RoleModerator, ResourceUsers, true},
		{RoleModerator, ResourceAnalytics, true},
		{RoleSuperAdmin, ResourceAnalytics, true},
		{RoleNone, ResourceUsers, false},
	}

	for _, tt := range tests {
		got := checker.HasAnyPermissionOn(tt.role, tt.resource)
		if got != tt.want {
			t.Errorf("HasAnyPermissionOn(%s, %s) = %v, want %v",
				tt.role, tt.resource, got, tt.want)
		}
	}
}

func TestHasRoleLevel(t *testing.T) {
	checker := NewChecker()

	if !checker.HasRoleLevel(RoleAdmin, RoleModerator) {
		t.Error("admin should satisfy moderator minimum")
	}
	if !checker.HasRoleLevel(RoleModerator, RoleModerator) {
		t.Error("role should satisfy its own level")
	}
	if checker.HasRoleLevel(RoleStaff, RoleAdmin) {
		t.Error("staff should not satisfy admin minimum")
	}
	if checker.HasRoleLevel(RoleNone, RoleStaff) {
		t.Error("none should not satisfy staff minimum")
	}

	// Level ordering does not imply grant ordering: moderator outranks
	// staff yet lacks events.edit.
	if !checker.HasRoleLevel(RoleModerator, RoleStaff) {
		t.Fatal("moderator should outrank staff")
	}
	if checker.Check(RoleModerator, ResourceEvents, ActionEdit).Allowed {
		t.Fatal("moderator events.edit should stay denied despite level")
	}
}

func TestPermissionsForRole(t *testing.T) {
	checker := NewChecker()

	row := checker.PermissionsForRole(RoleStaff)
	if len(row) != len(Resources) {
		t.Fatalf("row has %d resources, want %d", len(row), len(Resources))
	}
	if !row[ResourceEvents][ActionEdit] {
		t.Error("staff events.edit missing from row")
	}

	// Mutating the copy must not leak into the matrix.
	row[ResourceUsers][ActionDelete] = true
	if checker.Check(RoleStaff, ResourceUsers, ActionDelete).Allowed {
		t.Fatal("matrix mutated through returned row")
	}

	empty := checker.PermissionsForRole(RoleNone)
	for resource, grants := range empty {
		for action, granted := range grants {
			if granted {
				t.Errorf("null role granted %s.%s", resource, action)
			}
		}
	}
	if len(empty) != len(Resources) {
		t.Fatalf("null row has %d resources, want %d",
			len(empty), len(Resources))
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"staff", RoleStaff},
		{"moderator", RoleModerator},
		{"admin", RoleAdmin},
		{"super_admin", RoleSuperAdmin},
		{"", RoleNone},
		{"none", RoleNone},
		{"superuser", RoleNone},
	}

	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoleLevelOrder(t *testing.T) {
	order := []Role{RoleNone, RoleStaff, RoleModerator, RoleAdmin, RoleSuperAdmin}
	for i := 1; i < len(order); i++ {
		if order[i].Level() <= order[i-1].Level() {
			t.Errorf("%s level %d not above %s level %d",
				order[i], order[i].Level(), order[i-1], order[i-1].Level())
		}
	}
}
