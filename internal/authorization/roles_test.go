// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"slices"
	"testing"
)

func TestPermissionsMonotonicSupersets(t *testing.T) {
	roles := OrgRoles()

	for i := 0; i < len(roles)-1; i++ {
		higher, lower := roles[i], roles[i+1]
		higherActions := Permissions(higher)

		for _, action := range Permissions(lower) {
			if !slices.Contains(higherActions, action) {
				t.Errorf("role %s is missing action %q granted to lower role %s", higher, action, lower)
			}
		}

		if len(higherActions) <= len(Permissions(lower)) {
			t.Errorf("role %s action set is not a strict superset of %s", higher, lower)
		}
	}
}

func TestPermissionsTotalAndNonEmpty(t *testing.T) {
	for _, role := range []Role{RoleOwner, RoleAdmin, RoleMember, RoleViewer, RoleManager} {
		if len(Permissions(role)) == 0 {
			t.Errorf("role %s maps to an empty action set", role)
		}
	}
}

func TestPermissionsViewerIsReadOnly(t *testing.T) {
	actions := Permissions(RoleViewer)
	if len(actions) != 1 || actions[0] != ActionViewResources {
		t.Errorf("expected viewer to map to the minimal read-only set, got %v", actions)
	}
}

func TestPermissionsUndefinedRolePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for undefined role")
		}
	}()
	Permissions(Role("superuser"))
}

func TestRoleAllows(t *testing.T) {
	testCases := []struct {
		name    string
		role    Role
		action  Action
		allowed bool
	}{
		{"owner may transfer ownership", RoleOwner, ActionTransferOwnership, true},
		{"owner may delete organization", RoleOwner, ActionDeleteOrganization, true},
		{"admin may not transfer ownership", RoleAdmin, ActionTransferOwnership, false},
		{"admin may not delete organization", RoleAdmin, ActionDeleteOrganization, false},
		{"admin may manage users", RoleAdmin, ActionManageUsers, true},
		{"member may edit resources", RoleMember, ActionEditResources, true},
		{"member may not create projects", RoleMember, ActionCreateProject, false},
		{"viewer may view", RoleViewer, ActionViewResources, true},
		{"viewer may not edit", RoleViewer, ActionEditResources, false},
		{"manager may manage team users", RoleManager, ActionManageTeamUsers, true},
		{"manager may not delete team", RoleManager, ActionDeleteTeam, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RoleAllows(tc.role, tc.action); got != tc.allowed {
				t.Errorf("RoleAllows(%s, %s) = %v, want %v", tc.role, tc.action, got, tc.allowed)
			}
		})
	}
}

func TestScopeRoleClassification(t *testing.T) {
	if !IsScopeRole(RoleManager) || !IsScopeRole(RoleMember) {
		t.Error("manager and member are valid scope roles")
	}
	if IsScopeRole(RoleOwner) || IsScopeRole(RoleViewer) {
		t.Error("owner and viewer are not valid scope roles")
	}
	if !IsOrgRole(RoleOwner) || IsOrgRole(RoleManager) {
		t.Error("org role classification mismatch")
	}
}
