// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"fmt"
	"slices"
)

// Role is a membership role. Organization scope uses owner, admin,
// member and viewer, strictly ordered by privilege. Team and project
// scope uses manager and member, layered within an organization
// membership.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleMember  Role = "member"
	RoleViewer  Role = "viewer"
	RoleManager Role = "manager"
)

// Status is the access status of a membership. A banned membership
// resolves to no permissions regardless of role, but the row is kept so
// reactivation does not require re-invitation.
type Status string

const (
	StatusActive Status = "active"
	StatusBanned Status = "banned"
)

// Action is a coarse-grained permission verb.
type Action string

const (
	ActionUpdateOrganization     Action = "updateOrganization"
	ActionDeleteOrganization     Action = "deleteOrganization"
	ActionTransferOwnership      Action = "transferOwnership"
	ActionManageUsers            Action = "manageUsers"
	ActionRemoveUser             Action = "removeUser"
	ActionCreateTeam             Action = "createTeam"
	ActionUpdateTeam             Action = "updateTeam"
	ActionDeleteTeam             Action = "deleteTeam"
	ActionManageTeamUsers        Action = "manageTeamUsers"
	ActionCreateProject          Action = "createProject"
	ActionUpdateProject          Action = "updateProject"
	ActionDeleteProject          Action = "deleteProject"
	ActionTransferProjectManager Action = "transferProjectManager"
	ActionViewResources          Action = "viewResources"
	ActionEditResources          Action = "editResources"
)

// Organization role action sets are additive from viewer upward: each
// set is a strict superset of the one below it.
var (
	viewerActions = []Action{
		ActionViewResources,
	}

	memberActions = append(slices.Clone(viewerActions),
		ActionEditResources,
	)

	adminActions = append(slices.Clone(memberActions),
		ActionUpdateOrganization,
		ActionManageUsers,
		ActionRemoveUser,
		ActionCreateTeam,
		ActionUpdateTeam,
		ActionDeleteTeam,
		ActionManageTeamUsers,
		ActionCreateProject,
		ActionUpdateProject,
		ActionDeleteProject,
		ActionTransferProjectManager,
	)

	ownerActions = append(slices.Clone(adminActions),
		ActionTransferOwnership,
		ActionDeleteOrganization,
	)

	managerActions = append(slices.Clone(memberActions),
		ActionUpdateTeam,
		ActionUpdateProject,
		ActionManageTeamUsers,
		ActionTransferProjectManager,
	)
)

var rolePermissions = map[Role][]Action{
	RoleOwner:   ownerActions,
	RoleAdmin:   adminActions,
	RoleMember:  memberActions,
	RoleViewer:  viewerActions,
	RoleManager: managerActions,
}

// orgRoleRank orders organization roles by privilege.
var orgRoleRank = map[Role]int{
	RoleOwner:  4,
	RoleAdmin:  3,
	RoleMember: 2,
	RoleViewer: 1,
}

// Permissions returns the action set for a role. The table is total
// over the role enum; an undefined role is a programming error.
func Permissions(role Role) []Action {
	actions, ok := rolePermissions[role]
	if !ok {
		panic(fmt.Sprintf("undefined role: %q", role))
	}
	return slices.Clone(actions)
}

// RoleAllows reports whether the role's action set contains the action.
func RoleAllows(role Role, action Action) bool {
	actions, ok := rolePermissions[role]
	if !ok {
		panic(fmt.Sprintf("undefined role: %q", role))
	}
	return slices.Contains(actions, action)
}

// IsOrgRole reports whether the role is valid at organization scope.
func IsOrgRole(role Role) bool {
	_, ok := orgRoleRank[role]
	return ok
}

// IsScopeRole reports whether the role is valid at team or project scope.
func IsScopeRole(role Role) bool {
	return role == RoleManager || role == RoleMember
}

// OrgRoles lists the organization roles in descending privilege order.
func OrgRoles() []Role {
	return []Role{RoleOwner, RoleAdmin, RoleMember, RoleViewer}
}
