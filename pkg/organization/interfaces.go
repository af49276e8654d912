// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"

	"github.com/taskhive/workspace-service/internal/authorization"
	"github.com/taskhive/workspace-service/internal/types"
)

type ServiceInterface interface {
	CreateOrganization(ctx context.Context, principalID, title string) (*types.Organization, error)
	GetOrganization(ctx context.Context, principalID, orgID string) (*types.Organization, error)
	ListOrganizations(ctx context.Context, principalID string) ([]*types.Organization, error)
	UpdateOrganization(ctx context.Context, principalID, orgID, title string) error
	DeleteOrganization(ctx context.Context, principalID, orgID string) error
	RotateJoinCode(ctx context.Context, principalID, orgID string) (string, error)
	JoinByCode(ctx context.Context, principalID, code string) (*types.Membership, error)

	ListMembers(ctx context.Context, principalID, orgID string) ([]*types.Member, error)
	ChangeRole(ctx context.Context, principalID, orgID, targetID string, role authorization.Role) error
	SetStatus(ctx context.Context, principalID, orgID, targetID string, status authorization.Status) error
	TransferOwnership(ctx context.Context, principalID, orgID, targetID string) error
	RemoveMember(ctx context.Context, principalID, orgID, targetID string) error
	Leave(ctx context.Context, principalID, orgID string) error

	CreateTeam(ctx context.Context, principalID, orgID, title string) (*types.Team, error)
	ListTeams(ctx context.Context, principalID, orgID string) ([]*types.Team, error)
	UpdateTeam(ctx context.Context, principalID, orgID, teamID, title string) error
	DeleteTeam(ctx context.Context, principalID, orgID, teamID string) error
	CreateProject(ctx context.Context, principalID, orgID, title string) (*types.Project, error)
	ListProjects(ctx context.Context, principalID, orgID string) ([]*types.Project, error)
	UpdateProject(ctx context.Context, principalID, orgID, projectID, title string) error
	DeleteProject(ctx context.Context, principalID, orgID, projectID string) error

	ListScopeMembers(ctx context.Context, principalID, orgID string, kind authorization.ScopeKind, scopeID string) ([]*types.Member, error)
	AddScopeMember(ctx context.Context, principalID, orgID string, kind authorization.ScopeKind, scopeID, targetID string, role authorization.Role) (*types.ScopeMembership, error)
	SetScopeMemberRole(ctx context.Context, principalID, orgID string, kind authorization.ScopeKind, scopeID, targetID string, role authorization.Role) error
	SetScopeMemberStatus(ctx context.Context, principalID, orgID string, kind authorization.ScopeKind, scopeID, targetID string, status authorization.Status) error
	RemoveScopeMember(ctx context.Context, principalID, orgID string, kind authorization.ScopeKind, scopeID, targetID string) error
	TransferProjectManager(ctx context.Context, principalID, orgID, projectID, targetID string) error
}

// AuthorizerInterface is the decision point consulted before every
// guarded operation.
type AuthorizerInterface interface {
	Authorize(ctx context.Context, principalID string, path authorization.ResourcePath, action authorization.Action) error
}

// DBInterface is the slice of the database client the service uses to
// run multi-statement operations atomically.
type DBInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}

type StorageInterface interface {
	CreateOrganization(ctx context.Context, title, joinCode string) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	GetOrganizationByJoinCode(ctx context.Context, code string) (*types.Organization, error)
	UpdateOrganizationTitle(ctx context.Context, id, title string) error
	SetJoinCode(ctx context.Context, id, code string) error
	DeleteOrganization(ctx context.Context, id string) error
	ListOrganizationsByPrincipalID(ctx context.Context, principalID string) ([]*types.Organization, error)

	CreateTeam(ctx context.Context, orgID, title string) (*types.Team, error)
	GetTeamByID(ctx context.Context, id string) (*types.Team, error)
	ListTeamsByOrgID(ctx context.Context, orgID string) ([]*types.Team, error)
	UpdateTeamTitle(ctx context.Context, id, title string) error
	DeleteTeam(ctx context.Context, id string) error
	CreateProject(ctx context.Context, orgID, title string) (*types.Project, error)
	GetProjectByID(ctx context.Context, id string) (*types.Project, error)
	ListProjectsByOrgID(ctx context.Context, orgID string) ([]*types.Project, error)
	UpdateProjectTitle(ctx context.Context, id, title string) error
	DeleteProject(ctx context.Context, id string) error

	GetMembership(ctx context.Context, orgID, principalID string) (*types.Membership, error)
	GetMembershipForUpdate(ctx context.Context, orgID, principalID string) (*types.Membership, error)
	UpsertMembership(ctx context.Context, orgID, principalID, role, status string) (*types.Membership, error)
	SetMembershipRole(ctx context.Context, orgID, principalID, role string) error
	SetMembershipStatus(ctx context.Context, orgID, principalID, status string) error
	DeleteMembership(ctx context.Context, orgID, principalID string) error
	ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.Member, error)
	CountActiveOwners(ctx context.Context, orgID string) (int, error)

	GetScopeMembership(ctx context.Context, scopeKind, scopeID, principalID string) (*types.ScopeMembership, error)
	UpsertScopeMembership(ctx context.Context, orgID, scopeKind, scopeID, principalID, role, status string) (*types.ScopeMembership, error)
	SetScopeMembershipRole(ctx context.Context, scopeKind, scopeID, principalID, role string) error
	SetScopeMembershipStatus(ctx context.Context, scopeKind, scopeID, principalID, status string) error
	DeleteScopeMembership(ctx context.Context, scopeKind, scopeID, principalID string) error
	DeleteScopeMembershipsForPrincipal(ctx context.Context, orgID, principalID string) error
	DeleteScopeMembershipsForScope(ctx context.Context, scopeKind, scopeID string) error
	ListScopeMembers(ctx context.Context, scopeKind, scopeID string) ([]*types.Member, error)
}
