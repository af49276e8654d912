// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/taskhive/workspace-service/internal/types"
)

type StorageInterface interface {
	// principals
	CreatePrincipal(ctx context.Context, email, passwordHash string) (*types.Principal, error)
	GetPrincipalByEmail(ctx context.Context, email string) (*types.Principal, error)
	GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error)

	// organizations
	CreateOrganization(ctx context.Context, title, joinCode string) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	GetOrganizationByJoinCode(ctx context.Context, code string) (*types.Organization, error)
	UpdateOrganizationTitle(ctx context.Context, id, title string) error
	SetJoinCode(ctx context.Context, id, code string) error
	DeleteOrganization(ctx context.Context, id string) error
	ListOrganizationsByPrincipalID(ctx context.Context, principalID string) ([]*types.Organization, error)

	// teams and projects
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

	// organization memberships
	GetMembership(ctx context.Context, orgID, principalID string) (*types.Membership, error)
	GetMembershipForUpdate(ctx context.Context, orgID, principalID string) (*types.Membership, error)
	UpsertMembership(ctx context.Context, orgID, principalID, role, status string) (*types.Membership, error)
	SetMembershipRole(ctx context.Context, orgID, principalID, role string) error
	SetMembershipStatus(ctx context.Context, orgID, principalID, status string) error
	DeleteMembership(ctx context.Context, orgID, principalID string) error
	ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.Member, error)
	CountActiveOwners(ctx context.Context, orgID string) (int, error)

	// scope (team/project) memberships
	GetScopeMembership(ctx context.Context, scopeKind, scopeID, principalID string) (*types.ScopeMembership, error)
	UpsertScopeMembership(ctx context.Context, orgID, scopeKind, scopeID, principalID, role, status string) (*types.ScopeMembership, error)
	SetScopeMembershipRole(ctx context.Context, scopeKind, scopeID, principalID, role string) error
	SetScopeMembershipStatus(ctx context.Context, scopeKind, scopeID, principalID, status string) error
	DeleteScopeMembership(ctx context.Context, scopeKind, scopeID, principalID string) error
	DeleteScopeMembershipsForPrincipal(ctx context.Context, orgID, principalID string) error
	DeleteScopeMembershipsForScope(ctx context.Context, scopeKind, scopeID string) error
	ListScopeMembers(ctx context.Context, scopeKind, scopeID string) ([]*types.Member, error)
}
