// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/taskhive/workspace-service/internal/types"
)

// ResolverInterface resolves effective membership for a resource path.
type ResolverInterface interface {
	Resolve(ctx context.Context, principalID string, path ResourcePath) (*Resolution, error)
}

// StorageInterface is the read surface the resolver needs from the
// membership store.
type StorageInterface interface {
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	GetTeamByID(ctx context.Context, id string) (*types.Team, error)
	GetProjectByID(ctx context.Context, id string) (*types.Project, error)
	GetMembership(ctx context.Context, orgID, principalID string) (*types.Membership, error)
	GetScopeMembership(ctx context.Context, scopeKind, scopeID, principalID string) (*types.ScopeMembership, error)
}
