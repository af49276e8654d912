// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/storage"
	"github.com/taskhive/workspace-service/internal/tracing"
)

// ScopeKind identifies the nested resource level inside an organization.
type ScopeKind string

const (
	ScopeTeam    ScopeKind = "team"
	ScopeProject ScopeKind = "project"
)

// ResourcePath identifies an organization and, optionally, a nested team
// or project within it.
type ResourcePath struct {
	OrgID   string
	Kind    ScopeKind
	ScopeID string
}

func OrgPath(orgID string) ResourcePath {
	return ResourcePath{OrgID: orgID}
}

func TeamPath(orgID, teamID string) ResourcePath {
	return ResourcePath{OrgID: orgID, Kind: ScopeTeam, ScopeID: teamID}
}

func ProjectPath(orgID, projectID string) ResourcePath {
	return ResourcePath{OrgID: orgID, Kind: ScopeProject, ScopeID: projectID}
}

// Resolution is the effective role and status of a principal for a
// resource path.
type Resolution struct {
	// Role is the effective role: the nested team/project role when one
	// exists, otherwise the organization role. Empty when Status is
	// banned, so a banned caller learns nothing about nested roles.
	Role Role
	// OrgRole caps the effective role: a nested role never grants an
	// action the organization role does not already permit.
	OrgRole Role
	Status  Status
}

type Resolver struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResolver(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	r := new(Resolver)
	r.storage = storage
	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}

// Resolve walks organization membership first, then the nested team or
// project membership. Team/project membership is only meaningful layered
// on top of an organization membership: a dangling scope row without an
// organization membership never grants access.
func (r *Resolver) Resolve(ctx context.Context, principalID string, path ResourcePath) (*Resolution, error) {
	ctx, span := r.tracer.Start(ctx, "authorization.Resolver.Resolve")
	defer span.End()

	org, err := r.storage.GetOrganizationByID(ctx, path.OrgID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to look up organization: %w", err)
	}
	if org.DeletedAt != nil {
		return nil, ErrResourceNotFound
	}

	membership, err := r.storage.GetMembership(ctx, path.OrgID, principalID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotAMember
		}
		return nil, fmt.Errorf("failed to look up membership: %w", err)
	}

	if Status(membership.Status) == StatusBanned {
		return &Resolution{Status: StatusBanned}, nil
	}

	res := &Resolution{
		Role:    Role(membership.Role),
		OrgRole: Role(membership.Role),
		Status:  StatusActive,
	}

	if path.Kind == "" {
		return res, nil
	}

	if err := r.checkScopeExists(ctx, path); err != nil {
		return nil, err
	}

	nested, err := r.storage.GetScopeMembership(ctx, string(path.Kind), path.ScopeID, principalID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// No explicit nested membership: the organization role
			// carries over.
			return res, nil
		}
		return nil, fmt.Errorf("failed to look up scope membership: %w", err)
	}

	if Status(nested.Status) == StatusBanned {
		return &Resolution{Status: StatusBanned}, nil
	}

	res.Role = Role(nested.Role)
	return res, nil
}

func (r *Resolver) checkScopeExists(ctx context.Context, path ResourcePath) error {
	switch path.Kind {
	case ScopeTeam:
		team, err := r.storage.GetTeamByID(ctx, path.ScopeID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrResourceNotFound
			}
			return fmt.Errorf("failed to look up team: %w", err)
		}
		if team.OrgID != path.OrgID {
			return ErrResourceNotFound
		}
	case ScopeProject:
		project, err := r.storage.GetProjectByID(ctx, path.ScopeID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrResourceNotFound
			}
			return fmt.Errorf("failed to look up project: %w", err)
		}
		if project.OrgID != path.OrgID {
			return ErrResourceNotFound
		}
	default:
		return fmt.Errorf("unknown scope kind: %q", path.Kind)
	}

	return nil
}
