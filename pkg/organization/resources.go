// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskhive/workspace-service/internal/authorization"
	"github.com/taskhive/workspace-service/internal/storage"
	"github.com/taskhive/workspace-service/internal/types"
)

func (s *Service) CreateTeam(ctx context.Context, principalID, orgID, title string) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.CreateTeam")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionCreateTeam); err != nil {
		return nil, err
	}

	return s.storage.CreateTeam(ctx, orgID, title)
}

func (s *Service) ListTeams(ctx context.Context, principalID, orgID string) ([]*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListTeams")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionViewResources); err != nil {
		return nil, err
	}

	return s.storage.ListTeamsByOrgID(ctx, orgID)
}

func (s *Service) UpdateTeam(ctx context.Context, principalID, orgID, teamID, title string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.UpdateTeam")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.TeamPath(orgID, teamID), authorization.ActionUpdateTeam); err != nil {
		return err
	}

	return s.storage.UpdateTeamTitle(ctx, teamID, title)
}

func (s *Service) DeleteTeam(ctx context.Context, principalID, orgID, teamID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.DeleteTeam")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.TeamPath(orgID, teamID), authorization.ActionDeleteTeam); err != nil {
		return err
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.DeleteScopeMembershipsForScope(ctx, string(authorization.ScopeTeam), teamID); err != nil {
			return err
		}
		return s.storage.DeleteTeam(ctx, teamID)
	})
}

func (s *Service) CreateProject(ctx context.Context, principalID, orgID, title string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.CreateProject")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionCreateProject); err != nil {
		return nil, err
	}

	return s.storage.CreateProject(ctx, orgID, title)
}

func (s *Service) ListProjects(ctx context.Context, principalID, orgID string) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListProjects")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionViewResources); err != nil {
		return nil, err
	}

	return s.storage.ListProjectsByOrgID(ctx, orgID)
}

func (s *Service) UpdateProject(ctx context.Context, principalID, orgID, projectID, title string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.UpdateProject")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.ProjectPath(orgID, projectID), authorization.ActionUpdateProject); err != nil {
		return err
	}

	return s.storage.UpdateProjectTitle(ctx, projectID, title)
}

func (s *Service) DeleteProject(ctx context.Context, principalID, orgID, projectID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.DeleteProject")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.ProjectPath(orgID, projectID), authorization.ActionDeleteProject); err != nil {
		return err
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.DeleteScopeMembershipsForScope(ctx, string(authorization.ScopeProject), projectID); err != nil {
			return err
		}
		return s.storage.DeleteProject(ctx, projectID)
	})
}

func scopePath(orgID string, kind authorization.ScopeKind, scopeID string) authorization.ResourcePath {
	return authorization.ResourcePath{OrgID: orgID, Kind: kind, ScopeID: scopeID}
}

func (s *Service) ListScopeMembers(ctx context.Context, principalID, orgID string, kind authorization.ScopeKind, scopeID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListScopeMembers")
	defer span.End()

	if err := s.authorize(ctx, principalID, scopePath(orgID, kind, scopeID), authorization.ActionViewResources); err != nil {
		return nil, err
	}

	return s.storage.ListScopeMembers(ctx, string(kind), scopeID)
}

// AddScopeMember grants the target a team or project role. The target
// must already hold an active organization membership: nested roles
// layer on top of admission, they never substitute for it.
func (s *Service) AddScopeMember(ctx context.Context, principalID, orgID string, kind authorization.ScopeKind, scopeID, targetID string, role authorization.Role) (*types.ScopeMembership, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.AddScopeMember")
	defer span.End()

	if !authorization.IsScopeRole(role) {
		return nil, ErrInvalidRole
	}

	if err := s.authorize(ctx, principalID, scopePath(orgID, kind, scopeID), authorization.ActionManageTeamUsers); err != nil {
		return nil, err
	}

	var membership *types.ScopeMembership
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.requireActiveMembership(ctx, orgID, targetID); err != nil {
			return err
		}

		var err error
		membership, err = s.storage.UpsertScopeMembership(ctx, orgID, string(kind), scopeID, targetID, string(role), string(authorization.StatusActive))
		return err
	})
	if err != nil {
		return nil, err
	}

	return membership, nil
}

func (s *Service) SetScopeMemberRole(ctx context.Context, principalID, orgID string, kind authorization.ScopeKind, scopeID, targetID string, role authorization.Role) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.SetScopeMemberRole")
	defer span.End()

	if !authorization.IsScopeRole(role) {
		return ErrInvalidRole
	}

	if err := s.authorize(ctx, principalID, scopePath(orgID, kind, scopeID), authorization.ActionManageTeamUsers); err != nil {
		return err
	}

	if err := s.storage.SetScopeMembershipRole(ctx, string(kind), scopeID, targetID, string(role)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return nil
}

func (s *Service) SetScopeMemberStatus(ctx context.Context, principalID, orgID string, kind authorization.ScopeKind, scopeID, targetID string, status authorization.Status) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.SetScopeMemberStatus")
	defer span.End()

	if status != authorization.StatusActive && status != authorization.StatusBanned {
		return ErrInvalidStatus
	}

	if err := s.authorize(ctx, principalID, scopePath(orgID, kind, scopeID), authorization.ActionManageTeamUsers); err != nil {
		return err
	}

	if err := s.storage.SetScopeMembershipStatus(ctx, string(kind), scopeID, targetID, string(status)); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}

	if status == authorization.StatusBanned {
		s.logger.Security().MemberBanned(orgID, principalID, targetID)
	}
	return nil
}

func (s *Service) RemoveScopeMember(ctx context.Context, principalID, orgID string, kind authorization.ScopeKind, scopeID, targetID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.RemoveScopeMember")
	defer span.End()

	if err := s.authorize(ctx, principalID, scopePath(orgID, kind, scopeID), authorization.ActionManageTeamUsers); err != nil {
		return err
	}

	if err := s.storage.DeleteScopeMembership(ctx, string(kind), scopeID, targetID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return nil
}

// TransferProjectManager makes the target the project's manager and
// demotes every other manager to member, all in one transaction.
func (s *Service) TransferProjectManager(ctx context.Context, principalID, orgID, projectID, targetID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.TransferProjectManager")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.ProjectPath(orgID, projectID), authorization.ActionTransferProjectManager); err != nil {
		return err
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.requireActiveMembership(ctx, orgID, targetID); err != nil {
			return err
		}

		members, err := s.storage.ListScopeMembers(ctx, string(authorization.ScopeProject), projectID)
		if err != nil {
			return err
		}

		for _, m := range members {
			if m.PrincipalID == targetID || authorization.Role(m.Role) != authorization.RoleManager {
				continue
			}
			if err := s.storage.SetScopeMembershipRole(ctx, string(authorization.ScopeProject), projectID, m.PrincipalID, string(authorization.RoleMember)); err != nil {
				return err
			}
		}

		_, err = s.storage.UpsertScopeMembership(ctx, orgID, string(authorization.ScopeProject), projectID, targetID, string(authorization.RoleManager), string(authorization.StatusActive))
		return err
	})
}

func (s *Service) requireActiveMembership(ctx context.Context, orgID, targetID string) error {
	membership, err := s.storage.GetMembership(ctx, orgID, targetID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotActiveMember
		}
		return fmt.Errorf("failed to look up membership: %w", err)
	}
	if authorization.Status(membership.Status) != authorization.StatusActive {
		return ErrNotActiveMember
	}
	return nil
}
