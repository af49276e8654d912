// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskhive/workspace-service/internal/authorization"
	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/storage"
	"github.com/taskhive/workspace-service/internal/tracing"
	"github.com/taskhive/workspace-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// Service owns the organization and membership lifecycle. Every
// multi-row operation runs inside a transaction, and the ones that can
// violate the at-least-one-active-owner rule lock the membership rows
// they read so concurrent lifecycle calls serialize.
type Service struct {
	db         DBInterface
	storage    StorageInterface
	authorizer AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(db DBInterface, storage StorageInterface, authorizer AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.db = db
	s.storage = storage
	s.authorizer = authorizer

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// authorize consults the guard and audits denials.
func (s *Service) authorize(ctx context.Context, principalID string, path authorization.ResourcePath, action authorization.Action) error {
	err := s.authorizer.Authorize(ctx, principalID, path, action)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, authorization.ErrNotAMember),
		errors.Is(err, authorization.ErrBanned),
		errors.Is(err, authorization.ErrInsufficientRole):
		s.logger.Security().AuthzFailure(principalID, string(action))
	}
	return err
}

func (s *Service) CreateOrganization(ctx context.Context, principalID, title string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.CreateOrganization")
	defer span.End()

	code, err := NewJoinCode()
	if err != nil {
		return nil, err
	}

	var org *types.Organization
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		var err error
		org, err = s.storage.CreateOrganization(ctx, title, code)
		if err != nil {
			return err
		}

		// The creator is the founding owner.
		_, err = s.storage.UpsertMembership(ctx, org.ID, principalID, string(authorization.RoleOwner), string(authorization.StatusActive))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return org, nil
}

func (s *Service) GetOrganization(ctx context.Context, principalID, orgID string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.GetOrganization")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionViewResources); err != nil {
		return nil, err
	}

	return s.storage.GetOrganizationByID(ctx, orgID)
}

func (s *Service) ListOrganizations(ctx context.Context, principalID string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListOrganizations")
	defer span.End()

	return s.storage.ListOrganizationsByPrincipalID(ctx, principalID)
}

func (s *Service) UpdateOrganization(ctx context.Context, principalID, orgID, title string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.UpdateOrganization")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionUpdateOrganization); err != nil {
		return err
	}

	return s.storage.UpdateOrganizationTitle(ctx, orgID, title)
}

func (s *Service) DeleteOrganization(ctx context.Context, principalID, orgID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.DeleteOrganization")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionDeleteOrganization); err != nil {
		return err
	}

	// Teams, projects and memberships cascade with the organization row.
	return s.storage.DeleteOrganization(ctx, orgID)
}

func (s *Service) RotateJoinCode(ctx context.Context, principalID, orgID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.RotateJoinCode")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionUpdateOrganization); err != nil {
		return "", err
	}

	code, err := NewJoinCode()
	if err != nil {
		return "", err
	}

	if err := s.storage.SetJoinCode(ctx, orgID, code); err != nil {
		return "", err
	}

	return code, nil
}

// JoinByCode admits the caller as an active member. Admission is
// idempotent for active members: an already-active row is returned
// unchanged, whatever its role, so re-joining never demotes a promoted
// member. A banned or previously removed principal is readmitted as an
// active member on the existing row.
func (s *Service) JoinByCode(ctx context.Context, principalID, code string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.JoinByCode")
	defer span.End()

	org, err := s.storage.GetOrganizationByJoinCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("failed to look up join code: %w", err)
	}
	if org.DeletedAt != nil {
		return nil, ErrInvalidCode
	}

	var membership *types.Membership
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		existing, err := s.storage.GetMembership(ctx, org.ID, principalID)
		if err == nil && authorization.Status(existing.Status) == authorization.StatusActive {
			membership = existing
			return nil
		}
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		membership, err = s.storage.UpsertMembership(ctx, org.ID, principalID, string(authorization.RoleMember), string(authorization.StatusActive))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to join organization: %w", err)
	}

	return membership, nil
}

func (s *Service) ListMembers(ctx context.Context, principalID, orgID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListMembers")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionViewResources); err != nil {
		return nil, err
	}

	return s.storage.ListMembersByOrgID(ctx, orgID)
}

// ChangeRole sets the target's organization role. The owner role is
// never assigned here; it moves only through TransferOwnership. Demoting
// an owner requires the caller to hold transferOwnership and another
// active owner to remain.
func (s *Service) ChangeRole(ctx context.Context, principalID, orgID, targetID string, role authorization.Role) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ChangeRole")
	defer span.End()

	if !authorization.IsOrgRole(role) || role == authorization.RoleOwner {
		return ErrInvalidRole
	}

	if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionManageUsers); err != nil {
		return err
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		target, err := s.storage.GetMembershipForUpdate(ctx, orgID, targetID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrMemberNotFound
			}
			return err
		}

		if authorization.Role(target.Role) == authorization.RoleOwner {
			if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionTransferOwnership); err != nil {
				return err
			}

			owners, err := s.storage.CountActiveOwners(ctx, orgID)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return ErrLastOwner
			}
		}

		return s.storage.SetMembershipRole(ctx, orgID, targetID, string(role))
	})
}

// SetStatus bans or reactivates a member. Owners are immune: a ban
// would otherwise be able to strand the organization.
func (s *Service) SetStatus(ctx context.Context, principalID, orgID, targetID string, status authorization.Status) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.SetStatus")
	defer span.End()

	if status != authorization.StatusActive && status != authorization.StatusBanned {
		return ErrInvalidStatus
	}

	if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionManageUsers); err != nil {
		return err
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		target, err := s.storage.GetMembershipForUpdate(ctx, orgID, targetID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrMemberNotFound
			}
			return err
		}

		if authorization.Role(target.Role) == authorization.RoleOwner && status == authorization.StatusBanned {
			return ErrOwnerImmune
		}

		if err := s.storage.SetMembershipStatus(ctx, orgID, targetID, string(status)); err != nil {
			return err
		}

		if status == authorization.StatusBanned {
			s.logger.Security().MemberBanned(orgID, principalID, targetID)
		}
		return nil
	})
}

// TransferOwnership atomically makes the target the owner and demotes
// the caller to admin. Both membership rows are locked; the membership
// unique constraint plus the row locks keep exactly one active owner
// visible at every point in time.
func (s *Service) TransferOwnership(ctx context.Context, principalID, orgID, targetID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.TransferOwnership")
	defer span.End()

	if targetID == principalID {
		return ErrInvalidRole
	}

	if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionTransferOwnership); err != nil {
		return err
	}

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		// Lock in a fixed order so concurrent transfers cannot deadlock.
		first, second := principalID, targetID
		if second < first {
			first, second = second, first
		}

		for _, id := range []string{first, second} {
			if _, err := s.storage.GetMembershipForUpdate(ctx, orgID, id); err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return ErrMemberNotFound
				}
				return err
			}
		}

		target, err := s.storage.GetMembership(ctx, orgID, targetID)
		if err != nil {
			return err
		}
		if authorization.Role(target.Role) == authorization.RoleOwner {
			return ErrInvalidRole
		}
		if authorization.Status(target.Status) != authorization.StatusActive {
			return ErrNotActiveMember
		}

		if err := s.storage.SetMembershipRole(ctx, orgID, targetID, string(authorization.RoleOwner)); err != nil {
			return err
		}
		return s.storage.SetMembershipRole(ctx, orgID, principalID, string(authorization.RoleAdmin))
	})
	if err != nil {
		return err
	}

	s.logger.Security().OwnershipTransfer(orgID, principalID, targetID)
	return nil
}

func (s *Service) RemoveMember(ctx context.Context, principalID, orgID, targetID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.RemoveMember")
	defer span.End()

	if err := s.authorize(ctx, principalID, authorization.OrgPath(orgID), authorization.ActionRemoveUser); err != nil {
		return err
	}

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		target, err := s.storage.GetMembershipForUpdate(ctx, orgID, targetID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrMemberNotFound
			}
			return err
		}

		if authorization.Role(target.Role) == authorization.RoleOwner {
			return ErrOwnerImmune
		}

		if err := s.storage.DeleteScopeMembershipsForPrincipal(ctx, orgID, targetID); err != nil {
			return err
		}
		return s.storage.DeleteMembership(ctx, orgID, targetID)
	})
}

// Leave removes the caller's own membership. The last active owner
// cannot leave; ownership must be transferred first.
func (s *Service) Leave(ctx context.Context, principalID, orgID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.Leave")
	defer span.End()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		membership, err := s.storage.GetMembershipForUpdate(ctx, orgID, principalID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return authorization.ErrNotAMember
			}
			return err
		}

		if authorization.Role(membership.Role) == authorization.RoleOwner {
			owners, err := s.storage.CountActiveOwners(ctx, orgID)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return ErrLastOwner
			}
		}

		if err := s.storage.DeleteScopeMembershipsForPrincipal(ctx, orgID, principalID); err != nil {
			return err
		}
		return s.storage.DeleteMembership(ctx, orgID, principalID)
	})
}
