// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"errors"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/taskhive/workspace-service/internal/authorization"
	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/storage"
	"github.com/taskhive/workspace-service/internal/tracing"
	"github.com/taskhive/workspace-service/internal/types"
)

const (
	orgID     = "org-1"
	ownerID   = "user-owner"
	adminID   = "user-admin"
	memberID  = "user-member"
	projectID = "project-1"
)

type fixture struct {
	db         *MockDBInterface
	storage    *MockStorageInterface
	authorizer *MockAuthorizerInterface
	service    *Service
}

func newFixture(t *testing.T) (*fixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	f := new(fixture)
	f.db = NewMockDBInterface(ctrl)
	f.storage = NewMockStorageInterface(ctrl)
	f.authorizer = NewMockAuthorizerInterface(ctrl)
	f.service = NewService(f.db, f.storage, f.authorizer, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	// Transactions run the callback against the same storage mock.
	f.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	return f, ctrl
}

func membership(principalID string, role authorization.Role, status authorization.Status) *types.Membership {
	return &types.Membership{
		ID:          "membership-" + principalID,
		OrgID:       orgID,
		PrincipalID: principalID,
		Role:        string(role),
		Status:      string(status),
	}
}

func TestCreateOrganizationSeedsOwner(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.storage.EXPECT().CreateOrganization(gomock.Any(), "Acme", gomock.Any()).DoAndReturn(
		func(_ context.Context, title, joinCode string) (*types.Organization, error) {
			if len(joinCode) != joinCodeLength {
				t.Errorf("expected a %d character join code, got %q", joinCodeLength, joinCode)
			}
			return &types.Organization{ID: orgID, Title: title, JoinCode: joinCode}, nil
		},
	)
	f.storage.EXPECT().UpsertMembership(gomock.Any(), orgID, ownerID, "owner", "active").Return(membership(ownerID, authorization.RoleOwner, authorization.StatusActive), nil)

	org, err := f.service.CreateOrganization(context.Background(), ownerID, "Acme")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if org.ID != orgID {
		t.Errorf("expected organization %s, got %s", orgID, org.ID)
	}
}

func TestJoinByCode(t *testing.T) {
	org := &types.Organization{ID: orgID, JoinCode: "WXYZ234567"}

	t.Run("admits a new member as active member", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.storage.EXPECT().GetOrganizationByJoinCode(gomock.Any(), "WXYZ234567").Return(org, nil)
		f.storage.EXPECT().GetMembership(gomock.Any(), orgID, memberID).Return(nil, storage.ErrNotFound)
		f.storage.EXPECT().UpsertMembership(gomock.Any(), orgID, memberID, "member", "active").Return(membership(memberID, authorization.RoleMember, authorization.StatusActive), nil)

		m, err := f.service.JoinByCode(context.Background(), memberID, "WXYZ234567")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if m.Role != "member" || m.Status != "active" {
			t.Errorf("expected active member, got %s/%s", m.Role, m.Status)
		}
	})

	t.Run("is idempotent for an existing member", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		existing := membership(adminID, authorization.RoleAdmin, authorization.StatusActive)
		f.storage.EXPECT().GetOrganizationByJoinCode(gomock.Any(), "WXYZ234567").Return(org, nil)
		f.storage.EXPECT().GetMembership(gomock.Any(), orgID, adminID).Return(existing, nil)

		m, err := f.service.JoinByCode(context.Background(), adminID, "WXYZ234567")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if m.Role != "admin" {
			t.Errorf("expected existing admin role preserved, got %s", m.Role)
		}
	})

	t.Run("readmits a banned member as active member", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		banned := membership(memberID, authorization.RoleMember, authorization.StatusBanned)
		f.storage.EXPECT().GetOrganizationByJoinCode(gomock.Any(), "WXYZ234567").Return(org, nil)
		f.storage.EXPECT().GetMembership(gomock.Any(), orgID, memberID).Return(banned, nil)
		f.storage.EXPECT().UpsertMembership(gomock.Any(), orgID, memberID, "member", "active").Return(membership(memberID, authorization.RoleMember, authorization.StatusActive), nil)

		m, err := f.service.JoinByCode(context.Background(), memberID, "WXYZ234567")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if m.Status != "active" {
			t.Errorf("expected readmission to reactivate the row, got %s", m.Status)
		}
	})

	t.Run("rejects an unknown code", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.storage.EXPECT().GetOrganizationByJoinCode(gomock.Any(), "BADCODE234").Return(nil, storage.ErrNotFound)

		if _, err := f.service.JoinByCode(context.Background(), memberID, "BADCODE234"); !errors.Is(err, ErrInvalidCode) {
			t.Errorf("expected ErrInvalidCode, got %v", err)
		}
	})
}

func TestChangeRole(t *testing.T) {
	t.Run("changes a regular member's role", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), adminID, authorization.OrgPath(orgID), authorization.ActionManageUsers).Return(nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, memberID).Return(membership(memberID, authorization.RoleMember, authorization.StatusActive), nil)
		f.storage.EXPECT().SetMembershipRole(gomock.Any(), orgID, memberID, "admin").Return(nil)

		if err := f.service.ChangeRole(context.Background(), adminID, orgID, memberID, authorization.RoleAdmin); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("never assigns the owner role", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		if err := f.service.ChangeRole(context.Background(), adminID, orgID, memberID, authorization.RoleOwner); !errors.Is(err, ErrInvalidRole) {
			t.Errorf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		if err := f.service.ChangeRole(context.Background(), adminID, orgID, memberID, authorization.Role("superuser")); !errors.Is(err, ErrInvalidRole) {
			t.Errorf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("refuses to demote the last active owner", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), ownerID, authorization.OrgPath(orgID), authorization.ActionManageUsers).Return(nil)
		f.authorizer.EXPECT().Authorize(gomock.Any(), ownerID, authorization.OrgPath(orgID), authorization.ActionTransferOwnership).Return(nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, ownerID).Return(membership(ownerID, authorization.RoleOwner, authorization.StatusActive), nil)
		f.storage.EXPECT().CountActiveOwners(gomock.Any(), orgID).Return(1, nil)

		if err := f.service.ChangeRole(context.Background(), ownerID, orgID, ownerID, authorization.RoleAdmin); !errors.Is(err, ErrLastOwner) {
			t.Errorf("expected ErrLastOwner, got %v", err)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), adminID, authorization.OrgPath(orgID), authorization.ActionManageUsers).Return(nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, "user-ghost").Return(nil, storage.ErrNotFound)

		if err := f.service.ChangeRole(context.Background(), adminID, orgID, "user-ghost", authorization.RoleViewer); !errors.Is(err, ErrMemberNotFound) {
			t.Errorf("expected ErrMemberNotFound, got %v", err)
		}
	})
}

func TestSetStatus(t *testing.T) {
	t.Run("bans a member", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), adminID, authorization.OrgPath(orgID), authorization.ActionManageUsers).Return(nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, memberID).Return(membership(memberID, authorization.RoleMember, authorization.StatusActive), nil)
		f.storage.EXPECT().SetMembershipStatus(gomock.Any(), orgID, memberID, "banned").Return(nil)

		if err := f.service.SetStatus(context.Background(), adminID, orgID, memberID, authorization.StatusBanned); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("owners are immune to bans", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), adminID, authorization.OrgPath(orgID), authorization.ActionManageUsers).Return(nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, ownerID).Return(membership(ownerID, authorization.RoleOwner, authorization.StatusActive), nil)

		if err := f.service.SetStatus(context.Background(), adminID, orgID, ownerID, authorization.StatusBanned); !errors.Is(err, ErrOwnerImmune) {
			t.Errorf("expected ErrOwnerImmune, got %v", err)
		}
	})

	t.Run("reactivates a banned member", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), adminID, authorization.OrgPath(orgID), authorization.ActionManageUsers).Return(nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, memberID).Return(membership(memberID, authorization.RoleMember, authorization.StatusBanned), nil)
		f.storage.EXPECT().SetMembershipStatus(gomock.Any(), orgID, memberID, "active").Return(nil)

		if err := f.service.SetStatus(context.Background(), adminID, orgID, memberID, authorization.StatusActive); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		if err := f.service.SetStatus(context.Background(), adminID, orgID, memberID, authorization.Status("frozen")); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestTransferOwnership(t *testing.T) {
	t.Run("promotes the target and demotes the caller", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), ownerID, authorization.OrgPath(orgID), authorization.ActionTransferOwnership).Return(nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, adminID).Return(membership(adminID, authorization.RoleAdmin, authorization.StatusActive), nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, ownerID).Return(membership(ownerID, authorization.RoleOwner, authorization.StatusActive), nil)
		f.storage.EXPECT().GetMembership(gomock.Any(), orgID, adminID).Return(membership(adminID, authorization.RoleAdmin, authorization.StatusActive), nil)
		f.storage.EXPECT().SetMembershipRole(gomock.Any(), orgID, adminID, "owner").Return(nil)
		f.storage.EXPECT().SetMembershipRole(gomock.Any(), orgID, ownerID, "admin").Return(nil)

		if err := f.service.TransferOwnership(context.Background(), ownerID, orgID, adminID); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("rejects a banned target", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), ownerID, authorization.OrgPath(orgID), authorization.ActionTransferOwnership).Return(nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, memberID).Return(membership(memberID, authorization.RoleMember, authorization.StatusBanned), nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, ownerID).Return(membership(ownerID, authorization.RoleOwner, authorization.StatusActive), nil)
		f.storage.EXPECT().GetMembership(gomock.Any(), orgID, memberID).Return(membership(memberID, authorization.RoleMember, authorization.StatusBanned), nil)

		if err := f.service.TransferOwnership(context.Background(), ownerID, orgID, memberID); !errors.Is(err, ErrNotActiveMember) {
			t.Errorf("expected ErrNotActiveMember, got %v", err)
		}
	})

	t.Run("rejects a target that is already owner", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), adminID, authorization.OrgPath(orgID), authorization.ActionTransferOwnership).Return(nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, adminID).Return(membership(adminID, authorization.RoleAdmin, authorization.StatusActive), nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, ownerID).Return(membership(ownerID, authorization.RoleOwner, authorization.StatusActive), nil)
		f.storage.EXPECT().GetMembership(gomock.Any(), orgID, ownerID).Return(membership(ownerID, authorization.RoleOwner, authorization.StatusActive), nil)

		if err := f.service.TransferOwnership(context.Background(), adminID, orgID, ownerID); !errors.Is(err, ErrInvalidRole) {
			t.Errorf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("rejects self transfer", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		if err := f.service.TransferOwnership(context.Background(), ownerID, orgID, ownerID); !errors.Is(err, ErrInvalidRole) {
			t.Errorf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("rejects a non-member target", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), ownerID, authorization.OrgPath(orgID), authorization.ActionTransferOwnership).Return(nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, gomock.Any()).Return(nil, storage.ErrNotFound)

		if err := f.service.TransferOwnership(context.Background(), ownerID, orgID, "user-ghost"); !errors.Is(err, ErrMemberNotFound) {
			t.Errorf("expected ErrMemberNotFound, got %v", err)
		}
	})
}

func TestRemoveMember(t *testing.T) {
	t.Run("removes the membership and its nested roles", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), adminID, authorization.OrgPath(orgID), authorization.ActionRemoveUser).Return(nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, memberID).Return(membership(memberID, authorization.RoleMember, authorization.StatusActive), nil)
		f.storage.EXPECT().DeleteScopeMembershipsForPrincipal(gomock.Any(), orgID, memberID).Return(nil)
		f.storage.EXPECT().DeleteMembership(gomock.Any(), orgID, memberID).Return(nil)

		if err := f.service.RemoveMember(context.Background(), adminID, orgID, memberID); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("owners cannot be removed", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), adminID, authorization.OrgPath(orgID), authorization.ActionRemoveUser).Return(nil)
		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, ownerID).Return(membership(ownerID, authorization.RoleOwner, authorization.StatusActive), nil)

		if err := f.service.RemoveMember(context.Background(), adminID, orgID, ownerID); !errors.Is(err, ErrOwnerImmune) {
			t.Errorf("expected ErrOwnerImmune, got %v", err)
		}
	})
}

func TestLeave(t *testing.T) {
	t.Run("member leaves", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, memberID).Return(membership(memberID, authorization.RoleMember, authorization.StatusActive), nil)
		f.storage.EXPECT().DeleteScopeMembershipsForPrincipal(gomock.Any(), orgID, memberID).Return(nil)
		f.storage.EXPECT().DeleteMembership(gomock.Any(), orgID, memberID).Return(nil)

		if err := f.service.Leave(context.Background(), memberID, orgID); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("the last active owner cannot leave", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, ownerID).Return(membership(ownerID, authorization.RoleOwner, authorization.StatusActive), nil)
		f.storage.EXPECT().CountActiveOwners(gomock.Any(), orgID).Return(1, nil)

		if err := f.service.Leave(context.Background(), ownerID, orgID); !errors.Is(err, ErrLastOwner) {
			t.Errorf("expected ErrLastOwner, got %v", err)
		}
	})

	t.Run("leaving an organization you are not part of", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.storage.EXPECT().GetMembershipForUpdate(gomock.Any(), orgID, memberID).Return(nil, storage.ErrNotFound)

		if err := f.service.Leave(context.Background(), memberID, orgID); !errors.Is(err, authorization.ErrNotAMember) {
			t.Errorf("expected ErrNotAMember, got %v", err)
		}
	})
}

func TestAddScopeMember(t *testing.T) {
	t.Run("requires an active organization membership", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), adminID, authorization.ProjectPath(orgID, projectID), authorization.ActionManageTeamUsers).Return(nil)
		f.storage.EXPECT().GetMembership(gomock.Any(), orgID, "user-outsider").Return(nil, storage.ErrNotFound)

		_, err := f.service.AddScopeMember(context.Background(), adminID, orgID, authorization.ScopeProject, projectID, "user-outsider", authorization.RoleMember)
		if !errors.Is(err, ErrNotActiveMember) {
			t.Errorf("expected ErrNotActiveMember, got %v", err)
		}
	})

	t.Run("rejects organization roles at scope level", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		_, err := f.service.AddScopeMember(context.Background(), adminID, orgID, authorization.ScopeProject, projectID, memberID, authorization.RoleAdmin)
		if !errors.Is(err, ErrInvalidRole) {
			t.Errorf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("grants a manager role", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), adminID, authorization.ProjectPath(orgID, projectID), authorization.ActionManageTeamUsers).Return(nil)
		f.storage.EXPECT().GetMembership(gomock.Any(), orgID, memberID).Return(membership(memberID, authorization.RoleMember, authorization.StatusActive), nil)
		f.storage.EXPECT().UpsertScopeMembership(gomock.Any(), orgID, "project", projectID, memberID, "manager", "active").Return(&types.ScopeMembership{Role: "manager"}, nil)

		m, err := f.service.AddScopeMember(context.Background(), adminID, orgID, authorization.ScopeProject, projectID, memberID, authorization.RoleManager)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if m.Role != "manager" {
			t.Errorf("expected manager role, got %s", m.Role)
		}
	})
}

func TestTransferProjectManager(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.authorizer.EXPECT().Authorize(gomock.Any(), adminID, authorization.ProjectPath(orgID, projectID), authorization.ActionTransferProjectManager).Return(nil)
	f.storage.EXPECT().GetMembership(gomock.Any(), orgID, memberID).Return(membership(memberID, authorization.RoleMember, authorization.StatusActive), nil)
	f.storage.EXPECT().ListScopeMembers(gomock.Any(), "project", projectID).Return([]*types.Member{
		{PrincipalID: "user-old-manager", Role: "manager", Status: "active"},
		{PrincipalID: memberID, Role: "member", Status: "active"},
	}, nil)
	f.storage.EXPECT().SetScopeMembershipRole(gomock.Any(), "project", projectID, "user-old-manager", "member").Return(nil)
	f.storage.EXPECT().UpsertScopeMembership(gomock.Any(), orgID, "project", projectID, memberID, "manager", "active").Return(&types.ScopeMembership{Role: "manager"}, nil)

	if err := f.service.TransferProjectManager(context.Background(), adminID, orgID, projectID, memberID); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestDeleteScopeClearsMemberships(t *testing.T) {
	t.Run("team", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), adminID, authorization.TeamPath(orgID, "team-1"), authorization.ActionDeleteTeam).Return(nil)
		f.storage.EXPECT().DeleteScopeMembershipsForScope(gomock.Any(), "team", "team-1").Return(nil)
		f.storage.EXPECT().DeleteTeam(gomock.Any(), "team-1").Return(nil)

		if err := f.service.DeleteTeam(context.Background(), adminID, orgID, "team-1"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("project", func(t *testing.T) {
		f, ctrl := newFixture(t)
		defer ctrl.Finish()

		f.authorizer.EXPECT().Authorize(gomock.Any(), adminID, authorization.ProjectPath(orgID, projectID), authorization.ActionDeleteProject).Return(nil)
		f.storage.EXPECT().DeleteScopeMembershipsForScope(gomock.Any(), "project", projectID).Return(nil)
		f.storage.EXPECT().DeleteProject(gomock.Any(), projectID).Return(nil)

		if err := f.service.DeleteProject(context.Background(), adminID, orgID, projectID); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

func TestAuthorizationDenialPropagates(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.authorizer.EXPECT().Authorize(gomock.Any(), memberID, authorization.OrgPath(orgID), authorization.ActionDeleteOrganization).Return(authorization.ErrInsufficientRole)

	if err := f.service.DeleteOrganization(context.Background(), memberID, orgID); !errors.Is(err, authorization.ErrInsufficientRole) {
		t.Errorf("expected ErrInsufficientRole, got %v", err)
	}
}
