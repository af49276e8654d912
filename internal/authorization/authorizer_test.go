// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/tracing"
)

func newAuthorizer(r ResolverInterface) *Authorizer {
	return NewAuthorizer(r, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestAuthorizer_Authorize(t *testing.T) {
	path := OrgPath(orgID)

	testCases := []struct {
		name        string
		action      Action
		resolution  *Resolution
		resolveErr  error
		expectedErr error
	}{
		{
			name:       "owner allowed to delete organization",
			action:     ActionDeleteOrganization,
			resolution: &Resolution{Role: RoleOwner, OrgRole: RoleOwner, Status: StatusActive},
		},
		{
			name:        "viewer denied project creation",
			action:      ActionCreateProject,
			resolution:  &Resolution{Role: RoleViewer, OrgRole: RoleViewer, Status: StatusActive},
			expectedErr: ErrInsufficientRole,
		},
		{
			name:        "banned membership denied regardless of role",
			action:      ActionViewResources,
			resolution:  &Resolution{Status: StatusBanned},
			expectedErr: ErrBanned,
		},
		{
			name:        "not a member",
			action:      ActionViewResources,
			resolveErr:  ErrNotAMember,
			expectedErr: ErrNotAMember,
		},
		{
			name:        "resource missing",
			action:      ActionViewResources,
			resolveErr:  ErrResourceNotFound,
			expectedErr: ErrResourceNotFound,
		},
		{
			name:   "project manager may manage team users within admin org role",
			action: ActionManageTeamUsers,
			resolution: &Resolution{
				Role:    RoleManager,
				OrgRole: RoleAdmin,
				Status:  StatusActive,
			},
		},
		{
			name:   "scope role never exceeds org role",
			action: ActionManageTeamUsers,
			resolution: &Resolution{
				Role:    RoleManager,
				OrgRole: RoleViewer,
				Status:  StatusActive,
			},
			expectedErr: ErrInsufficientRole,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockResolver := NewMockResolverInterface(ctrl)
			mockResolver.EXPECT().Resolve(gomock.Any(), principalID, path).Return(tc.resolution, tc.resolveErr)

			err := newAuthorizer(mockResolver).Authorize(context.Background(), principalID, path, tc.action)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

// A banned membership denies every action for every role.
func TestAuthorizer_BannedImpliesEmptyPermissions(t *testing.T) {
	path := ProjectPath(orgID, projectID)

	for _, action := range Permissions(RoleOwner) {
		ctrl := gomock.NewController(t)

		mockResolver := NewMockResolverInterface(ctrl)
		mockResolver.EXPECT().Resolve(gomock.Any(), principalID, path).
			Return(&Resolution{Status: StatusBanned}, nil)

		err := newAuthorizer(mockResolver).Authorize(context.Background(), principalID, path, action)
		if !errors.Is(err, ErrBanned) {
			t.Errorf("action %q: expected ErrBanned, got %v", action, err)
		}

		ctrl.Finish()
	}
}
