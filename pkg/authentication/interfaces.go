// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/taskhive/workspace-service/internal/types"
)

type TokenManagerInterface interface {
	IssuePair(principalID string) (*types.TokenPair, error)
	IssueAccessToken(principalID string) (string, error)
	VerifyAccessToken(raw string) (string, error)
	VerifyRefreshToken(raw string) (string, error)
}

type ServiceInterface interface {
	Register(ctx context.Context, email, password string) (*types.Principal, *types.TokenPair, error)
	Login(ctx context.Context, email, password string) (*types.Principal, *types.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetPrincipal(ctx context.Context, id string) (*types.Principal, error)
}

type StorageInterface interface {
	CreatePrincipal(ctx context.Context, email, passwordHash string) (*types.Principal, error)
	GetPrincipalByEmail(ctx context.Context, email string) (*types.Principal, error)
	GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error)
}
