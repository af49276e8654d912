// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/storage"
	"github.com/taskhive/workspace-service/internal/tracing"
	"github.com/taskhive/workspace-service/internal/types"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tokens  TokenManagerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(storage StorageInterface, tokens TokenManagerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: storage,
		tokens:  tokens,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Register(ctx context.Context, email, password string) (*types.Principal, *types.TokenPair, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Register")
	defer span.End()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	principal, err := s.storage.CreatePrincipal(ctx, email, string(hash))
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, fmt.Errorf("failed to create principal: %w", err)
	}

	pair, err := s.tokens.IssuePair(principal.ID)
	if err != nil {
		return nil, nil, err
	}

	return principal, pair, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*types.Principal, *types.TokenPair, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Login")
	defer span.End()

	principal, err := s.storage.GetPrincipalByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthnFailure(email, "unknown email")
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up principal: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)); err != nil {
		s.logger.Security().AuthnFailure(principal.ID, "bad password")
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(principal.ID)
	if err != nil {
		return nil, nil, err
	}

	return principal, pair, nil
}

// Refresh exchanges a valid refresh token for a new access token. An
// expired refresh token surfaces ErrTokenExpired so the client can
// discriminate terminal logout from transient failure.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	_, span := s.tracer.Start(ctx, "authentication.Service.Refresh")
	defer span.End()

	principalID, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	return s.tokens.IssueAccessToken(principalID)
}

func (s *Service) GetPrincipal(ctx context.Context, id string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.GetPrincipal")
	defer span.End()

	return s.storage.GetPrincipalByID(ctx, id)
}
