// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/tracing"
	"github.com/taskhive/workspace-service/internal/types"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Token verification errors. ErrTokenExpired's message is part of the
// wire contract: the client interceptor branches on "jwt expired" to
// decide between refresh-and-retry and forced logout.
var (
	ErrTokenExpired = errors.New("jwt expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the only supported JWT claims shape for this service.
type Claims struct {
	jwt.RegisteredClaims

	Typ string `json:"typ"`
	// Rtv is the rotation marker carried by refresh tokens.
	Rtv string `json:"rtv,omitempty"`
}

var _ TokenManagerInterface = (*TokenManager)(nil)

// TokenManager issues and verifies the HS256-signed credential pair.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *TokenManager {
	tm := new(TokenManager)
	tm.secret = []byte(secret)
	tm.accessTTL = accessTTL
	tm.refreshTTL = refreshTTL
	tm.tracer = tracer
	tm.monitor = monitor
	tm.logger = logger

	return tm
}

// IssuePair mints a fresh access/refresh token pair for the subject.
func (tm *TokenManager) IssuePair(principalID string) (*types.TokenPair, error) {
	access, err := tm.IssueAccessToken(principalID)
	if err != nil {
		return nil, err
	}

	refresh, err := tm.issue(principalID, tokenTypeRefresh, tm.refreshTTL, uuid.NewString())
	if err != nil {
		return nil, err
	}

	return &types.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (tm *TokenManager) IssueAccessToken(principalID string) (string, error) {
	return tm.issue(principalID, tokenTypeAccess, tm.accessTTL, "")
}

func (tm *TokenManager) issue(principalID, typ string, ttl time.Duration, rtv string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Typ: typ,
		Rtv: rtv,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", typ, err)
	}

	return signed, nil
}

// VerifyAccessToken returns the subject of a valid access token.
func (tm *TokenManager) VerifyAccessToken(raw string) (string, error) {
	return tm.verify(raw, tokenTypeAccess)
}

// VerifyRefreshToken returns the subject of a valid refresh token.
func (tm *TokenManager) VerifyRefreshToken(raw string) (string, error) {
	return tm.verify(raw, tokenTypeRefresh)
}

func (tm *TokenManager) verify(raw, typ string) (string, error) {
	claims := new(Claims)

	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		tm.logger.Debugf("JWT verification failed: %v", err)
		return "", ErrTokenInvalid
	}

	if claims.Typ != typ {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}
