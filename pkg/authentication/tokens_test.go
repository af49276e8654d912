// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"testing"
	"time"

	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/tracing"
)

const testSecret = "test-signing-secret"

func newTokenManager(accessTTL, refreshTTL time.Duration) *TokenManager {
	return NewTokenManager(testSecret, accessTTL, refreshTTL, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestTokenManagerIssueAndVerifyPair(t *testing.T) {
	tm := newTokenManager(time.Minute, time.Hour)

	pair, err := tm.IssuePair("user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}

	if pair.AccessToken == pair.RefreshToken {
		t.Error("expected access and refresh tokens to differ")
	}

	sub, err := tm.VerifyAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("expected access token to verify, got %v", err)
	}
	if sub != "user-1" {
		t.Errorf("expected subject user-1, got %s", sub)
	}

	sub, err = tm.VerifyRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("expected refresh token to verify, got %v", err)
	}
	if sub != "user-1" {
		t.Errorf("expected subject user-1, got %s", sub)
	}
}

func TestTokenManagerRejectsWrongType(t *testing.T) {
	tm := newTokenManager(time.Minute, time.Hour)

	pair, err := tm.IssuePair("user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := tm.VerifyAccessToken(pair.RefreshToken); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for refresh token used as access token, got %v", err)
	}

	if _, err := tm.VerifyRefreshToken(pair.AccessToken); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for access token used as refresh token, got %v", err)
	}
}

func TestTokenManagerExpiredToken(t *testing.T) {
	tm := newTokenManager(-time.Minute, -time.Minute)

	pair, err := tm.IssuePair("user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := tm.VerifyAccessToken(pair.AccessToken); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}

	if err := func() error { _, err := tm.VerifyAccessToken(pair.AccessToken); return err }(); err.Error() != "jwt expired" {
		t.Errorf("expected error message %q, got %q", "jwt expired", err.Error())
	}
}

func TestTokenManagerRejectsForgedToken(t *testing.T) {
	tm := newTokenManager(time.Minute, time.Hour)
	forger := NewTokenManager("other-secret", time.Minute, time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	forged, err := forger.IssueAccessToken("user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := tm.VerifyAccessToken(forged); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for forged token, got %v", err)
	}

	if _, err := tm.VerifyAccessToken("not-a-jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for garbage token, got %v", err)
	}
}
