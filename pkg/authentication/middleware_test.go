// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"

	httptypes "github.com/taskhive/workspace-service/internal/http/types"
	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/tracing"
	"github.com/taskhive/workspace-service/internal/types"
)

func newCookieManager() *CookieManager {
	return NewCookieManager([]byte("0123456789abcdef0123456789abcdef"), nil, false)
}

func newTestMiddleware(tokens TokenManagerInterface) *Middleware {
	return NewMiddleware(tokens, newCookieManager(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) httptypes.Response {
	t.Helper()

	var payload httptypes.Response
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return payload
}

func TestMiddlewareAuthenticate(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		verifyErr   error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "valid bearer token",
			header:     "Bearer good-token",
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing token",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "token missing",
		},
		{
			name:        "malformed header",
			header:      "Basic abc",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "token missing",
		},
		{
			name:        "expired token",
			header:      "Bearer stale-token",
			verifyErr:   ErrTokenExpired,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "jwt expired",
		},
		{
			name:        "invalid token",
			header:      "Bearer garbage",
			verifyErr:   ErrTokenInvalid,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid token",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokens := NewMockTokenManagerInterface(ctrl)
			if test.header != "" && test.header != "Basic abc" {
				if test.verifyErr != nil {
					mockTokens.EXPECT().VerifyAccessToken(gomock.Any()).Return("", test.verifyErr)
				} else {
					mockTokens.EXPECT().VerifyAccessToken("good-token").Return("user-1", nil)
				}
			}

			var gotPrincipal string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPrincipal, _ = GetPrincipalID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/orgs", nil)
			if test.header != "" {
				req.Header.Set("Authorization", test.header)
			}
			rr := httptest.NewRecorder()

			newTestMiddleware(mockTokens).Authenticate()(next).ServeHTTP(rr, req)

			if rr.Code != test.wantStatus {
				t.Errorf("expected status %d, got %d", test.wantStatus, rr.Code)
			}
			if test.wantStatus == http.StatusOK && gotPrincipal != "user-1" {
				t.Errorf("expected principal user-1 in context, got %q", gotPrincipal)
			}
			if test.wantMessage != "" {
				if payload := decodeResponse(t, rr); payload.Message != test.wantMessage {
					t.Errorf("expected message %q, got %q", test.wantMessage, payload.Message)
				}
			}
		})
	}
}

func TestMiddlewareCookieFallback(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Minute, time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	pair, err := tm.IssuePair("user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cookies := newCookieManager()
	setter := httptest.NewRecorder()
	if err := cookies.SetTokenCookies(setter, &types.TokenPair{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orgs", nil)
	for _, cookie := range setter.Result().Cookies() {
		req.AddCookie(cookie)
	}

	var gotPrincipal string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrincipal, _ = GetPrincipalID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	middleware := NewMiddleware(tm, cookies, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	middleware.Authenticate()(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if gotPrincipal != "user-1" {
		t.Errorf("expected principal user-1 from cookie, got %q", gotPrincipal)
	}
}
