// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/tracing"
	"github.com/taskhive/workspace-service/internal/types"
)

func newTestAPI(service ServiceInterface) (*API, *chi.Mux) {
	api := NewAPI(service, newCookieManager(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return api, mux
}

func TestHandleRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"email":"a@example.com","password":"password123"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid email",
			body:       `{"email":"not-an-email","password":"password123"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "short password",
			body:       `{"email":"a@example.com","password":"short"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       `{"email":"a@example.com","password":"password123"}`,
			serviceErr: ErrEmailTaken,
			wantStatus: http.StatusConflict,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			if test.wantStatus != http.StatusBadRequest {
				if test.serviceErr != nil {
					mockService.EXPECT().Register(gomock.Any(), "a@example.com", "password123").Return(nil, nil, test.serviceErr)
				} else {
					mockService.EXPECT().Register(gomock.Any(), "a@example.com", "password123").Return(
						&types.Principal{ID: "user-1", Email: "a@example.com"},
						&types.TokenPair{AccessToken: "a", RefreshToken: "r"},
						nil,
					)
				}
			}

			_, mux := newTestAPI(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(test.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != test.wantStatus {
				t.Errorf("expected status %d, got %d", test.wantStatus, rr.Code)
			}
			if test.wantStatus == http.StatusCreated && len(rr.Result().Cookies()) == 0 {
				t.Error("expected token cookies to be set")
			}
		})
	}
}

func TestHandleLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().Login(gomock.Any(), "a@example.com", "wrong-password").Return(nil, nil, ErrInvalidCredentials)

	_, mux := newTestAPI(mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"a@example.com","password":"wrong-password"}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestHandleRefresh(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "success",
			body:       `{"refresh_token":"refresh"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing token",
			body:        `{}`,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "token missing",
		},
		{
			name:        "expired refresh token",
			body:        `{"refresh_token":"refresh"}`,
			serviceErr:  ErrTokenExpired,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "jwt expired",
		},
		{
			name:        "invalid refresh token",
			body:        `{"refresh_token":"refresh"}`,
			serviceErr:  ErrTokenInvalid,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid token",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			if test.body != `{}` {
				if test.serviceErr != nil {
					mockService.EXPECT().Refresh(gomock.Any(), "refresh").Return("", test.serviceErr)
				} else {
					mockService.EXPECT().Refresh(gomock.Any(), "refresh").Return("new-access", nil)
				}
			}

			_, mux := newTestAPI(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(test.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != test.wantStatus {
				t.Errorf("expected status %d, got %d", test.wantStatus, rr.Code)
			}
			if test.wantMessage != "" {
				if payload := decodeResponse(t, rr); payload.Message != test.wantMessage {
					t.Errorf("expected message %q, got %q", test.wantMessage, payload.Message)
				}
			}
		})
	}
}

func TestHandleRefreshExpiredClearsCookies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().Refresh(gomock.Any(), "refresh").Return("", ErrTokenExpired)

	_, mux := newTestAPI(mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(`{"refresh_token":"refresh"}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	cleared := 0
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			cleared++
		}
	}
	if cleared != 2 {
		t.Errorf("expected both token cookies expired, got %d", cleared)
	}
}

func TestHandleLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, mux := newTestAPI(NewMockServiceInterface(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	cleared := 0
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			cleared++
		}
	}
	if cleared != 2 {
		t.Errorf("expected both token cookies expired, got %d", cleared)
	}
}
