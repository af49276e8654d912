// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/taskhive/workspace-service/internal/http/types"
	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/tracing"
)

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type PrincipalResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type API struct {
	service ServiceInterface
	cookies *CookieManager

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, cookies *CookieManager, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.cookies = cookies
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v1/auth/register", a.handleRegister)
	mux.Post("/api/v1/auth/login", a.handleLogin)
	mux.Post("/api/v1/auth/refresh", a.handleRefresh)
	mux.Post("/api/v1/auth/logout", a.handleLogout)
}

// RegisterAuthenticatedEndpoints mounts the routes that require a
// verified principal in the request context.
func (a *API) RegisterAuthenticatedEndpoints(mux chi.Router) {
	mux.Get("/api/v1/auth/me", a.handleMe)
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.handleRegister")
	defer span.End()

	payload := new(CredentialsRequest)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(payload); err != nil {
		a.badRequest(w, err.Error())
		return
	}

	principal, pair, err := a.service.Register(ctx, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			a.writeError(w, http.StatusConflict, err.Error())
			return
		}
		a.internalError(w, err)
		return
	}

	if err := a.cookies.SetTokenCookies(w, pair); err != nil {
		a.internalError(w, err)
		return
	}

	a.writeResponse(w, http.StatusCreated, map[string]interface{}{
		"principal": PrincipalResponse{ID: principal.ID, Email: principal.Email},
		"tokens":    pair,
	})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.handleLogin")
	defer span.End()

	payload := new(CredentialsRequest)
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}

	principal, pair, err := a.service.Login(ctx, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			a.writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		a.internalError(w, err)
		return
	}

	if err := a.cookies.SetTokenCookies(w, pair); err != nil {
		a.internalError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, map[string]interface{}{
		"principal": PrincipalResponse{ID: principal.ID, Email: principal.Email},
		"tokens":    pair,
	})
}

// handleRefresh exchanges the refresh token, read from the request body
// or the refreshToken cookie, for a new access token. An expired refresh
// token yields 401 "jwt expired" so clients know the session is over.
func (a *API) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.handleRefresh")
	defer span.End()

	payload := new(RefreshRequest)
	// body is optional for cookie-based clients
	_ = json.NewDecoder(r.Body).Decode(payload)

	refreshToken := payload.RefreshToken
	if refreshToken == "" {
		refreshToken, _ = a.cookies.ReadToken(r, RefreshTokenCookie)
	}
	if refreshToken == "" {
		a.writeError(w, http.StatusUnauthorized, msgTokenMissing)
		return
	}

	accessToken, err := a.service.Refresh(ctx, refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenExpired):
			a.cookies.ClearTokenCookies(w)
			a.writeError(w, http.StatusUnauthorized, msgTokenExpired)
		case errors.Is(err, ErrTokenInvalid):
			a.writeError(w, http.StatusUnauthorized, msgTokenInvalid)
		default:
			a.internalError(w, err)
		}
		return
	}

	if err := a.cookies.SetAccessTokenCookie(w, accessToken); err != nil {
		a.internalError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, map[string]string{"access_token": accessToken})
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "authentication.API.handleLogout")
	defer span.End()

	a.cookies.ClearTokenCookies(w)
	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.handleMe")
	defer span.End()

	principalID, ok := GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, msgTokenMissing)
		return
	}

	principal, err := a.service.GetPrincipal(ctx, principalID)
	if err != nil {
		a.internalError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, PrincipalResponse{ID: principal.ID, Email: principal.Email})
}

func (a *API) writeResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(httptypes.Response{Status: status, Data: data}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(httptypes.Response{Status: status, Message: message}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) badRequest(w http.ResponseWriter, message string) {
	a.writeError(w, http.StatusBadRequest, message)
}

func (a *API) internalError(w http.ResponseWriter, err error) {
	a.logger.Errorf("internal error: %v", err)
	a.writeError(w, http.StatusInternalServerError, "internal server error")
}
