// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/tracing"
	httptypes "github.com/taskhive/workspace-service/internal/http/types"
)

// 401 payload messages. The session interceptor matches on these to
// decide whether a refresh attempt can recover the request.
const (
	msgTokenMissing = "token missing"
	msgTokenExpired = "jwt expired"
	msgTokenInvalid = "invalid token"
)

type Middleware struct {
	tokens  TokenManagerInterface
	cookies *CookieManager

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tokens TokenManagerInterface, cookies *CookieManager, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tokens:  tokens,
		cookies: cookies,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Authenticate verifies the access token, preferring the Authorization
// bearer header and falling back to the signed accessToken cookie, and
// injects the principal ID into the request context.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				token, found = m.cookies.ReadToken(r, AccessTokenCookie)
			}
			if !found {
				m.unauthorizedResponse(w, msgTokenMissing)
				return
			}

			principalID, err := m.tokens.VerifyAccessToken(token)
			if err != nil {
				if errors.Is(err, ErrTokenExpired) {
					m.unauthorizedResponse(w, msgTokenExpired)
					return
				}
				m.logger.Debugf("JWT verification failed: %v", err)
				m.unauthorizedResponse(w, msgTokenInvalid)
				return
			}

			ctx = WithPrincipalID(ctx, principalID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(httptypes.Response{
		Status:  http.StatusUnauthorized,
		Message: message,
	}); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}
