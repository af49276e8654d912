// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/types"
)

// Refresh endpoint contract: 401 bodies carry one of these messages.
// "jwt expired" on the refresh call itself means the session is over.
const (
	msgTokenExpired = "jwt expired"
	msgTokenMissing = "token missing"
)

var _ http.RoundTripper = (*Transport)(nil)

// Transport is an http.RoundTripper that attaches the stored access
// token as a bearer header and transparently refreshes it once when the
// server answers 401 with an expired or missing token. A request is
// replayed at most once; a second 401 is returned to the caller as-is.
type Transport struct {
	base       http.RoundTripper
	store      CredentialStore
	refreshURL string

	logger logging.LoggerInterface
}

func NewTransport(base http.RoundTripper, store CredentialStore, refreshURL string, logger logging.LoggerInterface) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}

	t := new(Transport)
	t.base = base
	t.store = store
	t.refreshURL = refreshURL
	t.logger = logger

	return t
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	pair, err := t.store.Load()
	if err != nil {
		return nil, err
	}

	resp, err := t.do(req, pair)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	message, resp, err := t.peekMessage(resp)
	if err != nil {
		return nil, err
	}
	if message != msgTokenExpired && message != msgTokenMissing {
		return resp, nil
	}
	if pair == nil || pair.RefreshToken == "" || !replayable(req) {
		return resp, nil
	}

	accessToken, sessionOver, err := t.refresh(req, pair.RefreshToken)
	if err != nil {
		resp.Body.Close()
		return nil, err
	}
	if sessionOver {
		// The refresh token itself expired; the original denial stands.
		return resp, nil
	}

	if err := t.store.StoreAccessToken(accessToken); err != nil {
		resp.Body.Close()
		return nil, err
	}
	resp.Body.Close()

	t.logger.Debugf("access token refreshed, replaying request")
	pair.AccessToken = accessToken
	return t.do(req, pair)
}

func (t *Transport) do(req *http.Request, pair *types.TokenPair) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		clone.Body = body
	}
	if pair != nil && pair.AccessToken != "" {
		clone.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	}
	return t.base.RoundTrip(clone)
}

// refresh exchanges the refresh token for a new access token. A
// "jwt expired" answer is terminal: the credential store is cleared and
// sessionOver is reported so the original denial can be returned. Any
// other failure is surfaced as an error and leaves the stored pair
// untouched for a later attempt.
func (t *Transport) refresh(orig *http.Request, refreshToken string) (accessToken string, sessionOver bool, err error) {
	payload, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return "", false, err
	}

	req, err := http.NewRequestWithContext(orig.Context(), http.MethodPost, t.refreshURL, bytes.NewReader(payload))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		// Transient transport failure; the stored pair stays usable.
		return "", false, fmt.Errorf("token refresh failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", false, err
	}

	if resp.StatusCode != http.StatusOK {
		message := messageOf(body)
		if message == msgTokenExpired {
			// The refresh token itself expired: the session is over.
			if err := t.store.Clear(); err != nil {
				return "", false, err
			}
			return "", true, nil
		}
		return "", false, fmt.Errorf("token refresh failed: %w", &APIError{Status: resp.StatusCode, Message: message})
	}

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", false, fmt.Errorf("failed to parse refresh response: %w", err)
	}
	if envelope.Data.AccessToken == "" {
		return "", false, fmt.Errorf("refresh response carried no access token")
	}

	return envelope.Data.AccessToken, true, nil
}

// peekMessage reads the 401 body to discriminate the failure mode, then
// rebuilds the response so the caller can still consume it.
func (t *Transport) peekMessage(resp *http.Response) (string, *http.Response, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	resp.Body.Close()
	if err != nil {
		return "", nil, err
	}

	resp.Body = io.NopCloser(bytes.NewReader(body))
	return messageOf(body), resp, nil
}

func messageOf(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}

// replayable reports whether the request can safely be sent twice.
func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}
