// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/types"
)

// APIError is a non-2xx answer from the service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Client is a typed wrapper over the service's REST API. All calls ride
// on the refreshing Transport, so an expired access token is renewed
// without the caller noticing.
type Client struct {
	baseURL string
	store   CredentialStore
	http    *http.Client

	logger logging.LoggerInterface
}

func NewClient(baseURL string, store CredentialStore, logger logging.LoggerInterface) *Client {
	baseURL = strings.TrimRight(baseURL, "/")

	c := new(Client)
	c.baseURL = baseURL
	c.store = store
	c.http = &http.Client{
		Transport: NewTransport(nil, store, baseURL+"/api/v1/auth/refresh", logger),
		Timeout:   30 * time.Second,
	}
	c.logger = logger

	return c
}

func (c *Client) Register(ctx context.Context, email, password string) (*Principal, error) {
	return c.authenticate(ctx, "/api/v1/auth/register", email, password)
}

func (c *Client) Login(ctx context.Context, email, password string) (*Principal, error) {
	return c.authenticate(ctx, "/api/v1/auth/login", email, password)
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (*Principal, error) {
	var result struct {
		Principal Principal       `json:"principal"`
		Tokens    types.TokenPair `json:"tokens"`
	}
	if err := c.call(ctx, http.MethodPost, path, map[string]string{"email": email, "password": password}, &result); err != nil {
		return nil, err
	}

	if err := c.store.Store(&result.Tokens); err != nil {
		return nil, err
	}
	return &result.Principal, nil
}

// Logout drops the stored credential pair.
func (c *Client) Logout(ctx context.Context) error {
	return c.store.Clear()
}

func (c *Client) Me(ctx context.Context) (*Principal, error) {
	principal := new(Principal)
	if err := c.call(ctx, http.MethodGet, "/api/v1/auth/me", nil, principal); err != nil {
		return nil, err
	}
	return principal, nil
}

func (c *Client) ListOrganizations(ctx context.Context) ([]*types.Organization, error) {
	var orgs []*types.Organization
	if err := c.call(ctx, http.MethodGet, "/api/v1/orgs", nil, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func (c *Client) CreateOrganization(ctx context.Context, title string) (*types.Organization, error) {
	org := new(types.Organization)
	if err := c.call(ctx, http.MethodPost, "/api/v1/orgs", map[string]string{"title": title}, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (c *Client) JoinOrganization(ctx context.Context, code string) (*types.Membership, error) {
	membership := new(types.Membership)
	if err := c.call(ctx, http.MethodPost, "/api/v1/orgs/join", map[string]string{"code": code}, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

func (c *Client) ListMembers(ctx context.Context, orgID string) ([]*types.Member, error) {
	var members []*types.Member
	if err := c.call(ctx, http.MethodGet, "/api/v1/orgs/"+orgID+"/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// call performs a request and decodes the response envelope into out.
func (c *Client) call(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	var envelope struct {
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
		Status  int             `json:"status"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to parse response data: %w", err)
		}
	}
	return nil
}
