// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/types"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"status": 401, "message": message})
}

func seedStore(t *testing.T, access, refresh string) CredentialStore {
	t.Helper()

	store := NewMemoryCredentialStore()
	if err := store.Store(&types.TokenPair{AccessToken: access, RefreshToken: refresh}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return store
}

func TestTransportAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": 200})
	}))
	defer server.Close()

	store := seedStore(t, "access-1", "refresh-1")
	httpClient := &http.Client{Transport: NewTransport(nil, store, server.URL+"/refresh", logging.NewNoopLogger())}

	resp, err := httpClient.Get(server.URL + "/api/v1/orgs")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	resp.Body.Close()

	if gotAuth != "Bearer access-1" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

func TestTransportRefreshesExpiredTokenOnce(t *testing.T) {
	var refreshCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": 200,
			"data":   map[string]string{"access_token": "access-2"},
		})
	})
	mux.HandleFunc("/api/v1/orgs", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-2" {
			unauthorized(w, "jwt expired")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": 200})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := seedStore(t, "access-1", "refresh-1")
	httpClient := &http.Client{Transport: NewTransport(nil, store, server.URL+"/refresh", logging.NewNoopLogger())}

	resp, err := httpClient.Get(server.URL + "/api/v1/orgs")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200 after refresh and replay, got %d", resp.StatusCode)
	}
	if got := refreshCalls.Load(); got != 1 {
		t.Errorf("expected exactly one refresh call, got %d", got)
	}

	pair, err := store.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pair.AccessToken != "access-2" {
		t.Errorf("expected refreshed access token stored, got %q", pair.AccessToken)
	}
	if pair.RefreshToken != "refresh-1" {
		t.Errorf("expected refresh token preserved, got %q", pair.RefreshToken)
	}
}

func TestTransportRetriesAtMostOnce(t *testing.T) {
	var apiCalls, refreshCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": 200,
			"data":   map[string]string{"access_token": "access-2"},
		})
	})
	mux.HandleFunc("/api/v1/orgs", func(w http.ResponseWriter, r *http.Request) {
		apiCalls.Add(1)
		// The server keeps rejecting even the refreshed token.
		unauthorized(w, "jwt expired")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := seedStore(t, "access-1", "refresh-1")
	httpClient := &http.Client{Transport: NewTransport(nil, store, server.URL+"/refresh", logging.NewNoopLogger())}

	resp, err := httpClient.Get(server.URL + "/api/v1/orgs")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected the second 401 to surface, got %d", resp.StatusCode)
	}
	if got := apiCalls.Load(); got != 2 {
		t.Errorf("expected exactly two api calls, got %d", got)
	}
	if got := refreshCalls.Load(); got != 1 {
		t.Errorf("expected exactly one refresh call, got %d", got)
	}
}

func TestTransportExpiredRefreshTokenEndsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		unauthorized(w, "jwt expired")
	})
	mux.HandleFunc("/api/v1/orgs", func(w http.ResponseWriter, r *http.Request) {
		unauthorized(w, "jwt expired")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := seedStore(t, "access-1", "refresh-1")
	httpClient := &http.Client{Transport: NewTransport(nil, store, server.URL+"/refresh", logging.NewNoopLogger())}

	resp, err := httpClient.Get(server.URL + "/api/v1/orgs")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected the original 401 to surface, got %d", resp.StatusCode)
	}

	pair, err := store.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pair != nil {
		t.Errorf("expected credentials cleared after terminal refresh failure, got %+v", pair)
	}
}

func TestTransportTransientRefreshFailureKeepsCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"status": 500, "message": "internal server error"})
	})
	mux.HandleFunc("/api/v1/orgs", func(w http.ResponseWriter, r *http.Request) {
		unauthorized(w, "jwt expired")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := seedStore(t, "access-1", "refresh-1")
	httpClient := &http.Client{Transport: NewTransport(nil, store, server.URL+"/refresh", logging.NewNoopLogger())}

	_, err := httpClient.Get(server.URL + "/api/v1/orgs")
	if err == nil {
		t.Fatal("expected the refresh failure to surface as an error")
	}
	if !strings.Contains(err.Error(), "token refresh failed") {
		t.Errorf("expected a refresh error, got %v", err)
	}

	pair, err := store.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pair == nil || pair.RefreshToken != "refresh-1" {
		t.Errorf("expected credentials kept after transient refresh failure, got %+v", pair)
	}
}

func TestTransportUnreachableRefreshEndpointKeepsCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/orgs", func(w http.ResponseWriter, r *http.Request) {
		unauthorized(w, "jwt expired")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	// The refresh endpoint points at a closed port.
	dead := httptest.NewServer(http.NotFoundHandler())
	dead.Close()

	store := seedStore(t, "access-1", "refresh-1")
	httpClient := &http.Client{Transport: NewTransport(nil, store, dead.URL+"/refresh", logging.NewNoopLogger())}

	_, err := httpClient.Get(server.URL + "/api/v1/orgs")
	if err == nil {
		t.Fatal("expected the refresh failure to surface as an error")
	}
	if !strings.Contains(err.Error(), "token refresh failed") {
		t.Errorf("expected a refresh error, got %v", err)
	}

	pair, err := store.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pair == nil || pair.RefreshToken != "refresh-1" {
		t.Errorf("expected credentials kept after a transport failure, got %+v", pair)
	}
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

type failingStore struct {
	CredentialStore
}

func (f *failingStore) StoreAccessToken(string) error {
	return errors.New("disk full")
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, payload interface{}, body io.ReadCloser) *http.Response {
	if body == nil {
		data, _ := json.Marshal(payload)
		body = io.NopCloser(bytes.NewReader(data))
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       body,
	}
}

func TestTransportClosesDeniedResponseWhenStoreFails(t *testing.T) {
	denied := &closeTracker{Reader: strings.NewReader(`{"status":401,"message":"jwt expired"}`)}

	base := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/refresh") {
			return jsonResponse(http.StatusOK, map[string]interface{}{
				"status": 200,
				"data":   map[string]string{"access_token": "access-2"},
			}, nil), nil
		}
		return jsonResponse(http.StatusUnauthorized, nil, denied), nil
	})

	store := &failingStore{CredentialStore: seedStore(t, "access-1", "refresh-1")}
	transport := NewTransport(base, store, "http://service/refresh", logging.NewNoopLogger())

	req, err := http.NewRequest(http.MethodGet, "http://service/api/v1/orgs", nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := transport.RoundTrip(req); err == nil {
		t.Fatal("expected the store failure to surface as an error")
	}
	if !denied.closed {
		t.Error("expected the original 401 body to be closed")
	}
}

func TestTransportDoesNotRefreshOnInvalidToken(t *testing.T) {
	var refreshCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
	})
	mux.HandleFunc("/api/v1/orgs", func(w http.ResponseWriter, r *http.Request) {
		unauthorized(w, "invalid token")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := seedStore(t, "access-1", "refresh-1")
	httpClient := &http.Client{Transport: NewTransport(nil, store, server.URL+"/refresh", logging.NewNoopLogger())}

	resp, err := httpClient.Get(server.URL + "/api/v1/orgs")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", resp.StatusCode)
	}
	if got := refreshCalls.Load(); got != 0 {
		t.Errorf("expected no refresh attempt for an invalid token, got %d", got)
	}
}

func TestTransportReplaysRequestBody(t *testing.T) {
	var bodies []string

	mux := http.NewServeMux()
	mux.HandleFunc("/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": 200,
			"data":   map[string]string{"access_token": "access-2"},
		})
	})
	mux.HandleFunc("/api/v1/orgs", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(body))
		if r.Header.Get("Authorization") != "Bearer access-2" {
			unauthorized(w, "jwt expired")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"status": 200})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := seedStore(t, "access-1", "refresh-1")
	httpClient := &http.Client{Transport: NewTransport(nil, store, server.URL+"/refresh", logging.NewNoopLogger())}

	resp, err := httpClient.Post(server.URL+"/api/v1/orgs", "application/json", strings.NewReader(`{"title":"Acme"}`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200 after replay with body, got %d", resp.StatusCode)
	}
	if len(bodies) != 2 || bodies[0] != bodies[1] {
		t.Errorf("expected identical bodies on both attempts, got %q", bodies)
	}
}
