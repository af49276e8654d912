// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"path/filepath"
	"testing"

	"github.com/taskhive/workspace-service/internal/types"
)

func TestMemoryCredentialStore(t *testing.T) {
	store := NewMemoryCredentialStore()

	pair, err := store.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pair != nil {
		t.Fatalf("expected empty store, got %+v", pair)
	}

	if err := store.Store(&types.TokenPair{AccessToken: "a", RefreshToken: "r"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := store.StoreAccessToken("a2"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	pair, err = store.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pair.AccessToken != "a2" || pair.RefreshToken != "r" {
		t.Errorf("expected updated access token with preserved refresh token, got %+v", pair)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pair, _ := store.Load(); pair != nil {
		t.Errorf("expected cleared store, got %+v", pair)
	}
}

func TestFileCredentialStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileCredentialStore(path)

	if pair, err := store.Load(); err != nil || pair != nil {
		t.Fatalf("expected empty store, got %+v, %v", pair, err)
	}

	if err := store.Store(&types.TokenPair{AccessToken: "a", RefreshToken: "r"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// A second store handle sees the persisted pair.
	pair, err := NewFileCredentialStore(path).Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pair.AccessToken != "a" || pair.RefreshToken != "r" {
		t.Errorf("expected persisted pair, got %+v", pair)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pair, _ := store.Load(); pair != nil {
		t.Errorf("expected cleared store, got %+v", pair)
	}

	// Clearing an already cleared store is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}
