// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/taskhive/workspace-service/internal/types"
)

// CredentialStore holds the credential pair between requests. Stores
// must be safe for concurrent use; the transport reads on every request
// and writes after each refresh.
type CredentialStore interface {
	Load() (*types.TokenPair, error)
	Store(pair *types.TokenPair) error
	StoreAccessToken(accessToken string) error
	Clear() error
}

var _ CredentialStore = (*MemoryCredentialStore)(nil)

// MemoryCredentialStore keeps the pair in process memory.
type MemoryCredentialStore struct {
	mu   sync.RWMutex
	pair *types.TokenPair
}

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return new(MemoryCredentialStore)
}

func (s *MemoryCredentialStore) Load() (*types.TokenPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.pair == nil {
		return nil, nil
	}
	pair := *s.pair
	return &pair, nil
}

func (s *MemoryCredentialStore) Store(pair *types.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *pair
	s.pair = &copied
	return nil
}

func (s *MemoryCredentialStore) StoreAccessToken(accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pair == nil {
		s.pair = new(types.TokenPair)
	}
	s.pair.AccessToken = accessToken
	return nil
}

func (s *MemoryCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pair = nil
	return nil
}

var _ CredentialStore = (*FileCredentialStore)(nil)

// FileCredentialStore persists the pair as a JSON file so sessions
// survive process restarts.
type FileCredentialStore struct {
	mu   sync.Mutex
	path string
}

func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{path: path}
}

func (s *FileCredentialStore) Load() (*types.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	pair := new(types.TokenPair)
	if err := json.Unmarshal(data, pair); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	return pair, nil
}

func (s *FileCredentialStore) Store(pair *types.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(pair)
}

func (s *FileCredentialStore) StoreAccessToken(accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pair := new(types.TokenPair)
	if data, err := os.ReadFile(s.path); err == nil {
		_ = json.Unmarshal(data, pair)
	}
	pair.AccessToken = accessToken
	return s.write(pair)
}

func (s *FileCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

func (s *FileCredentialStore) write(pair *types.TokenPair) error {
	data, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}
