// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Principal struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Organization struct {
	ID    string `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
	// JoinCode is a capability: it never rides along in organization
	// payloads, only in the rotate response.
	JoinCode  string     `db:"join_code" json:"-"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

type Team struct {
	ID        string    `db:"id" json:"id"`
	OrgID     string    `db:"org_id" json:"org_id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Project struct {
	ID        string    `db:"id" json:"id"`
	OrgID     string    `db:"org_id" json:"org_id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Membership is the organization-scope membership row.
type Membership struct {
	ID          string    `db:"id" json:"id"`
	OrgID       string    `db:"org_id" json:"org_id"`
	PrincipalID string    `db:"principal_id" json:"principal_id"`
	Role        string    `db:"role" json:"role"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ScopeMembership is a team- or project-scope membership row, layered on
// top of an organization membership.
type ScopeMembership struct {
	ID          string    `db:"id" json:"id"`
	OrgID       string    `db:"org_id" json:"org_id"`
	ScopeKind   string    `db:"scope_kind" json:"scope_kind"`
	ScopeID     string    `db:"scope_id" json:"scope_id"`
	PrincipalID string    `db:"principal_id" json:"principal_id"`
	Role        string    `db:"role" json:"role"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// TokenPair is the credential pair issued at login and rotated by the
// refresh endpoint.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Member struct {
	PrincipalID string `json:"principal_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Status      string `json:"status"`
}
