// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/taskhive/workspace-service/internal/types"
)

func (s *Storage) GetMembership(ctx context.Context, orgID, principalID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	return s.getMembership(ctx, orgID, principalID, false)
}

// GetMembershipForUpdate locks the membership row for the rest of the
// surrounding transaction. Lifecycle operations that touch the OWNER
// invariant go through here so concurrent transfers serialize.
func (s *Storage) GetMembershipForUpdate(ctx context.Context, orgID, principalID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipForUpdate")
	defer span.End()

	return s.getMembership(ctx, orgID, principalID, true)
}

func (s *Storage) getMembership(ctx context.Context, orgID, principalID string, forUpdate bool) (*types.Membership, error) {
	query := s.db.Statement(ctx).
		Select("id", "org_id", "principal_id", "role", "status", "created_at").
		From("org_memberships").
		Where(sq.Eq{"org_id": orgID, "principal_id": principalID})

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	var m types.Membership
	err := query.QueryRowContext(ctx).
		Scan(&m.ID, &m.OrgID, &m.PrincipalID, &m.Role, &m.Status, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

// UpsertMembership inserts a membership or, when a row for the
// (org, principal) pair already exists, updates its role and status.
// Admission therefore reactivates removed-then-readmitted members
// instead of duplicating rows.
func (s *Storage) UpsertMembership(ctx context.Context, orgID, principalID, role, status string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertMembership")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var m types.Membership
	err = s.db.Statement(ctx).
		Insert("org_memberships").
		Columns("id", "org_id", "principal_id", "role", "status").
		Values(id, orgID, principalID, role, status).
		Suffix("ON CONFLICT (org_id, principal_id) DO UPDATE SET role = EXCLUDED.role, status = EXCLUDED.status").
		Suffix("RETURNING id, org_id, principal_id, role, status, created_at").
		QueryRowContext(ctx).
		Scan(&m.ID, &m.OrgID, &m.PrincipalID, &m.Role, &m.Status, &m.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to upsert membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) SetMembershipRole(ctx context.Context, orgID, principalID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetMembershipRole")
	defer span.End()

	return s.execExpectingRow(ctx, s.db.Statement(ctx).
		Update("org_memberships").
		Set("role", role).
		Where(sq.Eq{"org_id": orgID, "principal_id": principalID}), "membership")
}

func (s *Storage) SetMembershipStatus(ctx context.Context, orgID, principalID, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetMembershipStatus")
	defer span.End()

	return s.execExpectingRow(ctx, s.db.Statement(ctx).
		Update("org_memberships").
		Set("status", status).
		Where(sq.Eq{"org_id": orgID, "principal_id": principalID}), "membership")
}

func (s *Storage) DeleteMembership(ctx context.Context, orgID, principalID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMembership")
	defer span.End()

	return s.execExpectingRow(ctx, s.db.Statement(ctx).
		Delete("org_memberships").
		Where(sq.Eq{"org_id": orgID, "principal_id": principalID}), "membership")
}

func (s *Storage) ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByOrgID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("m.principal_id", "p.email", "m.role", "m.status").
		From("org_memberships m").
		Join("principals p ON p.id = m.principal_id").
		Where(sq.Eq{"m.org_id": orgID}).
		OrderBy("m.created_at")

	return s.scanMembers(ctx, query)
}

func (s *Storage) CountActiveOwners(ctx context.Context, orgID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountActiveOwners")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("org_memberships").
		Where(sq.Eq{"org_id": orgID, "role": "owner", "status": "active"}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count owners: %w", err)
	}

	return count, nil
}

func (s *Storage) GetScopeMembership(ctx context.Context, scopeKind, scopeID, principalID string) (*types.ScopeMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetScopeMembership")
	defer span.End()

	var m types.ScopeMembership
	err := s.db.Statement(ctx).
		Select("id", "org_id", "scope_kind", "scope_id", "principal_id", "role", "status", "created_at").
		From("scope_memberships").
		Where(sq.Eq{"scope_kind": scopeKind, "scope_id": scopeID, "principal_id": principalID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.OrgID, &m.ScopeKind, &m.ScopeID, &m.PrincipalID, &m.Role, &m.Status, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get scope membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) UpsertScopeMembership(ctx context.Context, orgID, scopeKind, scopeID, principalID, role, status string) (*types.ScopeMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertScopeMembership")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var m types.ScopeMembership
	err = s.db.Statement(ctx).
		Insert("scope_memberships").
		Columns("id", "org_id", "scope_kind", "scope_id", "principal_id", "role", "status").
		Values(id, orgID, scopeKind, scopeID, principalID, role, status).
		Suffix("ON CONFLICT (scope_kind, scope_id, principal_id) DO UPDATE SET role = EXCLUDED.role, status = EXCLUDED.status").
		Suffix("RETURNING id, org_id, scope_kind, scope_id, principal_id, role, status, created_at").
		QueryRowContext(ctx).
		Scan(&m.ID, &m.OrgID, &m.ScopeKind, &m.ScopeID, &m.PrincipalID, &m.Role, &m.Status, &m.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to upsert scope membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) SetScopeMembershipRole(ctx context.Context, scopeKind, scopeID, principalID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetScopeMembershipRole")
	defer span.End()

	return s.execExpectingRow(ctx, s.db.Statement(ctx).
		Update("scope_memberships").
		Set("role", role).
		Where(sq.Eq{"scope_kind": scopeKind, "scope_id": scopeID, "principal_id": principalID}), "scope membership")
}

func (s *Storage) SetScopeMembershipStatus(ctx context.Context, scopeKind, scopeID, principalID, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetScopeMembershipStatus")
	defer span.End()

	return s.execExpectingRow(ctx, s.db.Statement(ctx).
		Update("scope_memberships").
		Set("status", status).
		Where(sq.Eq{"scope_kind": scopeKind, "scope_id": scopeID, "principal_id": principalID}), "scope membership")
}

func (s *Storage) DeleteScopeMembership(ctx context.Context, scopeKind, scopeID, principalID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteScopeMembership")
	defer span.End()

	return s.execExpectingRow(ctx, s.db.Statement(ctx).
		Delete("scope_memberships").
		Where(sq.Eq{"scope_kind": scopeKind, "scope_id": scopeID, "principal_id": principalID}), "scope membership")
}

// DeleteScopeMembershipsForPrincipal clears every team and project
// membership a principal holds within the organization. Zero rows is not
// an error: most members never held a nested role.
func (s *Storage) DeleteScopeMembershipsForPrincipal(ctx context.Context, orgID, principalID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteScopeMembershipsForPrincipal")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("scope_memberships").
		Where(sq.Eq{"org_id": orgID, "principal_id": principalID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete scope memberships: %w", err)
	}

	return nil
}

// DeleteScopeMembershipsForScope clears every membership row of one team
// or project, used when the scope itself is deleted. Zero rows is not an
// error: a scope can be empty.
func (s *Storage) DeleteScopeMembershipsForScope(ctx context.Context, scopeKind, scopeID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteScopeMembershipsForScope")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("scope_memberships").
		Where(sq.Eq{"scope_kind": scopeKind, "scope_id": scopeID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete scope memberships: %w", err)
	}

	return nil
}

func (s *Storage) ListScopeMembers(ctx context.Context, scopeKind, scopeID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListScopeMembers")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("m.principal_id", "p.email", "m.role", "m.status").
		From("scope_memberships m").
		Join("principals p ON p.id = m.principal_id").
		Where(sq.Eq{"m.scope_kind": scopeKind, "m.scope_id": scopeID}).
		OrderBy("m.created_at")

	return s.scanMembers(ctx, query)
}

func (s *Storage) scanMembers(ctx context.Context, query sq.SelectBuilder) ([]*types.Member, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Member
	for rows.Next() {
		var m types.Member
		if err := rows.Scan(&m.PrincipalID, &m.Email, &m.Role, &m.Status); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}
