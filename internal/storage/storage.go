// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/taskhive/workspace-service/internal/db"
	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/tracing"
	"github.com/taskhive/workspace-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

func (s *Storage) CreatePrincipal(ctx context.Context, email, passwordHash string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePrincipal")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var p types.Principal
	err = s.db.Statement(ctx).
		Insert("principals").
		Columns("id", "email", "password_hash").
		Values(id, email, passwordHash).
		Suffix("RETURNING id, email, password_hash, created_at").
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Email, &p.PasswordHash, &p.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert principal: %w", err)
	}

	return &p, nil
}

func (s *Storage) GetPrincipalByEmail(ctx context.Context, email string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPrincipalByEmail")
	defer span.End()

	return s.getPrincipal(ctx, sq.Eq{"email": email})
}

func (s *Storage) GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPrincipalByID")
	defer span.End()

	return s.getPrincipal(ctx, sq.Eq{"id": id})
}

func (s *Storage) getPrincipal(ctx context.Context, pred sq.Eq) (*types.Principal, error) {
	var p types.Principal
	err := s.db.Statement(ctx).
		Select("id", "email", "password_hash", "created_at").
		From("principals").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Email, &p.PasswordHash, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}

	return &p, nil
}

func (s *Storage) CreateOrganization(ctx context.Context, title, joinCode string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var o types.Organization
	err = s.db.Statement(ctx).
		Insert("organizations").
		Columns("id", "title", "join_code").
		Values(id, title, joinCode).
		Suffix("RETURNING id, title, join_code, deleted_at, created_at").
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Title, &o.JoinCode, &o.DeletedAt, &o.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	return &o, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByID")
	defer span.End()

	return s.getOrganization(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetOrganizationByJoinCode(ctx context.Context, code string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByJoinCode")
	defer span.End()

	return s.getOrganization(ctx, sq.Eq{"join_code": code})
}

func (s *Storage) getOrganization(ctx context.Context, pred sq.Eq) (*types.Organization, error) {
	var o types.Organization
	err := s.db.Statement(ctx).
		Select("id", "title", "join_code", "deleted_at", "created_at").
		From("organizations").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Title, &o.JoinCode, &o.DeletedAt, &o.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &o, nil
}

func (s *Storage) UpdateOrganizationTitle(ctx context.Context, id, title string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOrganizationTitle")
	defer span.End()

	return s.execExpectingRow(ctx, s.db.Statement(ctx).
		Update("organizations").
		Set("title", title).
		Where(sq.Eq{"id": id}), "organization")
}

func (s *Storage) SetJoinCode(ctx context.Context, id, code string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetJoinCode")
	defer span.End()

	return s.execExpectingRow(ctx, s.db.Statement(ctx).
		Update("organizations").
		Set("join_code", code).
		Where(sq.Eq{"id": id}), "organization")
}

// DeleteOrganization removes the organization row; teams, projects and
// all membership rows go with it via ON DELETE CASCADE, so readers never
// observe a partial cascade.
func (s *Storage) DeleteOrganization(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteOrganization")
	defer span.End()

	return s.execExpectingRow(ctx, s.db.Statement(ctx).
		Delete("organizations").
		Where(sq.Eq{"id": id}), "organization")
}

func (s *Storage) ListOrganizationsByPrincipalID(ctx context.Context, principalID string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizationsByPrincipalID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("o.id", "o.title", "o.join_code", "o.deleted_at", "o.created_at").
		From("organizations o").
		Join("org_memberships m ON o.id = m.org_id").
		Where(sq.Eq{"m.principal_id": principalID}).
		Where(sq.Eq{"o.deleted_at": nil})

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*types.Organization
	for rows.Next() {
		var o types.Organization
		if err := rows.Scan(&o.ID, &o.Title, &o.JoinCode, &o.DeletedAt, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return orgs, nil
}

// execExpectingRow runs an update or delete and maps zero affected rows
// to ErrNotFound.
func (s *Storage) execExpectingRow(ctx context.Context, stmt sq.Sqlizer, entity string) error {
	var res interface {
		RowsAffected() (int64, error)
	}
	var err error

	switch q := stmt.(type) {
	case sq.UpdateBuilder:
		res, err = q.ExecContext(ctx)
	case sq.DeleteBuilder:
		res, err = q.ExecContext(ctx)
	default:
		return fmt.Errorf("unsupported statement type %T", stmt)
	}

	if err != nil {
		return fmt.Errorf("failed to update %s: %w", entity, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
