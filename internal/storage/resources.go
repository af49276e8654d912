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

func (s *Storage) CreateTeam(ctx context.Context, orgID, title string) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTeam")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var t types.Team
	err = s.db.Statement(ctx).
		Insert("teams").
		Columns("id", "org_id", "title").
		Values(id, orgID, title).
		Suffix("RETURNING id, org_id, title, created_at").
		QueryRowContext(ctx).
		Scan(&t.ID, &t.OrgID, &t.Title, &t.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert team: %w", err)
	}

	return &t, nil
}

func (s *Storage) GetTeamByID(ctx context.Context, id string) (*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTeamByID")
	defer span.End()

	var t types.Team
	err := s.db.Statement(ctx).
		Select("id", "org_id", "title", "created_at").
		From("teams").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.OrgID, &t.Title, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &t, nil
}

func (s *Storage) ListTeamsByOrgID(ctx context.Context, orgID string) ([]*types.Team, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTeamsByOrgID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "org_id", "title", "created_at").
		From("teams").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := []*types.Team{}
	for rows.Next() {
		var t types.Team
		if err := rows.Scan(&t.ID, &t.OrgID, &t.Title, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, &t)
	}

	return teams, rows.Err()
}

func (s *Storage) UpdateTeamTitle(ctx context.Context, id, title string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTeamTitle")
	defer span.End()

	return s.execExpectingRow(ctx, s.db.Statement(ctx).
		Update("teams").
		Set("title", title).
		Where(sq.Eq{"id": id}), "team")
}

func (s *Storage) DeleteTeam(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTeam")
	defer span.End()

	return s.execExpectingRow(ctx, s.db.Statement(ctx).
		Delete("teams").
		Where(sq.Eq{"id": id}), "team")
}

func (s *Storage) CreateProject(ctx context.Context, orgID, title string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProject")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var p types.Project
	err = s.db.Statement(ctx).
		Insert("projects").
		Columns("id", "org_id", "title").
		Values(id, orgID, title).
		Suffix("RETURNING id, org_id, title, created_at").
		QueryRowContext(ctx).
		Scan(&p.ID, &p.OrgID, &p.Title, &p.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	return &p, nil
}

func (s *Storage) GetProjectByID(ctx context.Context, id string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectByID")
	defer span.End()

	var p types.Project
	err := s.db.Statement(ctx).
		Select("id", "org_id", "title", "created_at").
		From("projects").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.OrgID, &p.Title, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &p, nil
}

func (s *Storage) ListProjectsByOrgID(ctx context.Context, orgID string) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjectsByOrgID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "org_id", "title", "created_at").
		From("projects").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []*types.Project{}
	for rows.Next() {
		var p types.Project
		if err := rows.Scan(&p.ID, &p.OrgID, &p.Title, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &p)
	}

	return projects, rows.Err()
}

func (s *Storage) UpdateProjectTitle(ctx context.Context, id, title string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProjectTitle")
	defer span.End()

	return s.execExpectingRow(ctx, s.db.Statement(ctx).
		Update("projects").
		Set("title", title).
		Where(sq.Eq{"id": id}), "project")
}

func (s *Storage) DeleteProject(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProject")
	defer span.End()

	return s.execExpectingRow(ctx, s.db.Statement(ctx).
		Delete("projects").
		Where(sq.Eq{"id": id}), "project")
}
