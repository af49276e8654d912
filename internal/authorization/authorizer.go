// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/tracing"
)

// Authorizer is the decision point every guarded operation calls before
// performing its write. It is pure: it resolves membership, consults the
// permission table and returns nil or a typed deny error. Logging of
// denials is the caller's concern.
type Authorizer struct {
	resolver ResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthorizer(resolver ResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)
	a.resolver = resolver
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

// Authorize returns nil when principalID may perform action on the
// resource at path, or one of ErrNotAMember, ErrBanned,
// ErrInsufficientRole, ErrResourceNotFound.
func (a *Authorizer) Authorize(ctx context.Context, principalID string, path ResourcePath, action Action) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Authorize")
	defer span.End()

	res, err := a.resolver.Resolve(ctx, principalID, path)
	if err != nil {
		return err
	}

	if res.Status == StatusBanned {
		return ErrBanned
	}

	if !RoleAllows(res.Role, action) {
		return ErrInsufficientRole
	}

	// A team/project role is additive only within what the organization
	// role already allows.
	if res.Role != res.OrgRole && !RoleAllows(res.OrgRole, action) {
		return ErrInsufficientRole
	}

	return nil
}
