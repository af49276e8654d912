// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import "errors"

// ErrLastOwner rejects any change that would leave the organization
// without an active owner. ErrOwnerImmune rejects bans and removals
// aimed at an owner: ownership has to move first.
var (
	ErrLastOwner       = errors.New("organization must keep at least one active owner")
	ErrOwnerImmune     = errors.New("owner cannot be banned or removed")
	ErrInvalidCode     = errors.New("invalid join code")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrNotActiveMember = errors.New("target is not an active member")
	ErrMemberNotFound  = errors.New("member not found")
)
