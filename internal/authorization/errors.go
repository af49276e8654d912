// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"errors"
)

// Deny reasons. The HTTP layer maps all of them to the same failure
// class, but the distinction is part of the API payload so clients can
// react (prompt to join, terminal message, hide the action).
var (
	ErrNotAMember       = errors.New("not a member of the organization")
	ErrBanned           = errors.New("membership is banned")
	ErrInsufficientRole = errors.New("role does not permit this action")
	ErrResourceNotFound = errors.New("resource not found")
)
