// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"crypto/rand"
	"fmt"
)

const joinCodeLength = 10

// joinCodeAlphabet avoids characters that read ambiguously when shared
// out of band (0/O, 1/I/L).
const joinCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// NewJoinCode returns a fresh random join code. Codes are opaque: the
// only supported operation is equality against the stored value.
func NewJoinCode() (string, error) {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate join code: %w", err)
	}

	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}

	return string(buf), nil
}
