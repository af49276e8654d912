// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package types

// Response is the envelope returned by every JSON endpoint.
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Status  int         `json:"status"`
}
