// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package version

// Version is overridden at build time via
// -ldflags "-X github.com/taskhive/workspace-service/internal/version.Version=...".
var Version = "dev"
