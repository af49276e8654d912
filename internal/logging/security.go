// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger writes audit events on a dedicated named logger so they
// can be routed separately from application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn("authentication failure",
		zap.String("event", "authn_failure"),
		zap.String("subject", subject),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) OwnershipTransfer(orgID, fromID, toID string) {
	s.l.Info("ownership transferred",
		zap.String("event", "ownership_transfer"),
		zap.String("org_id", orgID),
		zap.String("from", fromID),
		zap.String("to", toID),
	)
}

func (s *SecurityLogger) MemberBanned(orgID, actorID, targetID string) {
	s.l.Info("member banned",
		zap.String("event", "member_banned"),
		zap.String("org_id", orgID),
		zap.String("actor", actorID),
		zap.String("target", targetID),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "shutdown"))
}
