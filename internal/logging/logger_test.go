// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("debug")
	}()
}

func TestInvalidLevelFallsBack(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestNoopLoggerSecurity(t *testing.T) {
	l := NewNoopLogger()
	if l.Security() == nil {
		t.Error("expected security logger to be set")
	}
	l.Security().SystemStartup()
	l.Security().AuthzFailure("user-1", "switch_tenant")
}
