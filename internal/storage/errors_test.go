// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestErrorCodeMapping(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "memberships_tenant_user_key"}
	foreign := &pgconn.PgError{Code: "23503", ConstraintName: "memberships_tenant_id_fkey"}

	testCases := []struct {
		name          string
		err           error
		wantDuplicate bool
		wantForeign   bool
	}{
		{name: "unique violation", err: unique, wantDuplicate: true},
		{name: "foreign key violation", err: foreign, wantForeign: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert membership: %w", unique), wantDuplicate: true},
		{name: "other pg error", err: &pgconn.PgError{Code: "42601"}},
		{name: "plain error", err: errors.New("connection refused")},
		{name: "nil", err: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDuplicateKeyError(tc.err); got != tc.wantDuplicate {
				t.Errorf("IsDuplicateKeyError = %v, want %v", got, tc.wantDuplicate)
			}
			if got := IsForeignKeyViolation(tc.err); got != tc.wantForeign {
				t.Errorf("IsForeignKeyViolation = %v, want %v", got, tc.wantForeign)
			}
		})
	}
}

func TestWrapErrorsKeepSentinels(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}

	wrapped := WrapDuplicateKeyError(unique, "create membership")
	if !errors.Is(wrapped, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", wrapped)
	}

	// A non-matching error passes through untouched.
	plain := errors.New("timeout")
	if got := WrapDuplicateKeyError(plain, "create membership"); got != plain {
		t.Errorf("expected passthrough, got %v", got)
	}
	if got := WrapForeignKeyError(plain, "create membership"); got != plain {
		t.Errorf("expected passthrough, got %v", got)
	}

	foreign := &pgconn.PgError{Code: "23503"}
	if !errors.Is(WrapForeignKeyError(foreign, "delete tenant"), ErrForeignKeyViolation) {
		t.Errorf("expected ErrForeignKeyViolation")
	}
}
