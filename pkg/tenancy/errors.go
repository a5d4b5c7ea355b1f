// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the context manager. Callers branch on these
// with errors.Is; the adapter cause stays attached for logging.
var (
	// ErrNotInitialized is returned by mutating operations issued before
	// Initialize has been called for the session.
	ErrNotInitialized = errors.New("tenant context not initialized")

	// ErrTenantNotAccessible means the user holds no active membership for
	// the requested tenant. The prior context is left untouched.
	ErrTenantNotAccessible = errors.New("tenant not accessible")

	// ErrNoAccess marks an authenticated user with zero memberships. It is
	// a terminal state for the session, not a fault.
	ErrNoAccess = errors.New("no tenant access")

	// ErrPermissionDenied means the resolved permission set lacks the flag
	// required for the operation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrAdapterUnavailable normalizes unexpected membership store
	// failures. The underlying cause is wrapped.
	ErrAdapterUnavailable = errors.New("membership store unavailable")

	// ErrMembershipNotFound means the membership does not exist in the
	// tenant it was addressed through.
	ErrMembershipNotFound = errors.New("membership not found")
)

func adapterError(err error) error {
	return fmt.Errorf("%w: %w", ErrAdapterUnavailable, err)
}
