// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"errors"
	"sync"

	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/storage"
	"github.com/tabletalk/tenancy-service/internal/tracing"
	"github.com/tabletalk/tenancy-service/internal/types"
	"github.com/tabletalk/tenancy-service/pkg/permissions"
)

var _ ManagerInterface = (*Manager)(nil)

// Manager owns the active tenant context for one user session. All
// mutation goes through it; consumers read through the accessors and only
// ever see complete snapshots.
//
// Mutating operations are serialized on the request they were issued for:
// each one takes a fresh sequence number and a resolution is applied only
// if its number is still the newest, so a slow load can never clobber the
// result of a later one.
type Manager struct {
	userID string

	storage        StorageInterface
	privileged     PrivilegedCheckerInterface
	homeTenantName string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface

	mu          sync.Mutex
	seq         uint64
	state       State
	current     *Context
	memberships []*types.Membership
	lastErr     error
}

func NewManager(
	userID string,
	storage StorageInterface,
	privileged PrivilegedCheckerInterface,
	homeTenantName string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Manager {
	return &Manager{
		userID:         userID,
		storage:        storage,
		privileged:     privileged,
		homeTenantName: homeTenantName,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
		state:          StateUninitialized,
	}
}

type loadResult struct {
	state       State
	current     *Context
	memberships []*types.Membership
}

// Initialize loads the user's memberships and selects the active tenant:
// the last selected one if still accessible, otherwise the most recently
// joined. The designated superuser short-circuits onto the home tenant
// with owner permissions before ordinary memberships are even considered.
func (m *Manager) Initialize(ctx context.Context) error {
	return m.reload(ctx, "")
}

// Refresh re-runs Initialize semantics, preferring the currently selected
// tenant over the stored default.
func (m *Manager) Refresh(ctx context.Context) error {
	return m.reload(ctx, m.ActiveTenantID())
}

func (m *Manager) reload(ctx context.Context, preferredHint string) error {
	ctx, span := m.tracer.Start(ctx, "tenancy.Manager.Initialize")
	defer span.End()

	m.mu.Lock()
	m.seq++
	seq := m.seq
	if m.state == StateUninitialized {
		m.state = StateLoading
	}
	m.mu.Unlock()

	res, err := m.load(ctx, preferredHint)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seq != seq {
		// A newer request superseded this load; drop the result.
		return nil
	}

	if err != nil {
		m.state = StateError
		m.lastErr = err
		m.logger.Errorf("failed to initialize tenant context for user %s: %v", m.userID, err)
		return err
	}

	m.state = res.state
	m.current = res.current
	m.memberships = res.memberships
	m.lastErr = nil

	if res.state == StateNoAccess {
		return ErrNoAccess
	}
	return nil
}

func (m *Manager) load(ctx context.Context, preferredHint string) (*loadResult, error) {
	if m.privileged.IsPrivileged(ctx, m.userID) {
		return m.loadPrivileged(ctx)
	}

	memberships, err := m.storage.ListActiveMembershipsForUser(ctx, m.userID)
	if err != nil {
		return nil, adapterError(err)
	}

	if len(memberships) == 0 {
		return &loadResult{state: StateNoAccess}, nil
	}

	preferred := preferredHint
	if preferred == "" {
		preferred, err = m.storage.GetLastSelectedTenant(ctx, m.userID)
		if err != nil {
			// The stored default is a convenience; fall back to recency.
			m.logger.Warnf("failed to read last selected tenant for user %s: %v", m.userID, err)
			preferred = ""
		}
	}

	selected := memberships[0]
	for _, membership := range memberships {
		if membership.TenantID == preferred {
			selected = membership
			break
		}
	}

	if selected.TenantID != preferred {
		if err := m.storage.SetLastSelectedTenant(ctx, m.userID, selected.TenantID); err != nil {
			m.logger.Warnf("failed to persist last selected tenant for user %s: %v", m.userID, err)
		}
	}

	return &loadResult{
		state:       StateReady,
		current:     newContext(selected.Tenant, selected),
		memberships: memberships,
	}, nil
}

func (m *Manager) loadPrivileged(ctx context.Context) (*loadResult, error) {
	tenant, membership, err := m.storage.EnsureHomeTenant(ctx, m.homeTenantName, m.userID)
	if err != nil {
		return nil, adapterError(err)
	}

	if err := m.storage.SetLastSelectedTenant(ctx, m.userID, tenant.ID); err != nil {
		m.logger.Warnf("failed to persist last selected tenant for superuser: %v", err)
	}

	return &loadResult{
		state: StateReady,
		current: &Context{
			Tenant:      tenant,
			Membership:  membership,
			Permissions: permissions.Resolve(permissions.RoleOwner, nil),
		},
		memberships: []*types.Membership{membership},
	}, nil
}

// SwitchTenant atomically replaces the active context with the one for
// tenantID. The tenant must be among the known memberships; otherwise the
// call fails with ErrTenantNotAccessible and the prior context is kept.
// Any adapter failure likewise leaves the prior context intact.
func (m *Manager) SwitchTenant(ctx context.Context, tenantID string) error {
	ctx, span := m.tracer.Start(ctx, "tenancy.Manager.SwitchTenant")
	defer span.End()

	m.mu.Lock()
	if m.state != StateReady && m.state != StateNoAccess {
		m.mu.Unlock()
		return ErrNotInitialized
	}

	var known *types.Membership
	for _, membership := range m.memberships {
		if membership.TenantID == tenantID {
			known = membership
			break
		}
	}
	if known == nil {
		m.mu.Unlock()
		return ErrTenantNotAccessible
	}

	m.seq++
	seq := m.seq
	tenant := known.Tenant
	m.mu.Unlock()

	// Re-fetch the membership so a role or override change made since the
	// last load takes effect on switch.
	fresh, err := m.storage.GetMembership(ctx, m.userID, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTenantNotAccessible
		}
		return adapterError(err)
	}
	if fresh.Status != types.MembershipActive {
		return ErrTenantNotAccessible
	}
	fresh.Tenant = tenant

	m.mu.Lock()
	if m.seq != seq {
		// Superseded by a later switch or reload; discard this resolution.
		m.mu.Unlock()
		return nil
	}
	m.current = newContext(tenant, fresh)
	m.state = StateReady
	m.lastErr = nil
	m.mu.Unlock()

	if err := m.storage.SetLastSelectedTenant(ctx, m.userID, tenantID); err != nil {
		m.logger.Warnf("failed to persist last selected tenant for user %s: %v", m.userID, err)
	}

	return nil
}

// ActiveContext returns a snapshot of the current context, or nil when the
// session is not in the ready state.
func (m *Manager) ActiveContext() *Context {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateReady {
		return nil
	}
	return m.current.clone()
}

// HasPermission reports whether the active context grants flag. It returns
// false in every non-ready state.
func (m *Manager) HasPermission(flag permissions.Flag) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateReady || m.current == nil {
		return false
	}
	return m.current.Permissions.Has(flag)
}

// HasRole reports whether the active membership holds any of the given
// roles. It returns false in every non-ready state.
func (m *Manager) HasRole(roles ...permissions.Role) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateReady || m.current == nil || m.current.Membership == nil {
		return false
	}

	for _, role := range roles {
		if permissions.Role(m.current.Membership.Role) == role {
			return true
		}
	}
	return false
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Err returns the cause recorded when the manager entered the error state.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

func (m *Manager) UserID() string {
	return m.userID
}

// ActiveTenantID returns the current tenant id, or empty when not ready.
func (m *Manager) ActiveTenantID() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateReady || m.current == nil || m.current.Tenant == nil {
		return ""
	}
	return m.current.Tenant.ID
}

// Memberships returns the memberships known to the session, most recently
// joined first.
func (m *Manager) Memberships() []*types.Membership {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*types.Membership, len(m.memberships))
	copy(out, m.memberships)
	return out
}
