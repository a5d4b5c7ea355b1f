// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"sync"

	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/tracing"
)

// Registry hands out one Manager per user so concurrent requests for the
// same user share a single tenant context.
type Registry struct {
	storage        StorageInterface
	privileged     PrivilegedCheckerInterface
	homeTenantName string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface

	mu       sync.Mutex
	managers map[string]*Manager
}

func NewRegistry(
	storage StorageInterface,
	privileged PrivilegedCheckerInterface,
	homeTenantName string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Registry {
	r := new(Registry)
	r.storage = storage
	r.privileged = privileged
	r.homeTenantName = homeTenantName
	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger
	r.managers = make(map[string]*Manager)

	return r
}

// Manager returns the manager for userID, creating it on first use. The
// returned manager may still be uninitialized; callers initialize lazily.
func (r *Registry) Manager(userID string) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.managers[userID]; ok {
		return m
	}

	m := NewManager(userID, r.storage, r.privileged, r.homeTenantName, r.tracer, r.monitor, r.logger)
	r.managers[userID] = m
	return m
}

// Refresh re-syncs the session for userID against the membership store.
// No-op when the user has no session yet; their first request loads fresh.
func (r *Registry) Refresh(ctx context.Context, userID string) error {
	r.mu.Lock()
	m, ok := r.managers[userID]
	r.mu.Unlock()

	if !ok {
		return nil
	}
	return m.Refresh(ctx)
}

// Release drops the cached manager for userID, typically on logout.
func (r *Registry) Release(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.managers, userID)
}
