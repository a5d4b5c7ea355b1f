// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"github.com/tabletalk/tenancy-service/internal/types"
	"github.com/tabletalk/tenancy-service/pkg/permissions"
)

// State is the lifecycle phase of a session's tenant context.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateNoAccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateNoAccess:
		return "no-access"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Context is the resolved active context: the current tenant, the caller's
// membership in it, and the permission set derived from role plus
// overrides. Instances handed to consumers are snapshots; only the manager
// mutates the live context.
type Context struct {
	Tenant     *types.Tenant
	Membership *types.Membership

	// Permissions carries the agency vocabulary; ClientPermissions is set
	// instead when the active tenant is a client. The two never mix.
	Permissions       permissions.Set
	ClientPermissions *permissions.ClientSet
}

// newContext resolves the permission record for a membership. The tenant
// kind picks the vocabulary; a client-tenant role never reaches the agency
// resolver.
func newContext(tenant *types.Tenant, m *types.Membership) *Context {
	c := &Context{Tenant: tenant, Membership: m}

	if tenant != nil && tenant.Kind == types.KindClient {
		s := permissions.ResolveClient(permissions.ClientRole(m.Role))
		c.ClientPermissions = &s
		return c
	}

	c.Permissions = permissions.Resolve(permissions.Role(m.Role), overridesFor(m))
	return c
}

func (c *Context) clone() *Context {
	if c == nil {
		return nil
	}

	out := &Context{Permissions: c.Permissions}
	if c.Tenant != nil {
		t := *c.Tenant
		out.Tenant = &t
	}
	if c.Membership != nil {
		m := *c.Membership
		out.Membership = &m
	}
	if c.ClientPermissions != nil {
		s := *c.ClientPermissions
		out.ClientPermissions = &s
	}
	return out
}

func overridesFor(m *types.Membership) permissions.Overrides {
	if len(m.Overrides) == 0 {
		return nil
	}

	o := make(permissions.Overrides, len(m.Overrides))
	for k, v := range m.Overrides {
		o[permissions.Flag(k)] = v
	}
	return o
}

