// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"

	"github.com/tabletalk/tenancy-service/internal/types"
	"github.com/tabletalk/tenancy-service/pkg/permissions"
)

// StorageInterface is the slice of the membership store the context
// manager depends on.
type StorageInterface interface {
	ListActiveMembershipsForUser(ctx context.Context, userID string) ([]*types.Membership, error)
	GetMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error)
	GetLastSelectedTenant(ctx context.Context, userID string) (string, error)
	SetLastSelectedTenant(ctx context.Context, userID, tenantID string) error
	EnsureHomeTenant(ctx context.Context, name, ownerID string) (*types.Tenant, *types.Membership, error)
}

// PrivilegedCheckerInterface answers whether a user is the designated
// superuser identity. The check is deliberately a single injectable
// predicate so the bypass never leaks into call sites.
type PrivilegedCheckerInterface interface {
	IsPrivileged(ctx context.Context, userID string) bool
}

// ManagerInterface is the read/mutate surface a session manager exposes to
// the rest of the application.
type ManagerInterface interface {
	Initialize(ctx context.Context) error
	Refresh(ctx context.Context) error
	SwitchTenant(ctx context.Context, tenantID string) error
	ActiveContext() *Context
	HasPermission(flag permissions.Flag) bool
	HasRole(roles ...permissions.Role) bool
	State() State
	Err() error
	UserID() string
	ActiveTenantID() string
	Memberships() []*types.Membership
}

// ServiceStorageInterface is the slice of the membership store used by the
// tenant administration service.
type ServiceStorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListClientsByAgencyID(ctx context.Context, agencyID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error
	SetTenantStatus(ctx context.Context, id string, enabled bool) error
	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	UpdateMembershipRole(ctx context.Context, tenantID, userID, role string) error
	UpdateMembershipStatus(ctx context.Context, membershipID string, status types.MembershipStatus) error
	ListLocationsByTenantID(ctx context.Context, tenantID string) ([]*types.Location, error)
	CreateLocation(ctx context.Context, l *types.Location) (*types.Location, error)
	SetPrimaryLocation(ctx context.Context, tenantID, locationID string) error
}

// DirectoryInterface resolves identities in the external identity system.
type DirectoryInterface interface {
	GetIdentityEmail(ctx context.Context, userID string) (string, error)
}

type ServiceInterface interface {
	CreateAgency(ctx context.Context, name, ownerID string) (*types.Tenant, error)
	CreateClient(ctx context.Context, agencyID, name, ownerID string) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListClients(ctx context.Context, agencyID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
	ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error)
	UpdateTenantUserRole(ctx context.Context, tenantID, userID, role string) (*types.TenantUser, error)
	RevokeMembership(ctx context.Context, tenantID, membershipID string) error
	ListLocations(ctx context.Context, tenantID string) ([]*types.Location, error)
	AddLocation(ctx context.Context, tenantID, name string, primary bool) (*types.Location, error)
	SetPrimaryLocation(ctx context.Context, tenantID, locationID string) error
}
