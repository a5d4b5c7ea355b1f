// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/tabletalk/tenancy-service/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
	ListClientsByAgencyID(ctx context.Context, agencyID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	DeleteTenant(ctx context.Context, id string) error
	SetTenantStatus(ctx context.Context, id string, enabled bool) error
	EnsureHomeTenant(ctx context.Context, name, ownerID string) (*types.Tenant, *types.Membership, error)

	ListMembershipsForUser(ctx context.Context, userID string) ([]*types.Membership, error)
	ListActiveMembershipsForUser(ctx context.Context, userID string) ([]*types.Membership, error)
	GetMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error)
	ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetMembershipByToken(ctx context.Context, token string) (*types.Membership, error)
	ActivateMembership(ctx context.Context, token, userID string, joinedAt time.Time) error
	UpdateMembershipStatus(ctx context.Context, membershipID string, status types.MembershipStatus) error
	UpdateMembershipRole(ctx context.Context, tenantID, userID, role string) error

	GetLastSelectedTenant(ctx context.Context, userID string) (string, error)
	SetLastSelectedTenant(ctx context.Context, userID, tenantID string) error

	ListLocationsByTenantID(ctx context.Context, tenantID string) ([]*types.Location, error)
	CreateLocation(ctx context.Context, l *types.Location) (*types.Location, error)
	SetPrimaryLocation(ctx context.Context, tenantID, locationID string) error

	AppendUsageEvent(ctx context.Context, e *types.UsageEvent) error
}
