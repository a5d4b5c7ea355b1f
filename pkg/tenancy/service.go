// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"fmt"
	"time"

	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/tracing"
	"github.com/tabletalk/tenancy-service/internal/types"
	"github.com/tabletalk/tenancy-service/pkg/permissions"
)

var _ ServiceInterface = (*Service)(nil)

// Service implements tenant administration on top of the membership store.
// Permission checks happen at the HTTP layer against the caller's active
// context; the service assumes an authorized caller.
type Service struct {
	storage   ServiceStorageInterface
	directory DirectoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage ServiceStorageInterface,
	directory DirectoryInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)
	s.storage = storage
	s.directory = directory
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// CreateAgency creates a top level agency tenant and makes ownerID its
// active owner.
func (s *Service) CreateAgency(ctx context.Context, name, ownerID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.CreateAgency")
	defer span.End()

	t := &types.Tenant{
		Kind:    types.KindAgency,
		Name:    name,
		OwnerID: ownerID,
		Enabled: true,
	}

	created, err := s.storage.CreateTenant(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to create agency: %w", err)
	}

	if err := s.createOwnerMembership(ctx, created.ID, ownerID); err != nil {
		return nil, err
	}

	return created, nil
}

// CreateClient creates a client tenant under agencyID. The parent must be
// an enabled agency.
func (s *Service) CreateClient(ctx context.Context, agencyID, name, ownerID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.CreateClient")
	defer span.End()

	parent, err := s.storage.GetTenantByID(ctx, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load parent agency: %w", err)
	}
	if parent.Kind != types.KindAgency {
		return nil, fmt.Errorf("tenant %s is not an agency", agencyID)
	}
	if !parent.Enabled {
		return nil, fmt.Errorf("agency %s is disabled", agencyID)
	}

	t := &types.Tenant{
		Kind:     types.KindClient,
		ParentID: &parent.ID,
		Name:     name,
		OwnerID:  ownerID,
		Enabled:  true,
	}

	created, err := s.storage.CreateTenant(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := s.createOwnerMembership(ctx, created.ID, ownerID); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) createOwnerMembership(ctx context.Context, tenantID, ownerID string) error {
	now := time.Now().UTC()
	_, err := s.storage.CreateMembership(ctx, &types.Membership{
		TenantID: tenantID,
		UserID:   ownerID,
		Role:     string(permissions.RoleOwner),
		Status:   types.MembershipActive,
		JoinedAt: &now,
	})
	if err != nil {
		return fmt.Errorf("failed to create owner membership: %w", err)
	}
	return nil
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.GetTenant")
	defer span.End()

	return s.storage.GetTenantByID(ctx, id)
}

func (s *Service) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenants(ctx)
}

func (s *Service) ListClients(ctx context.Context, agencyID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.ListClients")
	defer span.End()

	return s.storage.ListClientsByAgencyID(ctx, agencyID)
}

func (s *Service) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.UpdateTenant")
	defer span.End()

	if err := s.storage.UpdateTenant(ctx, tenant, paths); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	updated, err := s.storage.GetTenantByID(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated tenant: %w", err)
	}

	return updated, nil
}

func (s *Service) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.DeleteTenant")
	defer span.End()

	tenant, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load tenant: %w", err)
	}

	if tenant.Kind == types.KindAgency {
		clients, err := s.storage.ListClientsByAgencyID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check agency clients: %w", err)
		}
		if len(clients) > 0 {
			return fmt.Errorf("agency %s still has %d clients", id, len(clients))
		}
	}

	if err := s.storage.DeleteTenant(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	return nil
}

// ListTenantUsers lists tenant members enriched with the email recorded in
// the identity directory. A directory miss downgrades to "unknown" rather
// than failing the listing.
func (s *Service) ListTenantUsers(ctx context.Context, tenantID string) ([]*types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.ListTenantUsers")
	defer span.End()

	members, err := s.storage.ListMembersByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	var users []*types.TenantUser
	for _, m := range members {
		email, err := s.directory.GetIdentityEmail(ctx, m.UserID)
		if err != nil {
			s.logger.Warnf("failed to resolve email for user %s: %v", m.UserID, err)
			email = "unknown"
		}

		users = append(users, &types.TenantUser{
			UserID: m.UserID,
			Email:  email,
			Role:   m.Role,
			Status: m.Status,
		})
	}

	return users, nil
}

func (s *Service) UpdateTenantUserRole(ctx context.Context, tenantID, userID, role string) (*types.TenantUser, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.UpdateTenantUserRole")
	defer span.End()

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	switch tenant.Kind {
	case types.KindAgency:
		if !permissions.Role(role).Valid() {
			return nil, fmt.Errorf("invalid agency role: %s", role)
		}
	case types.KindClient:
		if !permissions.ClientRole(role).Valid() {
			return nil, fmt.Errorf("invalid client role: %s", role)
		}
	}

	if err := s.storage.UpdateMembershipRole(ctx, tenantID, userID, role); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	email, err := s.directory.GetIdentityEmail(ctx, userID)
	if err != nil {
		email = "unknown"
	}

	return &types.TenantUser{
		UserID: userID,
		Email:  email,
		Role:   role,
		Status: types.MembershipActive,
	}, nil
}

// RevokeMembership marks the membership revoked after confirming it belongs
// to tenantID. The row is kept so the tenant's history stays intact.
func (s *Service) RevokeMembership(ctx context.Context, tenantID, membershipID string) error {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.RevokeMembership")
	defer span.End()

	members, err := s.storage.ListMembersByTenantID(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}

	var found bool
	for _, m := range members {
		if m.ID == membershipID {
			found = true
			break
		}
	}
	if !found {
		return ErrMembershipNotFound
	}

	if err := s.storage.UpdateMembershipStatus(ctx, membershipID, types.MembershipRevoked); err != nil {
		return fmt.Errorf("failed to revoke membership: %w", err)
	}

	return nil
}

func (s *Service) ListLocations(ctx context.Context, tenantID string) ([]*types.Location, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.ListLocations")
	defer span.End()

	return s.storage.ListLocationsByTenantID(ctx, tenantID)
}

// AddLocation adds a location to a client tenant. The first location of a
// tenant always becomes primary regardless of the flag.
func (s *Service) AddLocation(ctx context.Context, tenantID, name string, primary bool) (*types.Location, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.AddLocation")
	defer span.End()

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	if tenant.Kind != types.KindClient {
		return nil, fmt.Errorf("locations belong to client tenants, got %s", tenant.Kind)
	}

	existing, err := s.storage.ListLocationsByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	if len(existing) == 0 {
		primary = true
	}

	created, err := s.storage.CreateLocation(ctx, &types.Location{
		TenantID: tenantID,
		Name:     name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	if primary {
		if err := s.storage.SetPrimaryLocation(ctx, tenantID, created.ID); err != nil {
			return nil, fmt.Errorf("failed to set primary location: %w", err)
		}
		created.Primary = true
	}

	return created, nil
}

func (s *Service) SetPrimaryLocation(ctx context.Context, tenantID, locationID string) error {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.SetPrimaryLocation")
	defer span.End()

	if err := s.storage.SetPrimaryLocation(ctx, tenantID, locationID); err != nil {
		return fmt.Errorf("failed to set primary location: %w", err)
	}

	return nil
}
