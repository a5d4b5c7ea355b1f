// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/tabletalk/tenancy-service/internal/types"
)

// StorageInterface is the slice of the membership store the registration
// hook reads.
type StorageInterface interface {
	ListMembershipsForUser(ctx context.Context, userID string) ([]*types.Membership, error)
}

// ProvisionerInterface creates the initial agency for a fresh identity.
type ProvisionerInterface interface {
	CreateAgency(ctx context.Context, name, ownerID string) (*types.Tenant, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email string) error
}
