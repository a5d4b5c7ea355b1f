// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"time"

	"github.com/tabletalk/tenancy-service/internal/types"
)

// StorageInterface is the slice of the membership store the invitation
// lifecycle depends on.
type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error)
	GetMembershipByToken(ctx context.Context, token string) (*types.Membership, error)
	ActivateMembership(ctx context.Context, token, userID string, joinedAt time.Time) error
}

// DirectoryInterface resolves email addresses in the identity system.
type DirectoryInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
}

// NotifierInterface delivers invitation emails. Delivery is best effort;
// a failure never rolls back the invitation row.
type NotifierInterface interface {
	SendInvitation(ctx context.Context, email, tenantName, token string, expiresAt time.Time) error
}

type ServiceInterface interface {
	Invite(ctx context.Context, tenantID, email, role, invitedBy string) (*types.Membership, error)
	Validate(ctx context.Context, token string) (*Invitation, error)
	Activate(ctx context.Context, token, userID string) (*types.Membership, error)
}
