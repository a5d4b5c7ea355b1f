// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/storage"
	"github.com/tabletalk/tenancy-service/internal/tracing"
	"github.com/tabletalk/tenancy-service/internal/types"
	"github.com/tabletalk/tenancy-service/pkg/permissions"
)

var _ ServiceInterface = (*Service)(nil)

// Invitation is the public view of a pending invitation, safe to show to
// an unauthenticated token holder.
type Invitation struct {
	TenantID   string    `json:"tenant_id"`
	TenantName string    `json:"tenant_name"`
	Role       string    `json:"role"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type Service struct {
	storage   StorageInterface
	directory DirectoryInterface
	notifier  NotifierInterface
	lifetime  time.Duration

	// now is swapped out in tests to pin expiry arithmetic.
	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	directory DirectoryInterface,
	notifier NotifierInterface,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)
	s.storage = storage
	s.directory = directory
	s.notifier = notifier
	s.lifetime = lifetime
	s.now = time.Now
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// Invite creates a membership for email on the tenant. When the email
// already maps to a known identity the membership activates immediately;
// otherwise a tokenized invitation is stored and mailed, valid for the
// configured lifetime.
func (s *Service) Invite(ctx context.Context, tenantID, email, role, invitedBy string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Invite")
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

	identityID, err := s.directory.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check identity: %w", err)
	}

	membership := &types.Membership{
		TenantID:  tenantID,
		Role:      role,
		InvitedBy: invitedBy,
	}

	if identityID != "" {
		// Known identity, no token round trip needed.
		now := s.now().UTC()
		membership.UserID = identityID
		membership.Status = types.MembershipActive
		membership.JoinedAt = &now
	} else {
		expiresAt := s.now().UTC().Add(s.lifetime)
		membership.Status = types.MembershipInvited
		membership.InvitationToken = uuid.NewString()
		membership.InvitationExpiresAt = &expiresAt
	}

	created, err := s.storage.CreateMembership(ctx, membership)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) && identityID != "" {
			// Already a member, inviting again is a no-op.
			existing, getErr := s.storage.GetMembership(ctx, identityID, tenantID)
			if getErr != nil {
				return nil, fmt.Errorf("failed to load existing membership: %w", getErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	s.logger.Security().InvitationIssued(tenantID, role)

	if created.Status == types.MembershipInvited {
		// Delivery must not hold up or fail the API call.
		go func() {
			sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := s.notifier.SendInvitation(sendCtx, email, tenant.Name, created.InvitationToken, *created.InvitationExpiresAt); err != nil {
				s.logger.Warnf("failed to send invitation email for tenant %s: %v", tenantID, err)
			}
		}()
	}

	return created, nil
}

// Validate checks a token and returns the pending invitation it points
// to. An invitation is invalid once its expiry instant is reached.
func (s *Service) Validate(ctx context.Context, token string) (*Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Validate")
	defer span.End()

	membership, err := s.pending(ctx, token)
	if err != nil {
		return nil, err
	}

	inv := &Invitation{
		TenantID:  membership.TenantID,
		Role:      membership.Role,
		ExpiresAt: *membership.InvitationExpiresAt,
	}

	if membership.Tenant != nil {
		inv.TenantName = membership.Tenant.Name
	} else if tenant, err := s.storage.GetTenantByID(ctx, membership.TenantID); err == nil {
		inv.TenantName = tenant.Name
	}

	return inv, nil
}

// Activate consumes a token, binding the membership to userID and marking
// it active. Reuse of a consumed token fails like any other bad token.
func (s *Service) Activate(ctx context.Context, token, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Activate")
	defer span.End()

	membership, err := s.pending(ctx, token)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if err := s.storage.ActivateMembership(ctx, token, userID, now); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Consumed between the read and the conditional update.
			s.logger.Security().InvitationRejected("token consumed concurrently")
			return nil, ErrInvitationInvalidOrExpired
		}
		return nil, fmt.Errorf("failed to activate membership: %w", err)
	}

	membership.UserID = userID
	membership.Status = types.MembershipActive
	membership.JoinedAt = &now

	return membership, nil
}

func (s *Service) pending(ctx context.Context, token string) (*types.Membership, error) {
	if token == "" {
		return nil, ErrInvitationInvalidOrExpired
	}

	membership, err := s.storage.GetMembershipByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().InvitationRejected("unknown token")
			return nil, ErrInvitationInvalidOrExpired
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}

	if membership.Status != types.MembershipInvited {
		s.logger.Security().InvitationRejected("token already consumed")
		return nil, ErrInvitationInvalidOrExpired
	}

	if membership.InvitationExpiresAt == nil || !s.now().UTC().Before(*membership.InvitationExpiresAt) {
		s.logger.Security().InvitationRejected("token expired")
		return nil, ErrInvitationInvalidOrExpired
	}

	return membership, nil
}
