// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/tracing"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage     StorageInterface
	provisioner ProvisionerInterface
	tracer      tracing.TracingInterface
	monitor     monitoring.MonitorInterface
	logger      logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	provisioner ProvisionerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		provisioner: provisioner,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// HandleRegistration provisions a starter agency for a freshly registered
// identity. Identities that already hold a membership, usually because
// they signed up through an invitation, are left alone.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identityID == "" || email == "" {
		return fmt.Errorf("identity ID or email is empty")
	}

	memberships, err := s.storage.ListMembershipsForUser(ctx, identityID)
	if err != nil {
		return fmt.Errorf("failed to check existing memberships: %w", err)
	}
	if len(memberships) > 0 {
		s.logger.Debugf("identity %s already has memberships, skipping provisioning", identityID)
		return nil
	}

	agencyName := fmt.Sprintf("%s's Agency", email)
	agency, err := s.provisioner.CreateAgency(ctx, agencyName, identityID)
	if err != nil {
		return fmt.Errorf("failed to provision agency: %w", err)
	}

	s.logger.Infof("provisioned agency %s for identity %s", agency.ID, identityID)
	return nil
}
