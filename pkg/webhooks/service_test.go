// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/tracing"
	"github.com/tabletalk/tenancy-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go

func newTestService(storage StorageInterface, provisioner ProvisionerInterface) *Service {
	return NewService(
		storage,
		provisioner,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestHandleRegistration(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name       string
		identityID string
		email      string
		setupMocks func(*MockStorageInterface, *MockProvisionerInterface)
		wantErr    bool
	}{
		{
			name:       "fresh identity gets a starter agency",
			identityID: "user-1",
			email:      "new@tabletalk.test",
			setupMocks: func(s *MockStorageInterface, p *MockProvisionerInterface) {
				s.EXPECT().ListMembershipsForUser(gomock.Any(), "user-1").Return(nil, nil)
				p.EXPECT().CreateAgency(gomock.Any(), "new@tabletalk.test's Agency", "user-1").
					Return(&types.Tenant{ID: "tenant-1"}, nil)
			},
		},
		{
			name:       "invited identity is left alone",
			identityID: "user-2",
			email:      "invited@tabletalk.test",
			setupMocks: func(s *MockStorageInterface, p *MockProvisionerInterface) {
				s.EXPECT().ListMembershipsForUser(gomock.Any(), "user-2").
					Return([]*types.Membership{{ID: "membership-1", Status: types.MembershipInvited}}, nil)
			},
		},
		{
			name:       "missing identity id",
			identityID: "",
			email:      "x@tabletalk.test",
			setupMocks: func(*MockStorageInterface, *MockProvisionerInterface) {},
			wantErr:    true,
		},
		{
			name:       "membership lookup failure",
			identityID: "user-3",
			email:      "x@tabletalk.test",
			setupMocks: func(s *MockStorageInterface, p *MockProvisionerInterface) {
				s.EXPECT().ListMembershipsForUser(gomock.Any(), "user-3").Return(nil, dbErr)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockProvisioner := NewMockProvisionerInterface(ctrl)
			tc.setupMocks(mockStorage, mockProvisioner)

			s := newTestService(mockStorage, mockProvisioner)
			err := s.HandleRegistration(context.Background(), tc.identityID, tc.email)

			if tc.wantErr && err == nil {
				t.Errorf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
