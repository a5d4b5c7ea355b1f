// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/storage"
	"github.com/tabletalk/tenancy-service/internal/tracing"
	"github.com/tabletalk/tenancy-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_invitations.go -source=./interfaces.go

const invitationLifetime = 168 * time.Hour

func newTestService(s StorageInterface, d DirectoryInterface, n NotifierInterface) *Service {
	return NewService(
		s, d, n,
		invitationLifetime,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestServiceInviteUnknownIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agency := &types.Tenant{ID: "tenant-1", Kind: types.KindAgency, Name: "Acme"}

	mockStorage := NewMockStorageInterface(ctrl)
	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockNotifier := NewMockNotifierInterface(ctrl)

	mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(agency, nil)
	mockDirectory.EXPECT().GetIdentityIDByEmail(gomock.Any(), "new@acme.test").Return("", nil)
	mockStorage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *types.Membership) (*types.Membership, error) {
			if m.Status != types.MembershipInvited {
				t.Errorf("expected invited status, got %s", m.Status)
			}
			if m.InvitationToken == "" {
				t.Errorf("expected a token")
			}
			if m.InvitationExpiresAt == nil {
				t.Fatalf("expected an expiry")
			}
			lifetime := time.Until(*m.InvitationExpiresAt)
			if lifetime < invitationLifetime-time.Minute || lifetime > invitationLifetime {
				t.Errorf("expected a 7 day expiry window, got %s", lifetime)
			}
			if m.InvitedBy != "user-admin" {
				t.Errorf("expected inviter recorded, got %q", m.InvitedBy)
			}
			return m, nil
		})

	sent := make(chan struct{})
	mockNotifier.EXPECT().SendInvitation(gomock.Any(), "new@acme.test", "Acme", gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string, string, string, time.Time) error {
			close(sent)
			return nil
		})

	s := newTestService(mockStorage, mockDirectory, mockNotifier)
	membership, err := s.Invite(context.Background(), "tenant-1", "new@acme.test", "analyst", "user-admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if membership.UserID != "" {
		t.Errorf("pending invitation must not be bound to a user")
	}

	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("expected invitation email to be sent")
	}
}

func TestServiceInviteExistingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agency := &types.Tenant{ID: "tenant-1", Kind: types.KindAgency, Name: "Acme"}

	mockStorage := NewMockStorageInterface(ctrl)
	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockNotifier := NewMockNotifierInterface(ctrl)

	mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(agency, nil)
	mockDirectory.EXPECT().GetIdentityIDByEmail(gomock.Any(), "known@acme.test").Return("user-9", nil)
	mockStorage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *types.Membership) (*types.Membership, error) {
			return m, nil
		})

	s := newTestService(mockStorage, mockDirectory, mockNotifier)
	membership, err := s.Invite(context.Background(), "tenant-1", "known@acme.test", "manager", "user-admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if membership.Status != types.MembershipActive {
		t.Errorf("expected immediate activation for known identity, got %s", membership.Status)
	}
	if membership.UserID != "user-9" {
		t.Errorf("expected membership bound to identity, got %q", membership.UserID)
	}
	if membership.InvitationToken != "" {
		t.Errorf("direct add must not mint a token")
	}
}

func TestServiceInviteRejectsRoleVocabulary(t *testing.T) {
	testCases := []struct {
		name string
		kind types.TenantKind
		role string
	}{
		{name: "client role on agency", kind: types.KindAgency, role: "editor"},
		{name: "agency role on client", kind: types.KindClient, role: "analyst"},
		{name: "unknown role", kind: types.KindAgency, role: "root"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1", Kind: tc.kind}, nil)

			s := newTestService(mockStorage, NewMockDirectoryInterface(ctrl), NewMockNotifierInterface(ctrl))
			if _, err := s.Invite(context.Background(), "tenant-1", "x@acme.test", tc.role, "user-admin"); err == nil {
				t.Errorf("expected role %q to be rejected on %s tenant", tc.role, tc.kind)
			}
		})
	}
}

func TestServiceInviteDuplicateMemberIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &types.Membership{
		ID:       "membership-7",
		TenantID: "tenant-1",
		UserID:   "user-9",
		Role:     "manager",
		Status:   types.MembershipActive,
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockDirectory := NewMockDirectoryInterface(ctrl)

	mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(&types.Tenant{ID: "tenant-1", Kind: types.KindAgency}, nil)
	mockDirectory.EXPECT().GetIdentityIDByEmail(gomock.Any(), "known@acme.test").Return("user-9", nil)
	mockStorage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
	mockStorage.EXPECT().GetMembership(gomock.Any(), "user-9", "tenant-1").Return(existing, nil)

	s := newTestService(mockStorage, mockDirectory, NewMockNotifierInterface(ctrl))
	membership, err := s.Invite(context.Background(), "tenant-1", "known@acme.test", "manager", "user-admin")
	if err != nil {
		t.Fatalf("expected re-invite of an existing member to succeed, got %v", err)
	}
	if membership.ID != "membership-7" {
		t.Errorf("expected the existing membership back, got %+v", membership)
	}
}

func pendingMembership(token string, expiresAt time.Time) *types.Membership {
	return &types.Membership{
		ID:                  "membership-1",
		TenantID:            "tenant-1",
		Role:                "manager",
		Status:              types.MembershipInvited,
		InvitationToken:     token,
		InvitationExpiresAt: &expiresAt,
		Tenant:              &types.Tenant{ID: "tenant-1", Name: "Acme"},
	}
}

func TestServiceValidate(t *testing.T) {
	instant := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		token       string
		clock       func() time.Time
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:  "valid pending invitation",
			token: "token-1",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetMembershipByToken(gomock.Any(), "token-1").Return(pendingMembership("token-1", time.Now().Add(time.Hour)), nil)
			},
		},
		{
			name:        "empty token",
			token:       "",
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: ErrInvitationInvalidOrExpired,
		},
		{
			name:  "unknown token",
			token: "token-x",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetMembershipByToken(gomock.Any(), "token-x").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvitationInvalidOrExpired,
		},
		{
			name:  "expired token",
			token: "token-1",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetMembershipByToken(gomock.Any(), "token-1").Return(pendingMembership("token-1", time.Now().Add(-time.Second)), nil)
			},
			expectedErr: ErrInvitationInvalidOrExpired,
		},
		{
			name:  "token at the exact expiry instant",
			token: "token-1",
			clock: func() time.Time { return instant },
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetMembershipByToken(gomock.Any(), "token-1").Return(pendingMembership("token-1", instant), nil)
			},
			expectedErr: ErrInvitationInvalidOrExpired,
		},
		{
			name:  "token one nanosecond before expiry",
			token: "token-1",
			clock: func() time.Time { return instant.Add(-time.Nanosecond) },
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetMembershipByToken(gomock.Any(), "token-1").Return(pendingMembership("token-1", instant), nil)
			},
		},
		{
			name:  "consumed token",
			token: "token-1",
			setupMocks: func(s *MockStorageInterface) {
				m := pendingMembership("token-1", time.Now().Add(time.Hour))
				m.Status = types.MembershipActive
				s.EXPECT().GetMembershipByToken(gomock.Any(), "token-1").Return(m, nil)
			},
			expectedErr: ErrInvitationInvalidOrExpired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := newTestService(mockStorage, NewMockDirectoryInterface(ctrl), NewMockNotifierInterface(ctrl))
			if tc.clock != nil {
				s.now = tc.clock
			}
			invitation, err := s.Validate(context.Background(), tc.token)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if invitation.TenantName != "Acme" || invitation.Role != "manager" {
				t.Errorf("unexpected invitation payload: %+v", invitation)
			}
		})
	}
}

func TestServiceActivate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().GetMembershipByToken(gomock.Any(), "token-1").Return(pendingMembership("token-1", time.Now().Add(time.Hour)), nil)
		mockStorage.EXPECT().ActivateMembership(gomock.Any(), "token-1", "user-5", gomock.Any()).Return(nil)

		s := newTestService(mockStorage, NewMockDirectoryInterface(ctrl), NewMockNotifierInterface(ctrl))
		membership, err := s.Activate(context.Background(), "token-1", "user-5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if membership.Status != types.MembershipActive || membership.UserID != "user-5" {
			t.Errorf("expected active membership for user-5, got %+v", membership)
		}
		if membership.JoinedAt == nil {
			t.Errorf("expected joined_at stamped")
		}
	})

	t.Run("token consumed concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockStorage.EXPECT().GetMembershipByToken(gomock.Any(), "token-1").Return(pendingMembership("token-1", time.Now().Add(time.Hour)), nil)
		mockStorage.EXPECT().ActivateMembership(gomock.Any(), "token-1", "user-5", gomock.Any()).Return(storage.ErrNotFound)

		s := newTestService(mockStorage, NewMockDirectoryInterface(ctrl), NewMockNotifierInterface(ctrl))
		if _, err := s.Activate(context.Background(), "token-1", "user-5"); !errors.Is(err, ErrInvitationInvalidOrExpired) {
			t.Errorf("expected ErrInvitationInvalidOrExpired, got %v", err)
		}
	})
}
