// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

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
	"github.com/tabletalk/tenancy-service/pkg/permissions"
)

//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_tenancy.go -source=./interfaces.go

const (
	testUserID = "user-123"
	homeName   = "TableTalk Agency"
)

func newTestManager(storage StorageInterface, privileged PrivilegedCheckerInterface) *Manager {
	return NewManager(
		testUserID,
		storage,
		privileged,
		homeName,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func membershipFor(tenantID, role string, joined time.Time) *types.Membership {
	return &types.Membership{
		ID:       "membership-" + tenantID,
		TenantID: tenantID,
		UserID:   testUserID,
		Role:     role,
		Status:   types.MembershipActive,
		JoinedAt: &joined,
		Tenant: &types.Tenant{
			ID:   tenantID,
			Kind: types.KindAgency,
			Name: "Agency " + tenantID,
		},
	}
}

func TestManagerInitialize(t *testing.T) {
	now := time.Now()
	recent := membershipFor("tenant-recent", "admin", now)
	older := membershipFor("tenant-older", "analyst", now.Add(-time.Hour))
	dbErr := errors.New("connection refused")

	testCases := []struct {
		name           string
		setupMocks     func(*MockStorageInterface)
		expectedErr    error
		expectedState  State
		expectedTenant string
	}{
		{
			name: "selects most recently joined when no stored default",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListActiveMembershipsForUser(gomock.Any(), testUserID).Return([]*types.Membership{recent, older}, nil)
				s.EXPECT().GetLastSelectedTenant(gomock.Any(), testUserID).Return("", nil)
				s.EXPECT().SetLastSelectedTenant(gomock.Any(), testUserID, "tenant-recent").Return(nil)
			},
			expectedState:  StateReady,
			expectedTenant: "tenant-recent",
		},
		{
			name: "honors stored default when still accessible",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListActiveMembershipsForUser(gomock.Any(), testUserID).Return([]*types.Membership{recent, older}, nil)
				s.EXPECT().GetLastSelectedTenant(gomock.Any(), testUserID).Return("tenant-older", nil)
			},
			expectedState:  StateReady,
			expectedTenant: "tenant-older",
		},
		{
			name: "falls back to recency when stored default is inaccessible",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListActiveMembershipsForUser(gomock.Any(), testUserID).Return([]*types.Membership{recent, older}, nil)
				s.EXPECT().GetLastSelectedTenant(gomock.Any(), testUserID).Return("tenant-gone", nil)
				s.EXPECT().SetLastSelectedTenant(gomock.Any(), testUserID, "tenant-recent").Return(nil)
			},
			expectedState:  StateReady,
			expectedTenant: "tenant-recent",
		},
		{
			name: "profile read failure is not fatal",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListActiveMembershipsForUser(gomock.Any(), testUserID).Return([]*types.Membership{recent}, nil)
				s.EXPECT().GetLastSelectedTenant(gomock.Any(), testUserID).Return("", dbErr)
				s.EXPECT().SetLastSelectedTenant(gomock.Any(), testUserID, "tenant-recent").Return(nil)
			},
			expectedState:  StateReady,
			expectedTenant: "tenant-recent",
		},
		{
			name: "zero memberships",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListActiveMembershipsForUser(gomock.Any(), testUserID).Return(nil, nil)
			},
			expectedErr:   ErrNoAccess,
			expectedState: StateNoAccess,
		},
		{
			name: "membership store down",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().ListActiveMembershipsForUser(gomock.Any(), testUserID).Return(nil, dbErr)
			},
			expectedErr:   ErrAdapterUnavailable,
			expectedState: StateError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockPrivileged := NewMockPrivilegedCheckerInterface(ctrl)
			mockPrivileged.EXPECT().IsPrivileged(gomock.Any(), testUserID).Return(false)
			tc.setupMocks(mockStorage)

			m := newTestManager(mockStorage, mockPrivileged)
			err := m.Initialize(context.Background())

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if m.State() != tc.expectedState {
				t.Errorf("expected state %s, got %s", tc.expectedState, m.State())
			}
			if m.ActiveTenantID() != tc.expectedTenant {
				t.Errorf("expected active tenant %q, got %q", tc.expectedTenant, m.ActiveTenantID())
			}
		})
	}
}

func TestManagerResolvesClientVocabulary(t *testing.T) {
	joined := time.Now()
	parent := "tenant-parent"
	membership := &types.Membership{
		ID:       "membership-client",
		TenantID: "client-1",
		UserID:   testUserID,
		Role:     "editor",
		Status:   types.MembershipActive,
		JoinedAt: &joined,
		Tenant: &types.Tenant{
			ID:       "client-1",
			Kind:     types.KindClient,
			ParentID: &parent,
			Name:     "Bistro",
		},
	}

	ctrl := gomock.NewController(t)
	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListActiveMembershipsForUser(gomock.Any(), testUserID).Return([]*types.Membership{membership}, nil)
	mockStorage.EXPECT().GetLastSelectedTenant(gomock.Any(), testUserID).Return("client-1", nil)

	privileged := NewMockPrivilegedCheckerInterface(ctrl)
	privileged.EXPECT().IsPrivileged(gomock.Any(), testUserID).Return(false)

	m := newTestManager(mockStorage, privileged)
	if err := m.Initialize(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := m.ActiveContext()
	if c == nil || c.ClientPermissions == nil {
		t.Fatalf("expected a client permission set, got %+v", c)
	}
	if !c.ClientPermissions.CreatePosts || !c.ClientPermissions.RespondReviews {
		t.Errorf("expected editor to post and respond, got %+v", c.ClientPermissions)
	}
	if c.ClientPermissions.ManageSettings {
		t.Errorf("editor must not manage settings")
	}

	// The agency vocabulary stays empty on a client tenant; an agency flag
	// never passes, an "editor" never reaches the agency baseline.
	for _, flag := range permissions.Flags {
		if m.HasPermission(flag) {
			t.Errorf("expected agency flag %s denied on client tenant", flag)
		}
	}
}

func TestManagerInitializePrivileged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	home := &types.Tenant{ID: "tenant-home", Kind: types.KindAgency, Name: homeName}
	membership := &types.Membership{
		ID:       "membership-home",
		TenantID: home.ID,
		UserID:   testUserID,
		Role:     string(permissions.RoleOwner),
		Status:   types.MembershipActive,
		Tenant:   home,
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockPrivileged := NewMockPrivilegedCheckerInterface(ctrl)
	mockPrivileged.EXPECT().IsPrivileged(gomock.Any(), testUserID).Return(true)
	mockStorage.EXPECT().EnsureHomeTenant(gomock.Any(), homeName, testUserID).Return(home, membership, nil)
	mockStorage.EXPECT().SetLastSelectedTenant(gomock.Any(), testUserID, home.ID).Return(nil)

	m := newTestManager(mockStorage, mockPrivileged)
	if err := m.Initialize(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.ActiveTenantID() != home.ID {
		t.Errorf("expected home tenant active, got %q", m.ActiveTenantID())
	}
	for _, flag := range permissions.Flags {
		if !m.HasPermission(flag) {
			t.Errorf("expected superuser to hold %s", flag)
		}
	}
}

func TestManagerSwitchTenant(t *testing.T) {
	now := time.Now()
	a := membershipFor("tenant-a", "admin", now)
	b := membershipFor("tenant-b", "analyst", now.Add(-time.Hour))
	dbErr := errors.New("timeout")

	initialize := func(t *testing.T, s *MockStorageInterface, p *MockPrivilegedCheckerInterface) *Manager {
		t.Helper()
		p.EXPECT().IsPrivileged(gomock.Any(), testUserID).Return(false)
		s.EXPECT().ListActiveMembershipsForUser(gomock.Any(), testUserID).Return([]*types.Membership{a, b}, nil)
		s.EXPECT().GetLastSelectedTenant(gomock.Any(), testUserID).Return("tenant-a", nil)

		m := newTestManager(s, p)
		if err := m.Initialize(context.Background()); err != nil {
			t.Fatalf("initialize: %v", err)
		}
		return m
	}

	t.Run("before initialize", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newTestManager(NewMockStorageInterface(ctrl), NewMockPrivilegedCheckerInterface(ctrl))
		if err := m.SwitchTenant(context.Background(), "tenant-a"); !errors.Is(err, ErrNotInitialized) {
			t.Errorf("expected ErrNotInitialized, got %v", err)
		}
	})

	t.Run("unknown tenant fails without storage access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockPrivileged := NewMockPrivilegedCheckerInterface(ctrl)
		m := initialize(t, mockStorage, mockPrivileged)

		if err := m.SwitchTenant(context.Background(), "tenant-x"); !errors.Is(err, ErrTenantNotAccessible) {
			t.Errorf("expected ErrTenantNotAccessible, got %v", err)
		}
		if m.ActiveTenantID() != "tenant-a" {
			t.Errorf("expected context preserved on tenant-a, got %q", m.ActiveTenantID())
		}
	})

	t.Run("membership revoked since last load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockPrivileged := NewMockPrivilegedCheckerInterface(ctrl)
		m := initialize(t, mockStorage, mockPrivileged)

		mockStorage.EXPECT().GetMembership(gomock.Any(), testUserID, "tenant-b").Return(nil, storage.ErrNotFound)

		if err := m.SwitchTenant(context.Background(), "tenant-b"); !errors.Is(err, ErrTenantNotAccessible) {
			t.Errorf("expected ErrTenantNotAccessible, got %v", err)
		}
		if m.ActiveTenantID() != "tenant-a" {
			t.Errorf("expected context preserved on tenant-a, got %q", m.ActiveTenantID())
		}
	})

	t.Run("adapter failure preserves context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockPrivileged := NewMockPrivilegedCheckerInterface(ctrl)
		m := initialize(t, mockStorage, mockPrivileged)

		mockStorage.EXPECT().GetMembership(gomock.Any(), testUserID, "tenant-b").Return(nil, dbErr)

		if err := m.SwitchTenant(context.Background(), "tenant-b"); !errors.Is(err, ErrAdapterUnavailable) {
			t.Errorf("expected ErrAdapterUnavailable, got %v", err)
		}
		if m.ActiveTenantID() != "tenant-a" {
			t.Errorf("expected context preserved on tenant-a, got %q", m.ActiveTenantID())
		}
		if m.State() != StateReady {
			t.Errorf("expected manager to remain ready, got %s", m.State())
		}
	})

	t.Run("success applies fresh membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockPrivileged := NewMockPrivilegedCheckerInterface(ctrl)
		m := initialize(t, mockStorage, mockPrivileged)

		promoted := membershipFor("tenant-b", "manager", now)
		mockStorage.EXPECT().GetMembership(gomock.Any(), testUserID, "tenant-b").Return(promoted, nil)
		mockStorage.EXPECT().SetLastSelectedTenant(gomock.Any(), testUserID, "tenant-b").Return(nil)

		if err := m.SwitchTenant(context.Background(), "tenant-b"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ActiveTenantID() != "tenant-b" {
			t.Errorf("expected tenant-b active, got %q", m.ActiveTenantID())
		}
		// manager role grants client creation, analyst would not
		if !m.HasPermission(permissions.CreateClients) {
			t.Errorf("expected fresh role to apply on switch")
		}
	})

	t.Run("slow switch loses to later switch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStorage := NewMockStorageInterface(ctrl)
		mockPrivileged := NewMockPrivilegedCheckerInterface(ctrl)
		m := initialize(t, mockStorage, mockPrivileged)

		entered := make(chan struct{})
		release := make(chan struct{})
		mockStorage.EXPECT().GetMembership(gomock.Any(), testUserID, "tenant-b").DoAndReturn(
			func(context.Context, string, string) (*types.Membership, error) {
				close(entered)
				<-release
				return b, nil
			})
		mockStorage.EXPECT().GetMembership(gomock.Any(), testUserID, "tenant-a").Return(a, nil)
		mockStorage.EXPECT().SetLastSelectedTenant(gomock.Any(), testUserID, "tenant-a").Return(nil)

		done := make(chan error, 1)
		go func() {
			done <- m.SwitchTenant(context.Background(), "tenant-b")
		}()
		<-entered

		// Issued while the first switch is still resolving; it must win.
		if err := m.SwitchTenant(context.Background(), "tenant-a"); err != nil {
			t.Fatalf("second switch: %v", err)
		}
		close(release)

		if err := <-done; err != nil {
			t.Fatalf("first switch: %v", err)
		}
		if m.ActiveTenantID() != "tenant-a" {
			t.Errorf("expected last issued switch to win, active is %q", m.ActiveTenantID())
		}
	})
}

func TestManagerAccessorsOutsideReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockPrivileged := NewMockPrivilegedCheckerInterface(ctrl)
	mockPrivileged.EXPECT().IsPrivileged(gomock.Any(), testUserID).Return(false)
	mockStorage.EXPECT().ListActiveMembershipsForUser(gomock.Any(), testUserID).Return(nil, nil)

	m := newTestManager(mockStorage, mockPrivileged)

	if m.HasPermission(permissions.RunAudits) {
		t.Errorf("uninitialized manager must not grant permissions")
	}
	if m.ActiveContext() != nil {
		t.Errorf("uninitialized manager must not expose a context")
	}

	if err := m.Initialize(context.Background()); !errors.Is(err, ErrNoAccess) {
		t.Fatalf("expected ErrNoAccess, got %v", err)
	}

	if m.HasPermission(permissions.RunAudits) {
		t.Errorf("no-access manager must not grant permissions")
	}
	if m.HasRole(permissions.RoleOwner) {
		t.Errorf("no-access manager must not report roles")
	}
	if m.ActiveContext() != nil {
		t.Errorf("no-access manager must not expose a context")
	}
}

func TestManagerRefreshKeepsActiveTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	a := membershipFor("tenant-a", "admin", now)
	b := membershipFor("tenant-b", "admin", now.Add(-time.Hour))

	mockStorage := NewMockStorageInterface(ctrl)
	mockPrivileged := NewMockPrivilegedCheckerInterface(ctrl)
	mockPrivileged.EXPECT().IsPrivileged(gomock.Any(), testUserID).Return(false).Times(2)

	mockStorage.EXPECT().ListActiveMembershipsForUser(gomock.Any(), testUserID).Return([]*types.Membership{a, b}, nil)
	mockStorage.EXPECT().GetLastSelectedTenant(gomock.Any(), testUserID).Return("tenant-b", nil)

	m := newTestManager(mockStorage, mockPrivileged)
	if err := m.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if m.ActiveTenantID() != "tenant-b" {
		t.Fatalf("expected tenant-b active, got %q", m.ActiveTenantID())
	}

	// A refresh re-reads memberships but stays on the selected tenant
	// without consulting the stored default.
	demoted := membershipFor("tenant-b", "client_manager", now)
	mockStorage.EXPECT().ListActiveMembershipsForUser(gomock.Any(), testUserID).Return([]*types.Membership{a, demoted}, nil)

	if err := m.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if m.ActiveTenantID() != "tenant-b" {
		t.Errorf("expected tenant-b still active, got %q", m.ActiveTenantID())
	}
	if m.HasPermission(permissions.ManageRoles) {
		t.Errorf("expected demoted role to lose team management")
	}
}
