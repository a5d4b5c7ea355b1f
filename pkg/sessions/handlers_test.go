// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/tabletalk/tenancy-service/internal/identity"
	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/tracing"
	"github.com/tabletalk/tenancy-service/internal/types"
	"github.com/tabletalk/tenancy-service/pkg/tenancy"
)

func newUsageServer(t *testing.T, store *tenancy.MockStorageInterface, tracker TrackerInterface) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	privileged := tenancy.NewMockPrivilegedCheckerInterface(ctrl)
	privileged.EXPECT().IsPrivileged(gomock.Any(), gomock.Any()).Return(false).AnyTimes()

	registry := tenancy.NewRegistry(store, privileged, "TableTalk Agency",
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	mux := chi.NewRouter()
	mux.Use(identity.NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).HTTPMiddleware)
	NewAPI(tracker, registry, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	return mux
}

func TestHandleRecordUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	joined := time.Now()

	store := tenancy.NewMockStorageInterface(ctrl)
	store.EXPECT().ListActiveMembershipsForUser(gomock.Any(), "user-123").Return([]*types.Membership{{
		ID:       "membership-1",
		TenantID: "tenant-a",
		UserID:   "user-123",
		Role:     "analyst",
		Status:   types.MembershipActive,
		JoinedAt: &joined,
		Tenant:   &types.Tenant{ID: "tenant-a", Kind: types.KindAgency, Name: "Acme"},
	}}, nil)
	store.EXPECT().GetLastSelectedTenant(gomock.Any(), "user-123").Return("", nil)
	store.EXPECT().SetLastSelectedTenant(gomock.Any(), "user-123", "tenant-a").Return(nil)

	sink := NewMemorySink()
	tracker := newTestTracker(sink, 8)
	handler := newUsageServer(t, store, tracker)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/usage", strings.NewReader(`{"feature":"run_audit"}`))
	req.Header.Set(identity.HeaderName, "user-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d: %s", rec.Code, rec.Body.String())
	}

	tracker.Close()
	events := sink.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 recorded event, got %d", len(events))
	}
	if events[0].MembershipID != "membership-1" || events[0].Feature != "run_audit" {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestHandleRecordUsageUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := NewMockTrackerInterface(ctrl)
	handler := newUsageServer(t, tenancy.NewMockStorageInterface(ctrl), tracker)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/usage", strings.NewReader(`{"feature":"run_audit"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestHandleRecordUsageNoActiveTenant(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := tenancy.NewMockStorageInterface(ctrl)
	store.EXPECT().ListActiveMembershipsForUser(gomock.Any(), "user-123").Return(nil, nil)

	tracker := NewMockTrackerInterface(ctrl)
	handler := newUsageServer(t, store, tracker)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/usage", strings.NewReader(`{"feature":"run_audit"}`))
	req.Header.Set(identity.HeaderName, "user-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Accepted but not attributed, the event is silently discarded.
	if rec.Code != http.StatusAccepted {
		t.Errorf("expected status 202, got %d", rec.Code)
	}
}

func TestHandleRecordUsageValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	joined := time.Now()

	store := tenancy.NewMockStorageInterface(ctrl)
	store.EXPECT().ListActiveMembershipsForUser(gomock.Any(), "user-123").Return([]*types.Membership{{
		ID:       "membership-1",
		TenantID: "tenant-a",
		UserID:   "user-123",
		Role:     "analyst",
		Status:   types.MembershipActive,
		JoinedAt: &joined,
		Tenant:   &types.Tenant{ID: "tenant-a", Kind: types.KindAgency, Name: "Acme"},
	}}, nil).AnyTimes()
	store.EXPECT().GetLastSelectedTenant(gomock.Any(), "user-123").Return("", nil).AnyTimes()
	store.EXPECT().SetLastSelectedTenant(gomock.Any(), "user-123", "tenant-a").Return(nil).AnyTimes()

	tracker := NewMockTrackerInterface(ctrl)
	handler := newUsageServer(t, store, tracker)

	testCases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"feature":`},
		{name: "missing feature", body: `{}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v0/usage", strings.NewReader(tc.body))
			req.Header.Set(identity.HeaderName, "user-123")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", rec.Code)
			}
		})
	}
}
