// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/tabletalk/tenancy-service/internal/http/response"
	"github.com/tabletalk/tenancy-service/internal/identity"
	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/tracing"
	"github.com/tabletalk/tenancy-service/internal/types"
	"github.com/tabletalk/tenancy-service/pkg/tenancy"
)

var validate = validator.New()

type API struct {
	tracker  TrackerInterface
	sessions *tenancy.Registry

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	tracker TrackerInterface,
	sessions *tenancy.Registry,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)
	a.tracker = tracker
	a.sessions = sessions
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/usage", a.handleRecordUsage)
}

type recordUsageRequest struct {
	Feature string `json:"feature" validate:"required,max=128"`
}

// handleRecordUsage records a feature-usage event against the caller's
// active membership. Recording is best-effort: a full buffer or a failed
// sink never surfaces to the caller, the response is 202 either way.
func (a *API) handleRecordUsage(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "sessions.API.handleRecordUsage")
	defer span.End()

	userID, ok := identity.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthenticated")
		return
	}

	var req recordUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "malformed request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, response.ValidationErrors(err))
		return
	}

	m := a.sessions.Manager(userID)
	if m.State() == tenancy.StateUninitialized || m.State() == tenancy.StateError {
		if err := m.Initialize(r.Context()); err != nil && !errors.Is(err, tenancy.ErrNoAccess) {
			// Best-effort by contract, the event is lost but the caller
			// is not failed over it.
			a.logger.Warnf("usage event discarded, tenant context unavailable: %v", err)
			response.Accepted(w, nil)
			return
		}
	}

	active := m.ActiveContext()
	if active == nil || active.Membership == nil {
		// No active tenant context, nothing to attribute the event to.
		response.Accepted(w, nil)
		return
	}

	a.tracker.Track(&types.UsageEvent{
		MembershipID: active.Membership.ID,
		Feature:      req.Feature,
	})

	response.Accepted(w, nil)
}
