// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
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
	"github.com/tabletalk/tenancy-service/pkg/permissions"
	"github.com/tabletalk/tenancy-service/pkg/tenancy"
)

var validate = validator.New()

type API struct {
	service  ServiceInterface
	storage  StorageInterface
	sessions *tenancy.Registry

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	storage StorageInterface,
	sessions *tenancy.Registry,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)
	a.service = service
	a.storage = storage
	a.sessions = sessions
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tenants/{id}/invitations", a.handleInvite)
	mux.Post("/api/v0/invitations/validate", a.handleValidate)
	mux.Post("/api/v0/invitations/activate", a.handleActivate)
}

type inviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

func (a *API) handleInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.handleInvite")
	defer span.End()

	userID, ok := identity.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w, "unauthenticated")
		return
	}

	m := a.sessions.Manager(userID)
	if m.State() == tenancy.StateUninitialized || m.State() == tenancy.StateError {
		if err := m.Initialize(ctx); err != nil && !errors.Is(err, tenancy.ErrNoAccess) {
			response.ServiceUnavailable(w, "tenant context unavailable")
			return
		}
	}

	// Inviting requires the flag in the tenant being invited into, which
	// must be the caller's active tenant or one of its clients.
	tenantID := chi.URLParam(r, "id")
	if !a.covers(ctx, m, tenantID) || !m.HasPermission(permissions.InviteMembers) {
		a.logger.Security().AuthzFailure(userID, "invite")
		response.Forbidden(w, tenancy.ErrPermissionDenied.Error())
		return
	}

	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, response.ValidationErrors(err))
		return
	}

	membership, err := a.service.Invite(ctx, tenantID, req.Email, req.Role, userID)
	if err != nil {
		a.logger.Errorf("failed to invite member: %v", err)
		response.BadRequest(w, err.Error())
		return
	}

	response.Created(w, membership)
}

// covers reports whether tenantID is the caller's active tenant or a
// direct client of it.
func (a *API) covers(ctx context.Context, m *tenancy.Manager, tenantID string) bool {
	c := m.ActiveContext()
	if c == nil || c.Tenant == nil {
		return false
	}
	if c.Tenant.ID == tenantID {
		return true
	}

	tenant, err := a.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		return false
	}
	return tenant.ParentID != nil && *tenant.ParentID == c.Tenant.ID
}

type validateRequest struct {
	Token string `json:"token" validate:"required"`
}

func (a *API) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.handleValidate")
	defer span.End()

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, response.ValidationErrors(err))
		return
	}

	invitation, err := a.service.Validate(ctx, req.Token)
	if err != nil {
		if errors.Is(err, ErrInvitationInvalidOrExpired) {
			response.NotFound(w, err.Error())
			return
		}
		a.logger.Errorf("failed to validate invitation: %v", err)
		response.InternalError(w, "failed to validate invitation")
		return
	}

	response.OK(w, invitation)
}

type activateRequest struct {
	Token string `json:"token" validate:"required"`
}

func (a *API) handleActivate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitations.API.handleActivate")
	defer span.End()

	userID, ok := identity.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w, "unauthenticated")
		return
	}

	var req activateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, response.ValidationErrors(err))
		return
	}

	membership, err := a.service.Activate(ctx, req.Token, userID)
	if err != nil {
		if errors.Is(err, ErrInvitationInvalidOrExpired) {
			response.NotFound(w, err.Error())
			return
		}
		a.logger.Errorf("failed to activate invitation: %v", err)
		response.InternalError(w, "failed to activate invitation")
		return
	}

	// The new membership must show up in the user's session immediately.
	if err := a.sessions.Refresh(ctx, userID); err != nil {
		a.logger.Warnf("failed to refresh session after activation: %v", err)
	}

	response.OK(w, membership)
}
