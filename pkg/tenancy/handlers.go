// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/tabletalk/tenancy-service/internal/http/response"
	"github.com/tabletalk/tenancy-service/internal/identity"
	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/tracing"
	"github.com/tabletalk/tenancy-service/internal/types"
	"github.com/tabletalk/tenancy-service/pkg/permissions"
)

var validate = validator.New()

type API struct {
	registry *Registry
	service  ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	registry *Registry,
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)
	a.registry = registry
	a.service = service
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/context", a.handleGetContext)
	mux.Post("/api/v0/context/switch", a.handleSwitchTenant)
	mux.Post("/api/v0/context/refresh", a.handleRefresh)

	mux.Get("/api/v0/tenants", a.handleListMyTenants)
	mux.Post("/api/v0/tenants", a.handleCreateAgency)
	mux.Get("/api/v0/tenants/{id}", a.handleGetTenant)
	mux.Patch("/api/v0/tenants/{id}", a.handleUpdateTenant)
	mux.Delete("/api/v0/tenants/{id}", a.handleDeleteTenant)

	mux.Get("/api/v0/tenants/{id}/clients", a.handleListClients)
	mux.Post("/api/v0/tenants/{id}/clients", a.handleCreateClient)

	mux.Get("/api/v0/tenants/{id}/members", a.handleListMembers)
	mux.Patch("/api/v0/tenants/{id}/members/{userID}", a.handleUpdateMemberRole)
	mux.Delete("/api/v0/tenants/{id}/members/{membershipID}", a.handleRevokeMember)

	mux.Get("/api/v0/tenants/{id}/locations", a.handleListLocations)
	mux.Post("/api/v0/tenants/{id}/locations", a.handleAddLocation)
	mux.Put("/api/v0/tenants/{id}/locations/{locationID}/primary", a.handleSetPrimaryLocation)
}

// manager resolves the caller's session manager, initializing it on first
// use. A previous adapter failure is retried on the next request.
func (a *API) manager(w http.ResponseWriter, r *http.Request) (*Manager, bool) {
	userID, ok := identity.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthenticated")
		return nil, false
	}

	m := a.registry.Manager(userID)
	if m.State() == StateUninitialized || m.State() == StateError {
		if err := m.Initialize(r.Context()); err != nil && !errors.Is(err, ErrNoAccess) {
			a.logger.Errorf("failed to initialize tenant context: %v", err)
			response.ServiceUnavailable(w, "tenant context unavailable")
			return nil, false
		}
	}

	return m, true
}

// covers reports whether tenant is the caller's active tenant or a direct
// client of it. Permission flags resolve against the active context, so a
// grant never reaches past that boundary.
func covers(m *Manager, tenant *types.Tenant) bool {
	c := m.ActiveContext()
	if c == nil || c.Tenant == nil {
		return false
	}
	if c.Tenant.ID == tenant.ID {
		return true
	}
	return tenant.ParentID != nil && *tenant.ParentID == c.Tenant.ID
}

// requireOn resolves the tenant named in the URL and returns it only when
// the tenant is covered by the caller's active context and that context
// grants flag. The 403 body does not reveal which check failed.
func (a *API) requireOn(w http.ResponseWriter, r *http.Request, flag permissions.Flag) (*Manager, *types.Tenant, bool) {
	m, ok := a.manager(w, r)
	if !ok {
		return nil, nil, false
	}

	tenant, err := a.service.GetTenant(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "tenant not found")
		return nil, nil, false
	}
	if !covers(m, tenant) || !m.HasPermission(flag) {
		response.Forbidden(w, ErrPermissionDenied.Error())
		return nil, nil, false
	}

	return m, tenant, true
}

type contextPayload struct {
	State             string             `json:"state"`
	Tenant            *types.Tenant      `json:"tenant,omitempty"`
	Role              string             `json:"role,omitempty"`
	Permissions       map[string]bool    `json:"permissions,omitempty"`
	ClientPermissions map[string]bool    `json:"client_permissions,omitempty"`
	Error             string             `json:"error,omitempty"`
	Memberships       []*membershipBrief `json:"memberships,omitempty"`
}

type membershipBrief struct {
	TenantID   string     `json:"tenant_id"`
	TenantName string     `json:"tenant_name"`
	Role       string     `json:"role"`
	JoinedAt   *time.Time `json:"joined_at,omitempty"`
}

func (a *API) contextPayload(m *Manager) *contextPayload {
	p := &contextPayload{State: m.State().String()}

	if err := m.Err(); err != nil {
		p.Error = err.Error()
	}

	if c := m.ActiveContext(); c != nil {
		p.Tenant = c.Tenant
		p.Role = c.Membership.Role
		if c.ClientPermissions != nil {
			p.ClientPermissions = c.ClientPermissions.Map()
		} else {
			p.Permissions = c.Permissions.Map()
		}
	}

	for _, membership := range m.Memberships() {
		brief := &membershipBrief{
			TenantID: membership.TenantID,
			Role:     membership.Role,
			JoinedAt: membership.JoinedAt,
		}
		if membership.Tenant != nil {
			brief.TenantName = membership.Tenant.Name
		}
		p.Memberships = append(p.Memberships, brief)
	}

	return p
}

func (a *API) handleGetContext(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "tenancy.API.handleGetContext")
	defer span.End()

	m, ok := a.manager(w, r)
	if !ok {
		return
	}

	response.OK(w, a.contextPayload(m))
}

type switchTenantRequest struct {
	TenantID string `json:"tenant_id" validate:"required"`
}

func (a *API) handleSwitchTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleSwitchTenant")
	defer span.End()

	m, ok := a.manager(w, r)
	if !ok {
		return
	}

	var req switchTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, response.ValidationErrors(err))
		return
	}

	if err := m.SwitchTenant(ctx, req.TenantID); err != nil {
		switch {
		case errors.Is(err, ErrTenantNotAccessible):
			response.Forbidden(w, err.Error())
		case errors.Is(err, ErrNotInitialized):
			response.Conflict(w, err.Error())
		default:
			a.logger.Errorf("failed to switch tenant: %v", err)
			response.ServiceUnavailable(w, ErrAdapterUnavailable.Error())
		}
		return
	}

	response.OK(w, a.contextPayload(m))
}

func (a *API) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleRefresh")
	defer span.End()

	m, ok := a.manager(w, r)
	if !ok {
		return
	}

	if err := m.Refresh(ctx); err != nil && !errors.Is(err, ErrNoAccess) {
		a.logger.Errorf("failed to refresh tenant context: %v", err)
		response.ServiceUnavailable(w, ErrAdapterUnavailable.Error())
		return
	}

	response.OK(w, a.contextPayload(m))
}

func (a *API) handleListMyTenants(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "tenancy.API.handleListMyTenants")
	defer span.End()

	m, ok := a.manager(w, r)
	if !ok {
		return
	}

	tenants := make([]*types.Tenant, 0)
	for _, membership := range m.Memberships() {
		if membership.Tenant != nil {
			tenants = append(tenants, membership.Tenant)
		}
	}

	response.OK(w, tenants)
}

type createAgencyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

func (a *API) handleCreateAgency(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleCreateAgency")
	defer span.End()

	userID, ok := identity.GetUserID(ctx)
	if !ok {
		response.Unauthorized(w, "unauthenticated")
		return
	}

	var req createAgencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, response.ValidationErrors(err))
		return
	}

	tenant, err := a.service.CreateAgency(ctx, req.Name, userID)
	if err != nil {
		a.logger.Errorf("failed to create agency: %v", err)
		response.InternalError(w, "failed to create agency")
		return
	}

	// The new membership must be visible to the session immediately.
	if err := a.registry.Manager(userID).Refresh(ctx); err != nil {
		a.logger.Warnf("failed to refresh context after agency creation: %v", err)
	}

	response.Created(w, tenant)
}

// memberOf reports whether the caller holds a membership of tenantID or of
// its parent agency.
func memberOf(m *Manager, tenant *types.Tenant) bool {
	for _, membership := range m.Memberships() {
		if membership.TenantID == tenant.ID {
			return true
		}
		if tenant.ParentID != nil && membership.TenantID == *tenant.ParentID {
			return true
		}
	}
	return false
}

func (a *API) handleGetTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleGetTenant")
	defer span.End()

	m, ok := a.manager(w, r)
	if !ok {
		return
	}

	tenant, err := a.service.GetTenant(ctx, chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "tenant not found")
		return
	}
	if !memberOf(m, tenant) {
		response.Forbidden(w, ErrTenantNotAccessible.Error())
		return
	}

	response.OK(w, tenant)
}

type updateTenantRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Enabled *bool   `json:"enabled"`
}

func (a *API) handleUpdateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleUpdateTenant")
	defer span.End()

	m, ok := a.manager(w, r)
	if !ok {
		return
	}

	tenantID := chi.URLParam(r, "id")
	tenant, err := a.service.GetTenant(ctx, tenantID)
	if err != nil {
		response.NotFound(w, "tenant not found")
		return
	}

	required := permissions.EditAgencySettings
	if tenant.Kind == types.KindClient {
		required = permissions.EditClients
	}
	if !memberOf(m, tenant) || !m.HasPermission(required) {
		response.Forbidden(w, ErrPermissionDenied.Error())
		return
	}

	var req updateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, response.ValidationErrors(err))
		return
	}

	update := &types.Tenant{ID: tenantID}
	var paths []string
	if req.Name != nil {
		update.Name = *req.Name
		paths = append(paths, "name")
	}
	if req.Enabled != nil {
		update.Enabled = *req.Enabled
		paths = append(paths, "enabled")
	}
	if len(paths) == 0 {
		response.BadRequest(w, "no fields to update")
		return
	}

	updated, err := a.service.UpdateTenant(ctx, update, paths)
	if err != nil {
		a.logger.Errorf("failed to update tenant: %v", err)
		response.InternalError(w, "failed to update tenant")
		return
	}

	response.OK(w, updated)
}

func (a *API) handleDeleteTenant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleDeleteTenant")
	defer span.End()

	m, ok := a.manager(w, r)
	if !ok {
		return
	}

	tenantID := chi.URLParam(r, "id")
	tenant, err := a.service.GetTenant(ctx, tenantID)
	if err != nil {
		response.NotFound(w, "tenant not found")
		return
	}

	required := permissions.EditAgencySettings
	if tenant.Kind == types.KindClient {
		required = permissions.DeleteClients
	}
	if !memberOf(m, tenant) || !m.HasPermission(required) {
		response.Forbidden(w, ErrPermissionDenied.Error())
		return
	}

	if err := a.service.DeleteTenant(ctx, tenantID); err != nil {
		a.logger.Errorf("failed to delete tenant: %v", err)
		response.Conflict(w, err.Error())
		return
	}

	response.NoContent(w)
}

func (a *API) handleListClients(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleListClients")
	defer span.End()

	m, ok := a.manager(w, r)
	if !ok {
		return
	}

	agencyID := chi.URLParam(r, "id")
	agency, err := a.service.GetTenant(ctx, agencyID)
	if err != nil {
		response.NotFound(w, "tenant not found")
		return
	}
	if !memberOf(m, agency) {
		response.Forbidden(w, ErrTenantNotAccessible.Error())
		return
	}

	clients, err := a.service.ListClients(ctx, agencyID)
	if err != nil {
		a.logger.Errorf("failed to list clients: %v", err)
		response.InternalError(w, "failed to list clients")
		return
	}

	response.OK(w, clients)
}

type createClientRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

func (a *API) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleCreateClient")
	defer span.End()

	m, agency, ok := a.requireOn(w, r, permissions.CreateClients)
	if !ok {
		return
	}

	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, response.ValidationErrors(err))
		return
	}

	client, err := a.service.CreateClient(ctx, agency.ID, req.Name, m.UserID())
	if err != nil {
		a.logger.Errorf("failed to create client: %v", err)
		response.InternalError(w, "failed to create client")
		return
	}

	if err := m.Refresh(ctx); err != nil {
		a.logger.Warnf("failed to refresh context after client creation: %v", err)
	}

	response.Created(w, client)
}

func (a *API) handleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleListMembers")
	defer span.End()

	m, ok := a.manager(w, r)
	if !ok {
		return
	}

	tenantID := chi.URLParam(r, "id")
	tenant, err := a.service.GetTenant(ctx, tenantID)
	if err != nil {
		response.NotFound(w, "tenant not found")
		return
	}
	if !memberOf(m, tenant) {
		response.Forbidden(w, ErrTenantNotAccessible.Error())
		return
	}

	users, err := a.service.ListTenantUsers(ctx, tenantID)
	if err != nil {
		a.logger.Errorf("failed to list tenant users: %v", err)
		response.InternalError(w, "failed to list members")
		return
	}

	response.OK(w, users)
}

type updateMemberRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func (a *API) handleUpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleUpdateMemberRole")
	defer span.End()

	_, tenant, ok := a.requireOn(w, r, permissions.ManageRoles)
	if !ok {
		return
	}

	var req updateMemberRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, response.ValidationErrors(err))
		return
	}

	user, err := a.service.UpdateTenantUserRole(ctx, tenant.ID, chi.URLParam(r, "userID"), req.Role)
	if err != nil {
		a.logger.Errorf("failed to update member role: %v", err)
		response.BadRequest(w, err.Error())
		return
	}

	response.OK(w, user)
}

func (a *API) handleRevokeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleRevokeMember")
	defer span.End()

	_, tenant, ok := a.requireOn(w, r, permissions.RemoveMembers)
	if !ok {
		return
	}

	if err := a.service.RevokeMembership(ctx, tenant.ID, chi.URLParam(r, "membershipID")); err != nil {
		if errors.Is(err, ErrMembershipNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		a.logger.Errorf("failed to revoke membership: %v", err)
		response.InternalError(w, "failed to revoke membership")
		return
	}

	response.NoContent(w)
}

func (a *API) handleListLocations(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleListLocations")
	defer span.End()

	m, ok := a.manager(w, r)
	if !ok {
		return
	}

	tenantID := chi.URLParam(r, "id")
	tenant, err := a.service.GetTenant(ctx, tenantID)
	if err != nil {
		response.NotFound(w, "tenant not found")
		return
	}
	if !memberOf(m, tenant) {
		response.Forbidden(w, ErrTenantNotAccessible.Error())
		return
	}

	locations, err := a.service.ListLocations(ctx, tenantID)
	if err != nil {
		a.logger.Errorf("failed to list locations: %v", err)
		response.InternalError(w, "failed to list locations")
		return
	}

	response.OK(w, locations)
}

type addLocationRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Primary bool   `json:"primary"`
}

func (a *API) handleAddLocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleAddLocation")
	defer span.End()

	_, client, ok := a.requireOn(w, r, permissions.EditClients)
	if !ok {
		return
	}

	var req addLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, response.ValidationErrors(err))
		return
	}

	location, err := a.service.AddLocation(ctx, client.ID, req.Name, req.Primary)
	if err != nil {
		a.logger.Errorf("failed to add location: %v", err)
		response.BadRequest(w, err.Error())
		return
	}

	response.Created(w, location)
}

func (a *API) handleSetPrimaryLocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenancy.API.handleSetPrimaryLocation")
	defer span.End()

	_, client, ok := a.requireOn(w, r, permissions.EditClients)
	if !ok {
		return
	}

	if err := a.service.SetPrimaryLocation(ctx, client.ID, chi.URLParam(r, "locationID")); err != nil {
		a.logger.Errorf("failed to set primary location: %v", err)
		response.InternalError(w, "failed to set primary location")
		return
	}

	response.NoContent(w)
}
