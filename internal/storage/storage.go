// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tabletalk/tenancy-service/internal/db"
	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/tracing"
	"github.com/tabletalk/tenancy-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const (
	tenantColumns     = "id, kind, parent_id, name, owner_id, enabled, created_at, updated_at"
	membershipColumns = "id, tenant_id, user_id, role, status, overrides, invited_by, invitation_token, invitation_expires_at, joined_at, created_at"
)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	kind := t.Kind
	if kind == "" {
		kind = types.KindAgency
	}

	var created types.Tenant
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "kind", "parent_id", "name", "owner_id", "enabled").
		Values(id.String(), kind, t.ParentID, t.Name, t.OwnerID, t.Enabled).
		Suffix("RETURNING " + tenantColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Kind, &created.ParentID, &created.Name, &created.OwnerID, &created.Enabled, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "kind", "parent_id", "name", "owner_id", "enabled", "created_at", "updated_at").
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Kind, &t.ParentID, &t.Name, &t.OwnerID, &t.Enabled, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) ListTenants(ctx context.Context) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "kind", "parent_id", "name", "owner_id", "enabled", "created_at", "updated_at").
		From("tenants").
		OrderBy("created_at DESC")

	return s.scanTenants(ctx, query)
}

func (s *Storage) ListClientsByAgencyID(ctx context.Context, agencyID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListClientsByAgencyID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "kind", "parent_id", "name", "owner_id", "enabled", "created_at", "updated_at").
		From("tenants").
		Where(sq.Eq{"parent_id": agencyID, "kind": types.KindClient}).
		OrderBy("created_at DESC")

	return s.scanTenants(ctx, query)
}

func (s *Storage) scanTenants(ctx context.Context, query sq.SelectBuilder) ([]*types.Tenant, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Kind, &t.ParentID, &t.Name, &t.OwnerID, &t.Enabled, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

// UpdateTenant updates the fields named in paths, PATCH style. Unknown
// paths are ignored.
func (s *Storage) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = tenant.Name
		case "enabled":
			updateMap["enabled"] = tenant.Enabled
		case "owner_id":
			updateMap["owner_id"] = tenant.OwnerID
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": tenant.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteTenant(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTenant")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("tenants").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) SetTenantStatus(ctx context.Context, id string, enabled bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("enabled", enabled).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set tenant status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// EnsureHomeTenant gets or creates the canonical home agency used by the
// privileged identity, together with an active owner membership for it.
func (s *Storage) EnsureHomeTenant(ctx context.Context, name, ownerID string) (*types.Tenant, *types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.EnsureHomeTenant")
	defer span.End()

	var tenant *types.Tenant
	var membership *types.Membership

	err := s.db.WithTx(ctx, func(txCtx context.Context) error {
		var t types.Tenant
		err := s.db.Statement(txCtx).
			Select("id", "kind", "parent_id", "name", "owner_id", "enabled", "created_at", "updated_at").
			From("tenants").
			Where(sq.Eq{"name": name, "kind": types.KindAgency}).
			QueryRowContext(txCtx).
			Scan(&t.ID, &t.Kind, &t.ParentID, &t.Name, &t.OwnerID, &t.Enabled, &t.CreatedAt, &t.UpdatedAt)

		if errors.Is(err, pgx.ErrNoRows) {
			created, cErr := s.CreateTenant(txCtx, &types.Tenant{
				Kind:    types.KindAgency,
				Name:    name,
				OwnerID: ownerID,
				Enabled: true,
			})
			if cErr != nil {
				return cErr
			}
			t = *created
		} else if err != nil {
			return fmt.Errorf("failed to get home tenant: %w", err)
		}
		tenant = &t

		m, err := s.GetMembership(txCtx, ownerID, t.ID)
		if errors.Is(err, ErrNotFound) {
			now := time.Now().UTC()
			m, err = s.CreateMembership(txCtx, &types.Membership{
				TenantID: t.ID,
				UserID:   ownerID,
				Role:     "owner",
				Status:   types.MembershipActive,
				JoinedAt: &now,
			})
		}
		if err != nil {
			return err
		}
		m.Tenant = tenant
		membership = m

		return nil
	})

	if err != nil {
		return nil, nil, err
	}

	return tenant, membership, nil
}

func (s *Storage) ListMembershipsForUser(ctx context.Context, userID string) ([]*types.Membership, error) {
	return s.listMembershipsForUser(ctx, userID, false)
}

// ListActiveMembershipsForUser returns active memberships in enabled
// tenants, most recently joined first. Ties on joined_at fall back to the
// membership ID so the ordering is deterministic.
func (s *Storage) ListActiveMembershipsForUser(ctx context.Context, userID string) ([]*types.Membership, error) {
	return s.listMembershipsForUser(ctx, userID, true)
}

func (s *Storage) listMembershipsForUser(ctx context.Context, userID string, activeOnly bool) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipsForUser")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(
			"m.id", "m.tenant_id", "m.user_id", "m.role", "m.status", "m.overrides",
			"m.invited_by", "m.invitation_token", "m.invitation_expires_at", "m.joined_at", "m.created_at",
			"t.id", "t.kind", "t.parent_id", "t.name", "t.owner_id", "t.enabled", "t.created_at", "t.updated_at",
		).
		From("memberships m").
		Join("tenants t ON t.id = m.tenant_id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("m.joined_at DESC NULLS LAST", "m.id ASC")

	if activeOnly {
		query = query.Where(sq.Eq{"m.status": types.MembershipActive, "t.enabled": true})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*types.Membership
	for rows.Next() {
		m, err := scanMembershipWithTenant(rows)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMembershipWithTenant(row rowScanner) (*types.Membership, error) {
	var m types.Membership
	var t types.Tenant
	var userID, invitedBy, token *string
	var overrides []byte

	err := row.Scan(
		&m.ID, &m.TenantID, &userID, &m.Role, &m.Status, &overrides,
		&invitedBy, &token, &m.InvitationExpiresAt, &m.JoinedAt, &m.CreatedAt,
		&t.ID, &t.Kind, &t.ParentID, &t.Name, &t.OwnerID, &t.Enabled, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan membership: %w", err)
	}

	if err := applyMembershipNullables(&m, userID, invitedBy, token, overrides); err != nil {
		return nil, err
	}
	m.Tenant = &t

	return &m, nil
}

func scanMembership(row rowScanner) (*types.Membership, error) {
	var m types.Membership
	var userID, invitedBy, token *string
	var overrides []byte

	err := row.Scan(
		&m.ID, &m.TenantID, &userID, &m.Role, &m.Status, &overrides,
		&invitedBy, &token, &m.InvitationExpiresAt, &m.JoinedAt, &m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan membership: %w", err)
	}

	if err := applyMembershipNullables(&m, userID, invitedBy, token, overrides); err != nil {
		return nil, err
	}

	return &m, nil
}

func applyMembershipNullables(m *types.Membership, userID, invitedBy, token *string, overrides []byte) error {
	if userID != nil {
		m.UserID = *userID
	}
	if invitedBy != nil {
		m.InvitedBy = *invitedBy
	}
	if token != nil {
		m.InvitationToken = *token
	}
	if len(overrides) > 0 {
		if err := json.Unmarshal(overrides, &m.Overrides); err != nil {
			return fmt.Errorf("failed to decode permission overrides: %w", err)
		}
	}
	return nil
}

func (s *Storage) GetMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("id", "tenant_id", "user_id", "role", "status", "overrides", "invited_by", "invitation_token", "invitation_expires_at", "joined_at", "created_at").
		From("memberships").
		Where(sq.Eq{"user_id": userID, "tenant_id": tenantID}).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return m, nil
}

func (s *Storage) ListMembersByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "user_id", "role", "status", "overrides", "invited_by", "invitation_token", "invitation_expires_at", "joined_at", "created_at").
		From("memberships").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	overrides, err := json.Marshal(orEmptyOverrides(m.Overrides))
	if err != nil {
		return nil, fmt.Errorf("failed to encode permission overrides: %w", err)
	}

	var userID interface{}
	if m.UserID != "" {
		userID = m.UserID
	}
	var token interface{}
	if m.InvitationToken != "" {
		token = m.InvitationToken
	}
	var invitedBy interface{}
	if m.InvitedBy != "" {
		invitedBy = m.InvitedBy
	}

	row := s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "tenant_id", "user_id", "role", "status", "overrides", "invited_by", "invitation_token", "invitation_expires_at", "joined_at").
		Values(id.String(), m.TenantID, userID, m.Role, m.Status, overrides, invitedBy, token, m.InvitationExpiresAt, m.JoinedAt).
		Suffix("RETURNING " + membershipColumns).
		QueryRowContext(ctx)

	created, err := scanMembership(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	return created, nil
}

func orEmptyOverrides(o map[string]bool) map[string]bool {
	if o == nil {
		return map[string]bool{}
	}
	return o
}

func (s *Storage) GetMembershipByToken(ctx context.Context, token string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByToken")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(
			"m.id", "m.tenant_id", "m.user_id", "m.role", "m.status", "m.overrides",
			"m.invited_by", "m.invitation_token", "m.invitation_expires_at", "m.joined_at", "m.created_at",
			"t.id", "t.kind", "t.parent_id", "t.name", "t.owner_id", "t.enabled", "t.created_at", "t.updated_at",
		).
		From("memberships m").
		Join("tenants t ON t.id = m.tenant_id").
		Where(sq.Eq{"m.invitation_token": token}).
		QueryRowContext(ctx)

	m, err := scanMembershipWithTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return m, nil
}

// ActivateMembership flips an invited membership to active, binding it to
// userID and clearing the single-use token. The status guard makes a second
// activation with the same token report ErrNotFound.
func (s *Storage) ActivateMembership(ctx context.Context, token, userID string, joinedAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.ActivateMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("user_id", userID).
		Set("status", types.MembershipActive).
		Set("joined_at", joinedAt).
		Set("invitation_token", nil).
		Set("invitation_expires_at", nil).
		Where(sq.Eq{"invitation_token": token, "status": types.MembershipInvited}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to activate membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) UpdateMembershipStatus(ctx context.Context, membershipID string, status types.MembershipStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMembershipStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("status", status).
		Where(sq.Eq{"id": membershipID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update membership status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) UpdateMembershipRole(ctx context.Context, tenantID, userID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMembershipRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("role", role).
		Where(sq.Eq{"tenant_id": tenantID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update membership role: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetLastSelectedTenant(ctx context.Context, userID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLastSelectedTenant")
	defer span.End()

	var tenantID *string
	err := s.db.Statement(ctx).
		Select("last_selected_tenant_id").
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		QueryRowContext(ctx).
		Scan(&tenantID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get last selected tenant: %w", err)
	}

	if tenantID == nil {
		return "", nil
	}
	return *tenantID, nil
}

func (s *Storage) SetLastSelectedTenant(ctx context.Context, userID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetLastSelectedTenant")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("profiles").
		Columns("user_id", "last_selected_tenant_id").
		Values(userID, tenantID).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET last_selected_tenant_id = EXCLUDED.last_selected_tenant_id, updated_at = now()").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set last selected tenant: %w", err)
	}

	return nil
}

func (s *Storage) ListLocationsByTenantID(ctx context.Context, tenantID string) ([]*types.Location, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLocationsByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "name", "is_primary", "created_at").
		From("locations").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("is_primary DESC", "created_at ASC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []*types.Location
	for rows.Next() {
		var l types.Location
		if err := rows.Scan(&l.ID, &l.TenantID, &l.Name, &l.Primary, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return locations, nil
}

func (s *Storage) CreateLocation(ctx context.Context, l *types.Location) (*types.Location, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLocation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate location ID: %w", err)
	}

	var created types.Location
	err = s.db.Statement(ctx).
		Insert("locations").
		Columns("id", "tenant_id", "name", "is_primary").
		Values(id.String(), l.TenantID, l.Name, l.Primary).
		Suffix("RETURNING id, tenant_id, name, is_primary, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.TenantID, &created.Name, &created.Primary, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return &created, nil
}

// SetPrimaryLocation moves the primary flag to locationID, keeping the
// exactly-one-primary invariant per tenant.
func (s *Storage) SetPrimaryLocation(ctx context.Context, tenantID, locationID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetPrimaryLocation")
	defer span.End()

	return s.db.WithTx(ctx, func(txCtx context.Context) error {
		_, err := s.db.Statement(txCtx).
			Update("locations").
			Set("is_primary", false).
			Where(sq.Eq{"tenant_id": tenantID, "is_primary": true}).
			ExecContext(txCtx)
		if err != nil {
			return fmt.Errorf("failed to clear primary location: %w", err)
		}

		res, err := s.db.Statement(txCtx).
			Update("locations").
			Set("is_primary", true).
			Where(sq.Eq{"id": locationID, "tenant_id": tenantID}).
			ExecContext(txCtx)
		if err != nil {
			return fmt.Errorf("failed to set primary location: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if rows == 0 {
			return ErrNotFound
		}

		return nil
	})
}

func (s *Storage) AppendUsageEvent(ctx context.Context, e *types.UsageEvent) error {
	ctx, span := s.tracer.Start(ctx, "storage.AppendUsageEvent")
	defer span.End()

	occurredAt := e.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	_, err := s.db.Statement(ctx).
		Insert("usage_events").
		Columns("membership_id", "feature", "occurred_at").
		Values(e.MembershipID, e.Feature, occurredAt).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to append usage event: %w", err)
	}

	return nil
}
