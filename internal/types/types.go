// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type TenantKind string

const (
	KindAgency TenantKind = "agency"
	KindClient TenantKind = "client"
)

// Tenant is an agency or a client owned by an agency. Clients may
// additionally own locations.
type Tenant struct {
	ID        string     `db:"id" json:"id"`
	Kind      TenantKind `db:"kind" json:"kind"`
	ParentID  *string    `db:"parent_id" json:"parent_id,omitempty"`
	Name      string     `db:"name" json:"name"`
	OwnerID   string     `db:"owner_id" json:"owner_id"`
	Enabled   bool       `db:"enabled" json:"enabled"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

type MembershipStatus string

const (
	MembershipInvited MembershipStatus = "invited"
	MembershipActive  MembershipStatus = "active"
	MembershipRevoked MembershipStatus = "revoked"
)

// Membership binds a user to a tenant with a role and optional sparse
// permission overrides. UserID is empty while the membership is a pending
// invitation; the token fields are cleared on activation.
type Membership struct {
	ID                  string           `db:"id" json:"id"`
	TenantID            string           `db:"tenant_id" json:"tenant_id"`
	UserID              string           `db:"user_id" json:"user_id,omitempty"`
	Role                string           `db:"role" json:"role"`
	Status              MembershipStatus `db:"status" json:"status"`
	Overrides           map[string]bool  `db:"overrides" json:"overrides,omitempty"`
	InvitedBy           string           `db:"invited_by" json:"invited_by,omitempty"`
	InvitationToken     string           `db:"invitation_token" json:"invitation_token,omitempty"`
	InvitationExpiresAt *time.Time       `db:"invitation_expires_at" json:"invitation_expires_at,omitempty"`
	JoinedAt            *time.Time       `db:"joined_at" json:"joined_at,omitempty"`
	CreatedAt           time.Time        `db:"created_at" json:"created_at"`

	// Tenant is populated on membership list queries.
	Tenant *Tenant `db:"-" json:"tenant,omitempty"`
}

// Location is a physical site belonging to a client tenant. At most one
// location per client is flagged primary.
type Location struct {
	ID        string    `db:"id" json:"id"`
	TenantID  string    `db:"tenant_id" json:"tenant_id"`
	Name      string    `db:"name" json:"name"`
	Primary   bool      `db:"is_primary" json:"primary"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type TenantUser struct {
	UserID string           `json:"user_id"`
	Email  string           `json:"email"`
	Role   string           `json:"role"`
	Status MembershipStatus `json:"status"`
}

// UsageEvent is a coarse feature-usage record tied to a membership.
type UsageEvent struct {
	MembershipID string    `json:"membership_id"`
	Feature      string    `json:"feature"`
	OccurredAt   time.Time `json:"occurred_at"`
}
