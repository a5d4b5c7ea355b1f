// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

// Role is an agency-side privilege tier. The set is closed; anything else
// resolves to the deny-by-default baseline.
type Role string

const (
	RoleOwner         Role = "owner"
	RoleAdmin         Role = "admin"
	RoleManager       Role = "manager"
	RoleClientManager Role = "client_manager"
	RoleAnalyst       Role = "analyst"
)

// AgencyRoles lists the agency-side vocabulary in decreasing privilege
// order.
var AgencyRoles = []Role{RoleOwner, RoleAdmin, RoleManager, RoleClientManager, RoleAnalyst}

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleManager, RoleClientManager, RoleAnalyst:
		return true
	}
	return false
}

// ClientRole is the client-portal privilege tier. It is a separate
// vocabulary from Role and the two are not comparable or convertible.
type ClientRole string

const (
	ClientRoleOwner   ClientRole = "owner"
	ClientRoleManager ClientRole = "manager"
	ClientRoleEditor  ClientRole = "editor"
	ClientRoleViewer  ClientRole = "viewer"
)

var ClientRoles = []ClientRole{ClientRoleOwner, ClientRoleManager, ClientRoleEditor, ClientRoleViewer}

func (r ClientRole) Valid() bool {
	switch r {
	case ClientRoleOwner, ClientRoleManager, ClientRoleEditor, ClientRoleViewer:
		return true
	}
	return false
}
