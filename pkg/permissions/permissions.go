// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package permissions resolves a role plus optional per-membership
// overrides into the full capability set. Resolution is pure: no I/O, no
// clock, same inputs same outputs.
package permissions

// Flag names a single capability. Flags double as the override-map keys
// persisted on memberships.
type Flag string

const (
	CreateClients Flag = "can_create_clients"
	EditClients   Flag = "can_edit_clients"
	DeleteClients Flag = "can_delete_clients"
	AssignClients Flag = "can_assign_clients"

	RunAudits     Flag = "can_run_audits"
	ViewAllAudits Flag = "can_view_all_audits"
	DeleteAudits  Flag = "can_delete_audits"

	GenerateReports  Flag = "can_generate_reports"
	CustomizeReports Flag = "can_customize_reports"
	ShareReports     Flag = "can_share_reports"

	InviteMembers Flag = "can_invite_members"
	ManageRoles   Flag = "can_manage_roles"
	RemoveMembers Flag = "can_remove_members"

	EditAgencySettings Flag = "can_edit_agency_settings"
	ManageBilling      Flag = "can_manage_billing"
	AccessAnalytics    Flag = "can_access_analytics"

	ManageAutomations  Flag = "can_manage_automations"
	AccessAIInsights   Flag = "can_access_ai_insights"
	ManageIntegrations Flag = "can_manage_integrations"
)

// Flags lists every capability flag. Keep in sync with Set.
var Flags = []Flag{
	CreateClients, EditClients, DeleteClients, AssignClients,
	RunAudits, ViewAllAudits, DeleteAudits,
	GenerateReports, CustomizeReports, ShareReports,
	InviteMembers, ManageRoles, RemoveMembers,
	EditAgencySettings, ManageBilling, AccessAnalytics,
	ManageAutomations, AccessAIInsights, ManageIntegrations,
}

// Overrides is the sparse per-membership override map. Keys present in the
// map replace the role default for that flag, granting or revoking.
type Overrides map[Flag]bool

// Set is the fully resolved capability record. One named field per flag
// keeps the set total by construction: a flag that is not granted is false,
// never absent.
type Set struct {
	CreateClients bool
	EditClients   bool
	DeleteClients bool
	AssignClients bool

	RunAudits     bool
	ViewAllAudits bool
	DeleteAudits  bool

	GenerateReports  bool
	CustomizeReports bool
	ShareReports     bool

	InviteMembers bool
	ManageRoles   bool
	RemoveMembers bool

	EditAgencySettings bool
	ManageBilling      bool
	AccessAnalytics    bool

	ManageAutomations  bool
	AccessAIInsights   bool
	ManageIntegrations bool
}

// Has reports whether the set grants the given flag. Unknown flags are
// never granted.
func (s Set) Has(flag Flag) bool {
	switch flag {
	case CreateClients:
		return s.CreateClients
	case EditClients:
		return s.EditClients
	case DeleteClients:
		return s.DeleteClients
	case AssignClients:
		return s.AssignClients
	case RunAudits:
		return s.RunAudits
	case ViewAllAudits:
		return s.ViewAllAudits
	case DeleteAudits:
		return s.DeleteAudits
	case GenerateReports:
		return s.GenerateReports
	case CustomizeReports:
		return s.CustomizeReports
	case ShareReports:
		return s.ShareReports
	case InviteMembers:
		return s.InviteMembers
	case ManageRoles:
		return s.ManageRoles
	case RemoveMembers:
		return s.RemoveMembers
	case EditAgencySettings:
		return s.EditAgencySettings
	case ManageBilling:
		return s.ManageBilling
	case AccessAnalytics:
		return s.AccessAnalytics
	case ManageAutomations:
		return s.ManageAutomations
	case AccessAIInsights:
		return s.AccessAIInsights
	case ManageIntegrations:
		return s.ManageIntegrations
	}
	return false
}

// Map renders the set as a flag-to-grant map with every known flag
// present, the shape API responses use.
func (s Set) Map() map[string]bool {
	out := make(map[string]bool, len(Flags))
	for _, f := range Flags {
		out[string(f)] = s.Has(f)
	}
	return out
}

func (s Set) set(flag Flag, v bool) Set {
	switch flag {
	case CreateClients:
		s.CreateClients = v
	case EditClients:
		s.EditClients = v
	case DeleteClients:
		s.DeleteClients = v
	case AssignClients:
		s.AssignClients = v
	case RunAudits:
		s.RunAudits = v
	case ViewAllAudits:
		s.ViewAllAudits = v
	case DeleteAudits:
		s.DeleteAudits = v
	case GenerateReports:
		s.GenerateReports = v
	case CustomizeReports:
		s.CustomizeReports = v
	case ShareReports:
		s.ShareReports = v
	case InviteMembers:
		s.InviteMembers = v
	case ManageRoles:
		s.ManageRoles = v
	case RemoveMembers:
		s.RemoveMembers = v
	case EditAgencySettings:
		s.EditAgencySettings = v
	case ManageBilling:
		s.ManageBilling = v
	case AccessAnalytics:
		s.AccessAnalytics = v
	case ManageAutomations:
		s.ManageAutomations = v
	case AccessAIInsights:
		s.AccessAIInsights = v
	case ManageIntegrations:
		s.ManageIntegrations = v
	}
	return s
}

// baseline is granted to every role, whatever else the role adds.
func baseline() Set {
	return Set{
		RunAudits:       true,
		GenerateReports: true,
	}
}

// Resolve maps an agency role and optional overrides to the full
// capability set. Unknown roles get the baseline only, deny by default.
func Resolve(role Role, overrides Overrides) Set {
	s := baseline()

	switch role {
	case RoleOwner:
		for _, f := range Flags {
			s = s.set(f, true)
		}

	case RoleAdmin:
		s.CreateClients = true
		s.EditClients = true
		s.DeleteClients = true
		s.AssignClients = true
		s.ViewAllAudits = true
		s.DeleteAudits = true
		s.CustomizeReports = true
		s.ShareReports = true
		s.InviteMembers = true
		s.ManageRoles = true
		s.RemoveMembers = true
		s.AccessAnalytics = true
		s.ManageAutomations = true
		s.AccessAIInsights = true
		s.ManageIntegrations = true

	case RoleManager:
		s.CreateClients = true
		s.EditClients = true
		s.AssignClients = true
		s.ViewAllAudits = true
		s.CustomizeReports = true
		s.ShareReports = true
		s.AccessAnalytics = true
		s.ManageAutomations = true
		s.AccessAIInsights = true

	case RoleClientManager:
		s.EditClients = true
		s.AssignClients = true
		s.ViewAllAudits = true
		s.ShareReports = true
		s.AccessAIInsights = true

	case RoleAnalyst:
		// baseline only
	}

	for flag, granted := range overrides {
		s = s.set(flag, granted)
	}

	return s
}
