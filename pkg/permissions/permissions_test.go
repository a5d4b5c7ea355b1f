// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"testing"
)

func TestResolve_OwnerHasEveryFlag(t *testing.T) {
	s := Resolve(RoleOwner, nil)

	for _, f := range Flags {
		if !s.Has(f) {
			t.Errorf("expected owner to have %s", f)
		}
	}
}

func TestResolve_AnalystHasBaselineOnly(t *testing.T) {
	s := Resolve(RoleAnalyst, nil)

	for _, f := range Flags {
		want := f == RunAudits || f == GenerateReports
		if s.Has(f) != want {
			t.Errorf("flag %s: expected %v, got %v", f, want, s.Has(f))
		}
	}
}

func TestResolve_UnknownRoleIsBaseline(t *testing.T) {
	s := Resolve(Role("superhero"), nil)

	if s != Resolve(RoleAnalyst, nil) {
		t.Error("unknown role must resolve to the baseline set")
	}
}

func TestResolve_RoleHierarchy(t *testing.T) {
	testCases := []struct {
		name     string
		narrower Role
		broader  Role
	}{
		{"manager within admin", RoleManager, RoleAdmin},
		{"client_manager within manager", RoleClientManager, RoleManager},
		{"analyst within client_manager", RoleAnalyst, RoleClientManager},
		{"admin within owner", RoleAdmin, RoleOwner},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			narrow := Resolve(tc.narrower, nil)
			broad := Resolve(tc.broader, nil)

			for _, f := range Flags {
				if narrow.Has(f) && !broad.Has(f) {
					t.Errorf("%s grants %s but %s does not", tc.narrower, f, tc.broader)
				}
			}
		})
	}
}

func TestResolve_RoleOverlays(t *testing.T) {
	testCases := []struct {
		role    Role
		granted []Flag
		denied  []Flag
	}{
		{
			role:    RoleAdmin,
			granted: []Flag{CreateClients, DeleteClients, DeleteAudits, InviteMembers, ManageRoles, RemoveMembers, ManageIntegrations},
			denied:  []Flag{EditAgencySettings, ManageBilling},
		},
		{
			role:    RoleManager,
			granted: []Flag{CreateClients, EditClients, AccessAnalytics, ManageAutomations},
			denied:  []Flag{DeleteClients, DeleteAudits, InviteMembers, ManageRoles, RemoveMembers, ManageBilling, ManageIntegrations},
		},
		{
			role:    RoleClientManager,
			granted: []Flag{EditClients, AssignClients, ViewAllAudits, ShareReports, AccessAIInsights},
			denied:  []Flag{CreateClients, CustomizeReports, AccessAnalytics, ManageAutomations},
		},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role), func(t *testing.T) {
			s := Resolve(tc.role, nil)
			for _, f := range tc.granted {
				if !s.Has(f) {
					t.Errorf("expected %s to grant %s", tc.role, f)
				}
			}
			for _, f := range tc.denied {
				if s.Has(f) {
					t.Errorf("expected %s to deny %s", tc.role, f)
				}
			}
		})
	}
}

func TestResolve_OverridesWin(t *testing.T) {
	widened := Resolve(RoleAnalyst, Overrides{ManageRoles: true})
	if !widened.ManageRoles {
		t.Error("override must widen an analyst's grant")
	}

	narrowed := Resolve(RoleOwner, Overrides{ManageBilling: false})
	if narrowed.ManageBilling {
		t.Error("override must narrow an owner's grant")
	}

	// Overrides only touch the keys present in the map.
	if !widened.RunAudits || !narrowed.CreateClients {
		t.Error("flags absent from the override map must keep the role default")
	}
}

func TestResolve_Pure(t *testing.T) {
	o := Overrides{InviteMembers: true}

	first := Resolve(RoleManager, o)
	second := Resolve(RoleManager, o)

	if first != second {
		t.Error("resolution must be deterministic")
	}
}

func TestSet_HasUnknownFlag(t *testing.T) {
	s := Resolve(RoleOwner, nil)
	if s.Has(Flag("can_fly")) {
		t.Error("unknown flag must never be granted")
	}
}

func TestResolveClient(t *testing.T) {
	testCases := []struct {
		role ClientRole
		want ClientSet
	}{
		{ClientRoleOwner, ClientSet{CreatePosts: true, RespondReviews: true, ViewAnalytics: true, ManageSettings: true}},
		{ClientRoleManager, ClientSet{CreatePosts: true, RespondReviews: true, ViewAnalytics: true}},
		{ClientRoleEditor, ClientSet{CreatePosts: true, RespondReviews: true}},
		{ClientRoleViewer, ClientSet{}},
		{ClientRole("intern"), ClientSet{}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role), func(t *testing.T) {
			if got := ResolveClient(tc.role); got != tc.want {
				t.Errorf("ResolveClient(%s) = %+v, want %+v", tc.role, got, tc.want)
			}
		})
	}
}
