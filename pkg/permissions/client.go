// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

// ClientSet is the resolved capability record for client-portal users.
type ClientSet struct {
	CreatePosts    bool
	RespondReviews bool
	ViewAnalytics  bool
	ManageSettings bool
}

// Map flattens the set for wire payloads.
func (s ClientSet) Map() map[string]bool {
	return map[string]bool{
		"can_create_posts":    s.CreatePosts,
		"can_respond_reviews": s.RespondReviews,
		"can_view_analytics":  s.ViewAnalytics,
		"can_manage_settings": s.ManageSettings,
	}
}

// ResolveClient maps a client-portal role to its capability set. Viewers
// and unknown roles get nothing.
func ResolveClient(role ClientRole) ClientSet {
	var s ClientSet

	switch role {
	case ClientRoleOwner:
		s.CreatePosts = true
		s.RespondReviews = true
		s.ViewAnalytics = true
		s.ManageSettings = true
	case ClientRoleManager:
		s.CreatePosts = true
		s.RespondReviews = true
		s.ViewAnalytics = true
	case ClientRoleEditor:
		s.CreatePosts = true
		s.RespondReviews = true
	case ClientRoleViewer:
	}

	return s
}
