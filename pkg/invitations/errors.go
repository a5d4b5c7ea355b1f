// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import "errors"

// ErrInvitationInvalidOrExpired covers unknown, already consumed, and
// expired tokens alike so responses never reveal which case was hit.
var ErrInvitationInvalidOrExpired = errors.New("invitation invalid or expired")
