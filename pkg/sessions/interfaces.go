// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"

	"github.com/tabletalk/tenancy-service/internal/types"
)

//go:generate mockgen -package sessions -destination mock_sessions.go -source=interfaces.go

// SinkInterface receives usage events from the tracker worker. Writes may
// fail; the tracker logs and moves on, events are best-effort by contract.
type SinkInterface interface {
	Write(ctx context.Context, e *types.UsageEvent) error
}

// TrackerInterface accepts usage events without blocking the caller.
type TrackerInterface interface {
	Track(e *types.UsageEvent)
	Close()
}
