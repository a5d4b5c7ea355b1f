// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/tracing"
	"github.com/tabletalk/tenancy-service/internal/types"
)

const defaultBufferSize = 1024

// writeTimeout bounds a single sink write so a stalled sink cannot wedge
// the worker indefinitely.
const writeTimeout = 5 * time.Second

var _ TrackerInterface = (*Tracker)(nil)

// Tracker decouples usage recording from request handling. Events are
// queued on a bounded buffer and written to the sink by a single worker;
// when the buffer is full new events are dropped, never blocking callers.
type Tracker struct {
	sink SinkInterface

	events  chan *types.UsageEvent
	done    chan struct{}
	once    sync.Once
	closed  bool
	dropped uint64
	mutex   sync.Mutex

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewTracker(
	sink SinkInterface,
	bufferSize int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Tracker {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	t := new(Tracker)
	t.sink = sink
	t.events = make(chan *types.UsageEvent, bufferSize)
	t.done = make(chan struct{})
	t.tracer = tracer
	t.monitor = monitor
	t.logger = logger

	go t.run()

	return t
}

// Track enqueues the event. A zero OccurredAt is stamped here so the
// recorded time reflects the request, not the eventual sink write.
func (t *Tracker) Track(e *types.UsageEvent) {
	if e == nil {
		return
	}

	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	// The mutex serializes the send attempt with Close so the channel can
	// never be closed mid-send.
	t.mutex.Lock()
	if t.closed {
		t.dropped++
		dropped := t.dropped
		t.mutex.Unlock()

		t.logger.Warnf("usage tracker closed, dropped event for membership %s (%d dropped total)", e.MembershipID, dropped)
		return
	}

	select {
	case t.events <- e:
		t.mutex.Unlock()
	default:
		t.dropped++
		dropped := t.dropped
		t.mutex.Unlock()

		t.logger.Warnf("usage tracker buffer full, dropped event for membership %s (%d dropped total)", e.MembershipID, dropped)
	}
}

// Dropped returns the number of events discarded because the buffer was full.
func (t *Tracker) Dropped() uint64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.dropped
}

// Close stops accepting events, drains the buffer and waits for the
// worker to finish.
func (t *Tracker) Close() {
	t.once.Do(func() {
		t.mutex.Lock()
		t.closed = true
		close(t.events)
		t.mutex.Unlock()

		<-t.done
	})
}

func (t *Tracker) run() {
	defer close(t.done)

	for e := range t.events {
		t.write(e)
	}
}

func (t *Tracker) write(e *types.UsageEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	ctx, span := t.tracer.Start(ctx, "sessions.Tracker.write")
	defer span.End()

	if err := t.sink.Write(ctx, e); err != nil {
		t.logger.Errorf("failed to record usage event for membership %s: %v", e.MembershipID, err)
	}
}
