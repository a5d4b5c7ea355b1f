// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/tabletalk/tenancy-service/internal/types"
)

const defaultRedisKey = "usage:events"

var _ SinkInterface = (*RedisSink)(nil)

// RedisSink pushes JSON-encoded events onto a Redis list. A downstream
// consumer drains the list into the analytics pipeline.
type RedisSink struct {
	rdb *redis.Client
	key string
}

func NewRedisSink(rdb *redis.Client, key string) *RedisSink {
	if key == "" {
		key = defaultRedisKey
	}

	s := new(RedisSink)
	s.rdb = rdb
	s.key = key

	return s
}

func (s *RedisSink) Write(ctx context.Context, e *types.UsageEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode usage event: %w", err)
	}

	if err := s.rdb.LPush(ctx, s.key, payload).Err(); err != nil {
		return fmt.Errorf("failed to push usage event: %w", err)
	}

	return nil
}

// UsageStorageInterface is the slice of the membership store the storage
// sink writes through.
type UsageStorageInterface interface {
	AppendUsageEvent(ctx context.Context, e *types.UsageEvent) error
}

var _ SinkInterface = (*StorageSink)(nil)

// StorageSink appends events to the usage_events table.
type StorageSink struct {
	storage UsageStorageInterface
}

func NewStorageSink(storage UsageStorageInterface) *StorageSink {
	s := new(StorageSink)
	s.storage = storage

	return s
}

func (s *StorageSink) Write(ctx context.Context, e *types.UsageEvent) error {
	return s.storage.AppendUsageEvent(ctx, e)
}

var _ SinkInterface = (*MemorySink)(nil)

// MemorySink collects events in memory, for tests and local development.
type MemorySink struct {
	mutex  sync.Mutex
	events []*types.UsageEvent
}

func NewMemorySink() *MemorySink {
	return new(MemorySink)
}

func (s *MemorySink) Write(_ context.Context, e *types.UsageEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.events = append(s.events, e)

	return nil
}

// Events returns a copy of everything written so far.
func (s *MemorySink) Events() []*types.UsageEvent {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	out := make([]*types.UsageEvent, len(s.events))
	copy(out, s.events)

	return out
}
