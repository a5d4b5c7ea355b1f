// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"strings"
	"sync"

	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/tracing"
)

// DirectoryInterface is the identity lookup the privileged checker needs.
type DirectoryInterface interface {
	GetIdentityEmail(ctx context.Context, userID string) (string, error)
}

// PrivilegedChecker decides whether a user is the designated superuser by
// comparing their directory email against the configured address. Lookups
// are cached per identity ID; a directory failure is treated as not
// privileged.
type PrivilegedChecker struct {
	directory DirectoryInterface
	email     string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface

	mu    sync.Mutex
	cache map[string]bool
}

func NewPrivilegedChecker(directory DirectoryInterface, email string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *PrivilegedChecker {
	c := new(PrivilegedChecker)
	c.directory = directory
	c.email = strings.ToLower(strings.TrimSpace(email))
	c.tracer = tracer
	c.logger = logger
	c.cache = make(map[string]bool)

	return c
}

func (c *PrivilegedChecker) IsPrivileged(ctx context.Context, userID string) bool {
	ctx, span := c.tracer.Start(ctx, "identity.PrivilegedChecker.IsPrivileged")
	defer span.End()

	if c.email == "" || userID == "" {
		return false
	}

	c.mu.Lock()
	cached, ok := c.cache[userID]
	c.mu.Unlock()
	if ok {
		return cached
	}

	email, err := c.directory.GetIdentityEmail(ctx, userID)
	if err != nil {
		c.logger.Warnf("failed to resolve email for privileged check on %s: %v", userID, err)
		return false
	}

	privileged := strings.ToLower(strings.TrimSpace(email)) == c.email

	c.mu.Lock()
	c.cache[userID] = privileged
	c.mu.Unlock()

	return privileged
}
