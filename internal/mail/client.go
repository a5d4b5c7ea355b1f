// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package mail talks to the transactional mail collaborator service.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/tracing"
)

type ClientInterface interface {
	SendInvitation(ctx context.Context, email, tenantName, token string, expiresAt time.Time) error
}

type invitationMessage struct {
	To         string    `json:"to"`
	Template   string    `json:"template"`
	TenantName string    `json:"tenant_name"`
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type Client struct {
	baseURL string
	client  *http.Client
	tracer  tracing.TracingInterface
	logger  logging.LoggerInterface
}

func NewClient(baseURL string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)
	c.baseURL = baseURL
	c.client = &http.Client{Timeout: 10 * time.Second}
	c.tracer = tracer
	c.logger = logger

	return c
}

func (c *Client) SendInvitation(ctx context.Context, email, tenantName, token string, expiresAt time.Time) error {
	ctx, span := c.tracer.Start(ctx, "mail.Client.SendInvitation")
	defer span.End()

	body, err := json.Marshal(invitationMessage{
		To:         email,
		Template:   "invitation",
		TenantName: tenantName,
		Token:      token,
		ExpiresAt:  expiresAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("mail service returned %d", resp.StatusCode)
	}

	return nil
}

// NoopClient drops messages, used when no mail service is configured.
type NoopClient struct {
	logger logging.LoggerInterface
}

func NewNoopClient(logger logging.LoggerInterface) *NoopClient {
	return &NoopClient{logger: logger}
}

func (c *NoopClient) SendInvitation(_ context.Context, email, tenantName, _ string, _ time.Time) error {
	c.logger.Debugf("mail disabled, dropping invitation for %s to %s", email, tenantName)
	return nil
}
