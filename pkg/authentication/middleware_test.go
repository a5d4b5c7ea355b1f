// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/tabletalk/tenancy-service/internal/identity"
	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go

func newTestMiddleware(verifier TokenVerifierInterface) *Middleware {
	return NewMiddleware(verifier, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestMiddlewareAuthenticate(t *testing.T) {
	testCases := []struct {
		name           string
		authHeader     string
		setupMocks     func(*MockTokenVerifierInterface)
		expectedStatus int
		expectedUserID string
	}{
		{
			name:           "missing token rejects request",
			authHeader:     "",
			setupMocks:     func(v *MockTokenVerifierInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-bearer token rejects request",
			authHeader:     "Basic dXNlcjpwYXNz",
			setupMocks:     func(v *MockTokenVerifierInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "failed verification rejects request",
			authHeader: "Bearer invalid-token",
			setupMocks: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return("", fmt.Errorf("invalid token"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token injects identity",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return("user-123", nil)
			},
			expectedStatus: http.StatusOK,
			expectedUserID: "user-123",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			verifier := NewMockTokenVerifierInterface(ctrl)
			tc.setupMocks(verifier)

			var seenUserID string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenUserID, _ = identity.GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()

			newTestMiddleware(verifier).Authenticate()(handler).ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
			if seenUserID != tc.expectedUserID {
				t.Errorf("expected user ID %q in request context, got %q", tc.expectedUserID, seenUserID)
			}
		})
	}
}

func TestMiddlewareSkipsVerifiedRequests(t *testing.T) {
	ctrl := gomock.NewController(t)

	// No VerifyToken expectation: an identity set upstream short-circuits.
	verifier := NewMockTokenVerifierInterface(ctrl)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(identity.WithUserID(req.Context(), "user-123"))
	rec := httptest.NewRecorder()

	newTestMiddleware(verifier).Authenticate()(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestMiddlewareGetBearerToken(t *testing.T) {
	testCases := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "no authorization header",
			authHeader:    "",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:          "raw token without bearer prefix",
			authHeader:    "my-token-123",
			expectedToken: "",
			expectedFound: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTestMiddleware(NewMockTokenVerifierInterface(ctrl))

			headers := http.Header{}
			if tc.authHeader != "" {
				headers.Set("Authorization", tc.authHeader)
			}

			token, found := m.getBearerToken(headers)

			if token != tc.expectedToken {
				t.Errorf("expected token %q, got %q", tc.expectedToken, token)
			}
			if found != tc.expectedFound {
				t.Errorf("expected found %v, got %v", tc.expectedFound, found)
			}
		})
	}
}
