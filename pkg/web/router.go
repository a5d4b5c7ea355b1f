// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tabletalk/tenancy-service/internal/db"
	"github.com/tabletalk/tenancy-service/internal/identity"
	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/monitoring"
	"github.com/tabletalk/tenancy-service/internal/storage"
	"github.com/tabletalk/tenancy-service/internal/tracing"
	"github.com/tabletalk/tenancy-service/pkg/authentication"
	"github.com/tabletalk/tenancy-service/pkg/invitations"
	"github.com/tabletalk/tenancy-service/pkg/metrics"
	"github.com/tabletalk/tenancy-service/pkg/sessions"
	"github.com/tabletalk/tenancy-service/pkg/status"
	"github.com/tabletalk/tenancy-service/pkg/tenancy"
	"github.com/tabletalk/tenancy-service/pkg/webhooks"
)

// publicPaths are reachable without a bearer token when authentication is
// enabled. Validation is public so an invited user can inspect their token
// before registering; the webhook authenticates out of band.
var publicPaths = []string{
	"/api/v0/status",
	"/api/v0/version",
	"/api/v0/metrics",
	"/api/v0/invitations/validate",
	"/webhooks/registration",
}

func NewRouter(
	registry *tenancy.Registry,
	tenantService tenancy.ServiceInterface,
	invitationService invitations.ServiceInterface,
	usageTracker sessions.TrackerInterface,
	registrationService webhooks.ServiceInterface,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	verifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
	)

	if verifier != nil {
		middlewares = append(
			middlewares,
			authentication.NewMiddleware(verifier, tracer, monitor, logger).AuthenticateExcept(publicPaths...),
		)
	}

	middlewares = append(middlewares, db.TransactionMiddleware(dbClient, logger))

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	tenancy.NewAPI(registry, tenantService, tracer, monitor, logger).RegisterEndpoints(router)
	invitations.NewAPI(invitationService, s, registry, tracer, monitor, logger).RegisterEndpoints(router)
	sessions.NewAPI(usageTracker, registry, tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(registrationService).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", identity.HeaderName},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
