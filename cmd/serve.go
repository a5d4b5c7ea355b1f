// Copyright 2026 TableTalk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/tabletalk/tenancy-service/internal/config"
	"github.com/tabletalk/tenancy-service/internal/db"
	"github.com/tabletalk/tenancy-service/internal/identity"
	"github.com/tabletalk/tenancy-service/internal/kratos"
	"github.com/tabletalk/tenancy-service/internal/logging"
	"github.com/tabletalk/tenancy-service/internal/mail"
	"github.com/tabletalk/tenancy-service/internal/monitoring/prometheus"
	"github.com/tabletalk/tenancy-service/internal/storage"
	"github.com/tabletalk/tenancy-service/internal/tracing"
	"github.com/tabletalk/tenancy-service/pkg/authentication"
	"github.com/tabletalk/tenancy-service/pkg/invitations"
	"github.com/tabletalk/tenancy-service/pkg/sessions"
	"github.com/tabletalk/tenancy-service/pkg/tenancy"
	"github.com/tabletalk/tenancy-service/pkg/web"
	"github.com/tabletalk/tenancy-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("tenancy-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	kratosClient := kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)

	privileged := identity.NewPrivilegedChecker(kratosClient, specs.SuperuserEmail, tracer, logger)
	if specs.SuperuserEmail != "" {
		logger.Infof("Superuser bypass is enabled, home tenant %q", specs.SuperuserHomeName)
	}

	registry := tenancy.NewRegistry(s, privileged, specs.SuperuserHomeName, tracer, monitor, logger)
	tenantService := tenancy.NewService(s, kratosClient, tracer, monitor, logger)

	var notifier mail.ClientInterface
	if specs.MailAPIURL != "" {
		notifier = mail.NewClient(specs.MailAPIURL, tracer, logger)
	} else {
		logger.Info("No mail API configured, invitation emails are dropped")
		notifier = mail.NewNoopClient(logger)
	}

	invitationService := invitations.NewService(
		s,
		kratosClient,
		notifier,
		specs.InvitationLifetime,
		tracer,
		monitor,
		logger,
	)

	var usageSink sessions.SinkInterface
	if specs.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     specs.RedisAddr,
			Password: specs.RedisPassword,
			DB:       specs.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		usageSink = sessions.NewRedisSink(rdb, specs.UsageRedisKey)
		logger.Infof("Usage events are forwarded to redis at %s", specs.RedisAddr)
	} else {
		usageSink = sessions.NewStorageSink(s)
	}

	usageTracker := sessions.NewTracker(usageSink, specs.UsageBufferSize, tracer, monitor, logger)
	defer usageTracker.Close()

	registrationService := webhooks.NewService(s, tenantService, tracer, monitor, logger)

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.OIDCJwksURL,
			specs.OIDCAllowedSubjects,
			specs.OIDCRequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up JWT authentication: %v", err)
		}
	} else {
		logger.Info("Authentication is disabled, trusting the identity header")
	}

	router := web.NewRouter(
		registry,
		tenantService,
		invitationService,
		usageTracker,
		registrationService,
		s,
		dbClient,
		verifier,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
