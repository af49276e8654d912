// Copyright 2025 Canonical Ltd.
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
	"github.com/spf13/cobra"

	"github.com/taskhive/workspace-service/internal/authorization"
	"github.com/taskhive/workspace-service/internal/config"
	"github.com/taskhive/workspace-service/internal/db"
	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring/prometheus"
	"github.com/taskhive/workspace-service/internal/storage"
	"github.com/taskhive/workspace-service/internal/tracing"
	"github.com/taskhive/workspace-service/pkg/authentication"
	"github.com/taskhive/workspace-service/pkg/organization"
	"github.com/taskhive/workspace-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
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
	defer logger.Sync()

	monitor := prometheus.NewMonitor("workspace-service", logger)
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

	resolver := authorization.NewResolver(s, tracer, monitor, logger)
	authorizer := authorization.NewAuthorizer(resolver, tracer, monitor, logger)

	tokens := authentication.NewTokenManager(
		specs.JWTSigningSecret,
		specs.AccessTokenLifetime,
		specs.RefreshTokenLifetime,
		tracer,
		monitor,
		logger,
	)

	var blockKey []byte
	if specs.CookieBlockKey != "" {
		blockKey = []byte(specs.CookieBlockKey)
	}
	cookies := authentication.NewCookieManager([]byte(specs.CookieHashKey), blockKey, specs.SecureCookies)

	authService := authentication.NewService(s, tokens, tracer, monitor, logger)
	authAPI := authentication.NewAPI(authService, cookies, tracer, monitor, logger)
	authMiddleware := authentication.NewMiddleware(tokens, cookies, tracer, monitor, logger)

	orgService := organization.NewService(dbClient, s, authorizer, tracer, monitor, logger)
	orgAPI := organization.NewAPI(orgService, tracer, monitor, logger)

	router := web.NewRouter(
		authAPI,
		authMiddleware,
		orgAPI,
		dbClient,
		specs.CORSAllowedOrigins,
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
