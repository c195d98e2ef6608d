// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, migrates the database, starts the HTTP server and the
// outbox relay, and handles graceful shutdown on SIGINT/SIGTERM.
//
// Running the binary as "server token <user-id> [ttl]" prints a signed
// bearer token for the configured profile instead of serving.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/taskflow-service/internal/adapters/http"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/taskflow-service/internal/adapters/clients/webhook"
	"github.com/jsamuelsen11/taskflow-service/internal/adapters/sqlite"
	"github.com/jsamuelsen11/taskflow-service/internal/app"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/config"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/health"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/logging"
	"github.com/jsamuelsen11/taskflow-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	defaultTokenTTL       = time.Hour

	// webhookCheckName is the readiness entry that may fail without taking
	// the service out of rotation.
	webhookCheckName = "webhook"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if len(args) > 0 && args[0] == "token" {
		return printToken(cfg, args[1:])
	}
	return serve(cfg)
}

// printToken writes a bearer token for a user id to stdout.
func printToken(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: token <user-id> [ttl]")
	}

	ttl := defaultTokenTTL
	if len(args) > 1 {
		d, err := time.ParseDuration(args[1])
		if err != nil {
			return fmt.Errorf("parsing ttl: %w", err)
		}
		ttl = d
	}

	token, err := middleware.IssueToken(authConfig(cfg), args[0], ttl)
	if err != nil {
		return fmt.Errorf("issuing token: %w", err)
	}
	fmt.Println(token)
	return nil
}

func serve(cfg *config.Config) error {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
	)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	db := do.MustInvoke[*sql.DB](injector)

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(sqlite.NewHealthChecker(db))

	relayCtx, stopRelay := context.WithCancel(ctx)
	defer stopRelay()
	var relayDone sync.WaitGroup

	if cfg.Outbox.Enabled {
		publisher := do.MustInvoke[*webhook.Publisher](injector)
		registry.Register(publisher)

		relay := do.MustInvoke[*app.OutboxRelay](injector)
		relayDone.Go(func() { relay.Run(relayCtx) })
	} else {
		logger.Info("outbox relay disabled; events stay in the outbox")
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		runErr = fmt.Errorf("server failed: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown: drain HTTP requests.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}

		// Wait for Start() goroutine to return.
		<-serverErr
	}

	// Stop the relay before closing the database it reads from.
	stopRelay()
	relayDone.Wait()

	if err := db.Close(); err != nil {
		logger.Error("database close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return runErr
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func authConfig(cfg *config.Config) middleware.AuthConfig {
	return middleware.AuthConfig{
		Secret:   cfg.Auth.Secret,
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Storage.
	do.Provide(injector, func(_ do.Injector) (*sql.DB, error) {
		ctx := context.Background()
		db, err := sqlite.Open(ctx, sqlite.Config{
			Path:         cfg.Database.Path,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			BusyTimeout:  cfg.Database.BusyTimeout,
		})
		if err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("database ready", slog.String("path", cfg.Database.Path))
		return db, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserRepository, error) {
		return sqlite.NewUserRepository(do.MustInvoke[*sql.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectRepository, error) {
		return sqlite.NewProjectRepository(do.MustInvoke[*sql.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskRepository, error) {
		return sqlite.NewTaskRepository(do.MustInvoke[*sql.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.OutboxStore, error) {
		return sqlite.NewOutboxStore(do.MustInvoke[*sql.DB](i), cfg.Outbox.MaxAttempts), nil
	})

	// Event delivery.
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Webhook.Client, webhookCheckName, metrics, logger,
			httpclient.WithUserAgent(cfg.Telemetry.ServiceName+"-webhook"),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*webhook.Publisher, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return webhook.NewPublisher(client, webhook.Options{
			URL:    cfg.Webhook.URL,
			Secret: cfg.Webhook.Secret,
			Events: cfg.Webhook.Events,
		}, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.OutboxRelay, error) {
		store := do.MustInvoke[ports.OutboxStore](i)
		publisher := do.MustInvoke[*webhook.Publisher](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewOutboxRelay(store, publisher, metrics, app.RelayConfig{
			Interval:  cfg.Outbox.Interval,
			BatchSize: cfg.Outbox.BatchSize,
		}, logger), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		return app.NewUserService(do.MustInvoke[ports.UserRepository](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		projects := do.MustInvoke[ports.ProjectRepository](i)
		users := do.MustInvoke[ports.UserRepository](i)
		return app.NewProjectService(projects, users, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		tasks := do.MustInvoke[ports.TaskRepository](i)
		projects := do.MustInvoke[ports.ProjectRepository](i)
		return app.NewTaskService(tasks, projects, cfg.App.BulkWorkers, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Inbound HTTP.
	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		return handlers.NewProjectHandler(do.MustInvoke[ports.ProjectService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		return handlers.NewTaskHandler(do.MustInvoke[ports.TaskService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.UserHandler, error) {
		return handlers.NewUserHandler(do.MustInvoke[ports.UserService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry, webhookCheckName), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(adapthttp.Handlers{
			Project: do.MustInvoke[*handlers.ProjectHandler](i),
			Task:    do.MustInvoke[*handlers.TaskHandler](i),
			User:    do.MustInvoke[*handlers.UserHandler](i),
			Health:  do.MustInvoke[*handlers.HealthHandler](i),
		}, adapthttp.RouterConfig{
			Auth:           authConfig(cfg),
			RequestTimeout: cfg.Server.RequestTimeout,
		},
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
