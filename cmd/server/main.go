// Package main is the entry point for the entry-type service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	adapthttp "github.com/jsamuelsen11/bibtypes/internal/adapters/http"
	"github.com/jsamuelsen11/bibtypes/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/bibtypes/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/bibtypes/internal/adapters/memdoc"

	"github.com/jsamuelsen11/bibtypes/internal/app"
	"github.com/jsamuelsen11/bibtypes/internal/app/typechange"
	"github.com/jsamuelsen11/bibtypes/internal/domain/entrytype"
	"github.com/jsamuelsen11/bibtypes/internal/domain/fieldeditor"
	"github.com/jsamuelsen11/bibtypes/internal/platform/config"
	"github.com/jsamuelsen11/bibtypes/internal/platform/health"
	"github.com/jsamuelsen11/bibtypes/internal/platform/logging"
	"github.com/jsamuelsen11/bibtypes/internal/platform/telemetry"
	"github.com/jsamuelsen11/bibtypes/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var profile, configDir string

	cmd := &cobra.Command{
		Use:           "bibtypes-server",
		Short:         "Serve the BibTeX entry-type registry over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if profile == "" {
				return errors.New("--profile or APP_PROFILE is required (e.g. local, dev, qa, prod)")
			}
			var opts []config.Option
			if configDir != "" {
				opts = append(opts, config.WithConfigDir(configDir))
			}
			return run(cmd.Context(), profile, opts...)
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", os.Getenv("APP_PROFILE"),
		"configuration profile (default: $APP_PROFILE)")
	cmd.Flags().StringVar(&configDir, "config-dir", "",
		"directory holding base.yaml and profile files (default: configs)")

	return cmd
}

func run(ctx context.Context, profile string, opts ...config.Option) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

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

	// Register health checkers after the graph is wired.
	checks := do.MustInvoke[*health.Registry](injector)
	checks.Register(do.MustInvoke[*app.EntryTypeService](injector))
	checks.Register(do.MustInvoke[*fieldeditor.Catalog](injector))
	logger.Info("readiness checks registered", slog.Any("checks", checks.Names()))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
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

	tc := cfg.Telemetry
	tp, err := telemetry.InitTracer(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, tc.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{tracer: tp, meter: mp, metrics: metrics}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*entrytype.Registry, error) {
		standard, err := entrytype.LoadStandard(cfg.Catalog.StandardTypesFile)
		if err != nil {
			return nil, fmt.Errorf("loading standard types: %w", err)
		}
		return entrytype.NewRegistry(standard...)
	})

	do.Provide(injector, func(_ do.Injector) (*fieldeditor.Catalog, error) {
		catalog, err := fieldeditor.DefaultCatalog()
		if err != nil {
			return nil, fmt.Errorf("loading field catalog: %w", err)
		}
		return catalog, nil
	})

	do.Provide(injector, func(i do.Injector) (*fieldeditor.Factory, error) {
		catalog := do.MustInvoke[*fieldeditor.Catalog](i)
		return fieldeditor.NewFactory(catalog, fieldeditor.Config{
			TimestampField:  cfg.Editor.TimestampField,
			TimestampLayout: cfg.Editor.TimestampFormat,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (*typechange.Notifier, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return typechange.New(metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.EntryTypeService, error) {
		return app.NewEntryTypeService(
			do.MustInvoke[*entrytype.Registry](i),
			do.MustInvoke[*typechange.Notifier](i),
			do.MustInvoke[*fieldeditor.Factory](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EntryTypeService, error) {
		return do.MustInvoke[*app.EntryTypeService](i), nil
	})

	// Documents resolve types through the service's registry; the service
	// holds its lock across every notification that reaches them.
	do.Provide(injector, func(i do.Injector) (ports.DocumentService, error) {
		factory := memdoc.NewFactory(
			do.MustInvoke[*entrytype.Registry](i),
			do.MustInvoke[*fieldeditor.Factory](i),
		)
		return app.NewDocumentService(
			factory,
			do.MustInvoke[*typechange.Notifier](i),
			do.MustInvoke[ports.EntryTypeService](i),
			logger,
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (*health.Registry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		return do.MustInvoke[*health.Registry](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.EntryTypeHandler, error) {
		return handlers.NewEntryTypeHandler(do.MustInvoke[ports.EntryTypeService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DocumentHandler, error) {
		return handlers.NewDocumentHandler(do.MustInvoke[ports.DocumentService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(
			do.MustInvoke[*handlers.EntryTypeHandler](i),
			do.MustInvoke[*handlers.DocumentHandler](i),
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
