package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"hwreport/internal/config"
	"hwreport/internal/files"
	"hwreport/internal/infrastructure"
	"hwreport/internal/operations"
)

// Application holds the configured components of a reporting run
type Application struct {
	Config        *config.Config
	Logger        *slog.Logger
	OTelProviders *infrastructure.OTelProviders
	Metrics       *infrastructure.RunMetrics
}

// NewApplication loads the configuration and initializes logging and
// telemetry. configFile may be empty.
func NewApplication(configFile string, opts ...config.Option) (*Application, error) {
	cfg, err := config.Load(configFile, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logging := cfg.Logging
	logging.FilePath = cfg.LogFilePath()
	logger, err := infrastructure.InitializeLogger(logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("base_dir", cfg.Paths.BaseDir))

	providers, err := infrastructure.InitializeOTel(infrastructure.OTelConfigFrom(cfg.Telemetry), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics, err := infrastructure.CreateRunMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create run metrics: %w", err)
	}

	return &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: providers,
		Metrics:       metrics,
	}, nil
}

// Run executes the full pipeline. The run ID is taken from ctx or
// generated. The metrics file is written whether or not the run succeeds.
func (a *Application) Run(ctx context.Context) (*operations.OperationState, error) {
	ctx = infrastructure.EnsureRunID(ctx)
	runID := infrastructure.GetRunID(ctx)

	tracer := operations.NewOperationTracer(a.OTelProviders.Tracer, a.Metrics)
	manager, err := operations.NewPipeline(operations.StepOptions{
		Config:  a.Config,
		Metrics: a.Metrics,
		Logger:  a.Logger,
	}, tracer)
	if err != nil {
		return nil, err
	}

	state, runErr := manager.Execute(ctx, runID)

	if path := a.Config.MetricsFilePath(); path != "" {
		if err := a.OTelProviders.WriteMetrics(path); err != nil {
			a.Logger.WarnContext(ctx, "metrics_write_failed",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
	}

	return state, runErr
}

// Discover locates the inputs a run would consume without reading them
func (a *Application) Discover() (*files.Inputs, error) {
	in, err := files.NewDiscovery(a.Config.Paths.BaseDir).Discover(operations.LayoutFromConfig(a.Config))
	if err != nil {
		return nil, operations.WrapError(err, operations.StepIDDiscover)
	}
	return in, nil
}

// Close flushes telemetry and closes the log file
func (a *Application) Close(ctx context.Context) error {
	var errs []error
	if a.OTelProviders != nil {
		errs = append(errs, a.OTelProviders.Shutdown(ctx))
	}
	errs = append(errs, infrastructure.CloseLogFile())
	return errors.Join(errs...)
}
