package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"dpwhcli/internal/config"
	"dpwhcli/internal/infrastructure"
	"dpwhcli/internal/operations"
	"dpwhcli/pkg/contracts"
)

// Options are the command-line inputs to NewApplication. Empty fields keep
// the loaded configuration.
type Options struct {
	ConfigFile string
	InputFile  string
	OutputDir  string
}

// Application represents the main application container
type Application struct {
	Config     *config.Config
	Logger     *slog.Logger
	Controller *operations.Controller
}

// NewApplication loads configuration and builds every component
func NewApplication(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.InputFile != "" {
		cfg.Pipeline.InputFile = opts.InputFile
	}
	if opts.OutputDir != "" {
		cfg.Pipeline.OutputDir = opts.OutputDir
	}

	if err := config.NewPaths(cfg).EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to prepare directories: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return newApplication(cfg, logger), nil
}

func newApplication(cfg *config.Config, logger *slog.Logger) *Application {
	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", contracts.Version),
		slog.String("input_file", cfg.Pipeline.InputFile),
		slog.String("output_dir", cfg.Pipeline.OutputDir))

	return &Application{
		Config:     cfg,
		Logger:     logger,
		Controller: operations.NewController(cfg, logger),
	}
}

// Run runs the interactive shell until Exit, end of input or ctx is done
func (a *Application) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	shell := NewShell(a.Controller, a.Logger)
	err := shell.Run(ctx, in, out)

	a.Logger.InfoContext(ctx, "Application stopped")
	return err
}

// Stop releases the log file
func (a *Application) Stop() error {
	return infrastructure.CloseLogFile()
}
