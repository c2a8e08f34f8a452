package operations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dpwhcli/internal/config"
	"dpwhcli/internal/dataprocessing"
	"dpwhcli/internal/errors"
	"dpwhcli/internal/exporter"
	"dpwhcli/internal/infrastructure"
	"dpwhcli/internal/validation"
	"dpwhcli/pkg/contracts/domain"
)

// LoadResult describes one successful Load
type LoadResult struct {
	Stats     domain.LoadStats
	Artifacts []domain.Artifact
}

// GenerateResult describes one successful Generate
type GenerateResult struct {
	Reports   *domain.ReportSet
	Artifacts []domain.Artifact
}

// Controller owns the dataset and moves between Idle and Loaded.
// It is not safe for concurrent use.
type Controller struct {
	cfg       *config.Config
	paths     *config.Paths
	logger    *slog.Logger
	validator *validation.FileValidator
	builder   *dataprocessing.ReportBuilder
	writer    *exporter.ReportWriter
	metrics   *infrastructure.PipelineMetrics
	registry  *Registry
	now       func() time.Time

	state   State
	dataset *domain.ProjectDataset
	stats   domain.LoadStats
	reports *domain.ReportSet
	stale   bool
}

// NewController creates an Idle controller for cfg. A nil cfg uses config.Default().
func NewController(cfg *config.Config, logger *slog.Logger) *Controller {
	if cfg == nil {
		cfg = config.Default()
	}
	logger = infrastructure.WithComponent(logger, "pipeline")
	paths := config.NewPaths(cfg)

	c := &Controller{
		cfg:       cfg,
		paths:     paths,
		logger:    logger,
		validator: validation.NewFileValidator(logger),
		builder:   dataprocessing.NewReportBuilder(dataprocessing.ReportConfigFromPipeline(cfg.Pipeline), logger),
		writer:    exporter.NewReportWriter(paths, logger),
		metrics:   infrastructure.NewPipelineMetrics(),
		registry:  NewRegistry(),
		now:       time.Now,
		state:     StateIdle,
	}

	// Registration cannot fail here: IDs are fixed and distinct.
	_ = c.registry.Register(&reportsStep{writer: c.writer})
	if cfg.Export.Workbook {
		_ = c.registry.Register(&workbookStep{writer: exporter.NewWorkbookWriter(logger)})
	}
	if cfg.Export.Chart {
		_ = c.registry.Register(&chartStep{writer: exporter.NewChartWriter(logger)})
	}
	return c
}

// State returns the current controller state
func (c *Controller) State() State { return c.state }

// Dataset returns the loaded dataset, or nil while Idle
func (c *Controller) Dataset() *domain.ProjectDataset { return c.dataset }

// Stats returns the row counters of the last successful Load
func (c *Controller) Stats() domain.LoadStats { return c.stats }

// Reports returns the reports of the last successful Generate, or nil
func (c *Controller) Reports() *domain.ReportSet { return c.reports }

// Paths returns the resolved input and output locations
func (c *Controller) Paths() *config.Paths { return c.paths }

// Config returns the controller configuration
func (c *Controller) Config() *config.Config { return c.cfg }

// Metrics returns the controller's metric collectors
func (c *Controller) Metrics() *infrastructure.PipelineMetrics { return c.metrics }

// ReportsStale reports whether a Load happened after the last successful Generate
func (c *Controller) ReportsStale() bool { return c.stale }

// Load reads, cleans and filters the input file and replaces the dataset.
// On failure the state and the previous dataset are left unchanged.
func (c *Controller) Load(ctx context.Context) (*LoadResult, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	started := time.Now()
	path := c.paths.InputFile

	c.logger.InfoContext(ctx, "Loading input file", slog.String("file", path))

	result, dataset, err := c.load(ctx, path)
	if err != nil {
		c.metrics.RecordLoad(0, 0, 0, 0, err)
		c.flushMetrics(ctx)
		infrastructure.WithError(c.logger, err).ErrorContext(ctx, "Load failed",
			slog.String("file", path))
		return nil, err
	}

	c.dataset = dataset
	c.stats = result.Stats
	c.state = StateLoaded
	c.stale = true

	s := result.Stats
	c.metrics.RecordLoad(s.RowsRead, s.RowsRetained, s.ParseRejected, s.ValidationRejected, nil)
	c.metrics.ObserveStage("load", started)
	if artifact, ok := c.flushMetrics(ctx); ok {
		result.Artifacts = append(result.Artifacts, artifact)
	}

	c.logger.InfoContext(ctx, fmt.Sprintf("%d rows loaded, %d retained for %d-%d",
		s.RowsRead, s.RowsRetained, c.cfg.Pipeline.MinYear, c.cfg.Pipeline.MaxYear),
		slog.Int("rows_read", s.RowsRead),
		slog.Int("rows_retained", s.RowsRetained),
		slog.Int("parse_rejected", s.ParseRejected),
		slog.Int("validation_rejected", s.ValidationRejected),
		slog.Duration("duration", time.Since(started)))
	if dataset.IsEmpty() {
		c.logger.WarnContext(ctx, "No rows retained for the configured year range",
			slog.Int("min_year", c.cfg.Pipeline.MinYear),
			slog.Int("max_year", c.cfg.Pipeline.MaxYear))
	}

	return result, nil
}

func (c *Controller) load(ctx context.Context, path string) (*LoadResult, *domain.ProjectDataset, error) {
	if err := c.validator.ValidateInputFile(path); err != nil {
		return nil, nil, err
	}

	table, err := dataprocessing.ReadFile(path, c.logger)
	if err != nil {
		return nil, nil, err
	}
	if err := c.validator.ValidateHeaders(table.Headers); err != nil {
		return nil, nil, err
	}

	p := c.cfg.Pipeline
	dataset, stats := dataprocessing.CleanTable(table, dataprocessing.CleanerConfig{
		MinYear:           p.MinYear,
		MaxYear:           p.MaxYear,
		MaxMissingColumns: config.MaxMissingColumns,
	}, c.logger)
	dataset.SourcePath = path
	dataset.LoadedAt = c.now()

	result := &LoadResult{Stats: stats}
	if p.WriteCleaned {
		if err := c.validator.ValidateOutputDirectory(c.paths.OutputDir); err != nil {
			return nil, nil, err
		}
		artifact, err := c.writer.WriteCleaned(ctx, dataset)
		if err != nil {
			return nil, nil, err
		}
		result.Artifacts = append(result.Artifacts, artifact)
	}

	return result, dataset, nil
}

// Generate computes all reports from the loaded dataset and runs every export step.
// It returns a precondition error while Idle.
func (c *Controller) Generate(ctx context.Context) (*GenerateResult, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	started := time.Now()

	if !c.state.CanGenerate() {
		err := errors.NewPreconditionError(config.MsgLoadFirst)
		c.metrics.RecordGenerate(nil, err)
		c.logger.WarnContext(ctx, "Generate requested before Load",
			slog.String("state", c.state.String()))
		return nil, err
	}

	run, err := c.generate(ctx)
	if err != nil {
		c.metrics.RecordGenerate(nil, err)
		c.flushMetrics(ctx)
		return nil, err
	}

	c.reports = run.Reports
	c.stale = false

	c.metrics.RecordGenerate(map[string]int{
		"regional":    len(run.Reports.Regional),
		"contractors": len(run.Reports.Contractors),
		"trends":      len(run.Reports.Trends),
	}, nil)
	c.metrics.ObserveStage("generate", started)
	if artifact, ok := c.flushMetrics(ctx); ok {
		run.AddArtifact(artifact)
	}

	c.logger.InfoContext(ctx, "Reports generated",
		slog.Int("artifacts", len(run.Artifacts)),
		slog.Duration("duration", time.Since(started)))

	return &GenerateResult{Reports: run.Reports, Artifacts: run.Artifacts}, nil
}

func (c *Controller) generate(ctx context.Context) (*GenerateRun, error) {
	if err := c.validator.ValidateOutputDirectory(c.paths.OutputDir); err != nil {
		return nil, err
	}

	set, err := c.builder.Build(ctx, c.dataset)
	if err != nil {
		return nil, err
	}

	run := &GenerateRun{Reports: set, Paths: c.paths}
	for _, step := range c.registry.List() {
		stepStart := time.Now()
		c.logStepStart(ctx, step)
		if err := step.Execute(ctx, run); err != nil {
			c.logStepError(ctx, step, err)
			return nil, err
		}
		c.metrics.ObserveStage(step.ID(), stepStart)
		c.logStepComplete(ctx, step, time.Since(stepStart))
	}
	return run, nil
}

// flushMetrics writes the metrics textfile when enabled. Failures are logged, not returned.
func (c *Controller) flushMetrics(ctx context.Context) (domain.Artifact, bool) {
	if !c.cfg.Export.Metrics {
		return domain.Artifact{}, false
	}
	if err := c.metrics.WriteTextfile(c.paths.Metrics); err != nil {
		c.logger.WarnContext(ctx, "Failed to write metrics textfile",
			slog.String("path", c.paths.Metrics),
			slog.String("error", err.Error()))
		return domain.Artifact{}, false
	}
	return domain.Artifact{Name: "metrics", Format: domain.ReportFormatMetrics, Path: c.paths.Metrics}, true
}
