package dataprocessing

import (
	"context"
	"log/slog"
	"time"

	"dpwhcli/internal/config"
	"dpwhcli/internal/errors"
	"dpwhcli/pkg/contracts/domain"
)

// ReportConfig carries every tunable used by the three reports
type ReportConfig struct {
	HighDelayDays int
	BaselineYear  int
	Contractors   ContractorConfig
}

// ReportConfigFromPipeline derives report settings from the pipeline configuration
func ReportConfigFromPipeline(cfg config.PipelineConfig) ReportConfig {
	return ReportConfig{
		HighDelayDays: cfg.HighDelayDays,
		BaselineYear:  cfg.MinYear,
		Contractors: ContractorConfig{
			MinProjects:  cfg.MinContractorProjects,
			Top:          cfg.TopContractors,
			DelayHorizon: cfg.ReliabilityDelayHorizon,
		},
	}
}

// DefaultReportConfig returns the settings for the standard 2021-2023 reports
func DefaultReportConfig() ReportConfig {
	return ReportConfigFromPipeline(config.Default().Pipeline)
}

// ReportBuilder computes a full ReportSet from one dataset
type ReportBuilder struct {
	cfg        ReportConfig
	summarizer *Summarizer
	logger     *slog.Logger
	now        func() time.Time
}

// NewReportBuilder creates a report builder
func NewReportBuilder(cfg ReportConfig, logger *slog.Logger) *ReportBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportBuilder{
		cfg:        cfg,
		summarizer: NewSummarizer(logger),
		logger:     logger,
		now:        time.Now,
	}
}

// Build runs all three scorers and the summary over dataset
func (b *ReportBuilder) Build(ctx context.Context, dataset *domain.ProjectDataset) (*domain.ReportSet, error) {
	if dataset == nil {
		return nil, errors.NewPreconditionError(config.MsgLoadFirst)
	}

	start := b.now()
	records := dataset.Records

	set := &domain.ReportSet{
		Regional:    BuildRegionalReport(records, b.cfg.HighDelayDays),
		Contractors: BuildContractorRanking(records, b.cfg.Contractors),
		Trends:      BuildAnnualTrends(records, b.cfg.BaselineYear),
		Summary:     b.summarizer.Summarize(ctx, dataset),
		GeneratedAt: start,
	}

	b.logger.InfoContext(ctx, "Reports computed",
		slog.Int("records", len(records)),
		slog.Int("regions", len(set.Regional)),
		slog.Int("contractors", len(set.Contractors)),
		slog.Int("trends", len(set.Trends)),
		slog.Duration("elapsed", time.Since(start)))

	return set, nil
}
