package dataprocessing

import (
	"context"
	"log/slog"
	"math"

	"dpwhcli/pkg/contracts/domain"
)

// Summarizer computes the dataset-wide summary record
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a new summarizer
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// Summarize counts projects, distinct contractors and provinces, and totals
// delay and savings. TotalProvinces is nil when the source had no Province
// column. Averages and totals are rounded to two decimals.
func (s *Summarizer) Summarize(ctx context.Context, dataset *domain.ProjectDataset) domain.Summary {
	if dataset == nil {
		return domain.Summary{}
	}
	records := dataset.Records

	summary := domain.Summary{
		TotalProjects:    Count(records),
		TotalContractors: Distinct(records, func(r domain.ProjectRecord) string { return r.Contractor }),
		GlobalAvgDelay:   Round2(Mean(Project(records, func(r domain.ProjectRecord) float64 { return float64(r.CompletionDelayDays) }))),
		TotalSavings:     Round2(Sum(Project(records, func(r domain.ProjectRecord) float64 { return r.CostSavings }))),
	}
	if dataset.HasProvince {
		provinces := Distinct(records, func(r domain.ProjectRecord) string { return r.Province })
		summary.TotalProvinces = &provinces
	}

	s.logger.DebugContext(ctx, "Computed dataset summary",
		slog.Int("total_projects", summary.TotalProjects),
		slog.Int("total_contractors", summary.TotalContractors),
		slog.Float64("total_savings", summary.TotalSavings))

	return summary
}

// Round2 rounds half away from zero to two decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
