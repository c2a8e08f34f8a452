package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"dpwhcli/internal/config"
	"dpwhcli/internal/errors"
	"dpwhcli/pkg/contracts/domain"
)

// ReportWriter writes the report CSV files, the summary record and the cleaned dataset
type ReportWriter struct {
	paths  *config.Paths
	csv    *CSVWriter
	logger *slog.Logger
}

// NewReportWriter creates a report writer rooted at paths
func NewReportWriter(paths *config.Paths, logger *slog.Logger) *ReportWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportWriter{
		paths:  paths,
		csv:    NewCSVWriter(logger),
		logger: logger,
	}
}

// WriteReports writes the three report CSVs and summary.json, in that order.
// It stops at the first failure.
func (w *ReportWriter) WriteReports(ctx context.Context, set *domain.ReportSet) ([]domain.Artifact, error) {
	tables := []struct {
		name    string
		path    string
		headers []string
		records [][]string
	}{
		{"regional", w.paths.RegionalReport, domain.RegionalColumns, RegionalRecords(set.Regional)},
		{"contractors", w.paths.ContractorReport, domain.ContractorColumns, ContractorRecords(set.Contractors)},
		{"trends", w.paths.TrendsReport, domain.TrendColumns, TrendRecords(set.Trends)},
	}

	artifacts := make([]domain.Artifact, 0, len(tables)+1)
	for _, t := range tables {
		if err := w.csv.WriteCSV(t.path, WriteOptions{Headers: t.headers, Records: t.records}); err != nil {
			w.logger.ErrorContext(ctx, "Failed to write report",
				slog.String("report", t.name),
				slog.String("path", t.path),
				slog.String("error", err.Error()))
			return artifacts, err
		}
		artifacts = append(artifacts, domain.Artifact{
			Name:   t.name,
			Format: domain.ReportFormatCSV,
			Path:   t.path,
			Rows:   len(t.records),
		})
		w.logger.InfoContext(ctx, "Report written",
			slog.String("report", t.name),
			slog.String("path", t.path),
			slog.Int("rows", len(t.records)))
	}

	summary, err := w.WriteSummary(ctx, set.Summary)
	if err != nil {
		return artifacts, err
	}
	return append(artifacts, summary), nil
}

// WriteSummary writes the summary record as indented JSON
func (w *ReportWriter) WriteSummary(ctx context.Context, summary domain.Summary) (domain.Artifact, error) {
	path := w.paths.SummaryFile
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return domain.Artifact{}, errors.NewStorageError("failed to encode summary", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return domain.Artifact{}, errors.NewStorageError("failed to create directory", err).WithContext("path", dir)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return domain.Artifact{}, errors.NewStorageError("failed to write summary", err).WithContext("path", path)
	}

	w.logger.InfoContext(ctx, "Summary written", slog.String("path", path))
	return domain.Artifact{Name: "summary", Format: domain.ReportFormatJSON, Path: path, Rows: 1}, nil
}

// WriteCleaned streams every retained record to the cleaned dataset file
func (w *ReportWriter) WriteCleaned(ctx context.Context, dataset *domain.ProjectDataset) (domain.Artifact, error) {
	path := w.paths.CleanedData
	stream, err := w.csv.CreateStreamWriter(path, domain.CleanedColumns)
	if err != nil {
		return domain.Artifact{}, err
	}

	for _, rec := range dataset.Records {
		if err := stream.WriteRecord(CleanedRecord(rec)); err != nil {
			stream.Close()
			return domain.Artifact{}, errors.NewStorageError("failed to write cleaned record", err).WithContext("path", path)
		}
	}
	if err := stream.Close(); err != nil {
		return domain.Artifact{}, errors.NewStorageError("failed to flush cleaned dataset", err).WithContext("path", path)
	}

	w.logger.InfoContext(ctx, "Cleaned dataset written",
		slog.String("path", path),
		slog.Int("rows", stream.Rows()))
	return domain.Artifact{Name: "cleaned", Format: domain.ReportFormatCSV, Path: path, Rows: stream.Rows()}, nil
}

// RegionalRecords converts regional rows to CSV records in RegionalColumns order
func RegionalRecords(rows []domain.RegionSummary) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{
			r.Region,
			r.MainIsland,
			formatFloat(r.TotalBudget),
			formatFloat(r.MedianSavings),
			formatFloat(r.AvgDelay),
			formatFloat(r.HighDelayPct),
			formatFloat(r.EfficiencyScore),
		}
	}
	return out
}

// ContractorRecords converts ranking rows to CSV records in ContractorColumns order
func ContractorRecords(rows []domain.ContractorSummary) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{
			formatInt(r.Rank),
			r.Contractor,
			formatFloat(r.TotalCost),
			formatInt(r.NumProjects),
			formatFloat(r.AvgDelay),
			formatFloat(r.TotalSavings),
			formatFloat(r.ReliabilityIndex),
			r.RiskFlag,
		}
	}
	return out
}

// TrendRecords converts trend rows to CSV records in TrendColumns order
func TrendRecords(rows []domain.AnnualTrend) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{
			formatInt(r.FundingYear),
			r.TypeOfWork,
			formatInt(r.TotalProjects),
			formatFloat(r.AvgSavings),
			formatFloat(r.OverrunRate),
			formatFloat(r.YoYChangePercent),
		}
	}
	return out
}

// CleanedRecord converts one project to a record in CleanedColumns order
func CleanedRecord(r domain.ProjectRecord) []string {
	return []string{
		r.Region,
		r.MainIsland,
		r.Province,
		r.Contractor,
		r.TypeOfWork,
		formatInt(r.FundingYear),
		formatFloat(r.ApprovedBudget),
		formatFloat(r.ContractCostNum),
		formatDate(r.StartDate),
		formatDate(r.ActualCompletionDate),
		formatFloat(r.CostSavings),
		formatInt(r.CompletionDelayDays),
	}
}
