package operations

import (
	"context"

	"dpwhcli/internal/config"
	"dpwhcli/internal/exporter"
	"dpwhcli/pkg/contracts/domain"
)

// Step IDs
const (
	StepReports  = "reports"
	StepWorkbook = "workbook"
	StepChart    = "chart"
)

// Step represents a single output step of Generate
type Step interface {
	// ID returns the unique identifier for this Step
	ID() string

	// Name returns the human-readable name for this Step
	Name() string

	// Execute writes the step's output for run and records its artifacts
	Execute(ctx context.Context, run *GenerateRun) error
}

// GenerateRun carries one Generate call's reports between steps
type GenerateRun struct {
	Reports   *domain.ReportSet
	Paths     *config.Paths
	Artifacts []domain.Artifact
}

// AddArtifact records files written by a step
func (r *GenerateRun) AddArtifact(artifacts ...domain.Artifact) {
	r.Artifacts = append(r.Artifacts, artifacts...)
}

// reportsStep writes the three report CSVs and summary.json
type reportsStep struct {
	writer *exporter.ReportWriter
}

func (s *reportsStep) ID() string   { return StepReports }
func (s *reportsStep) Name() string { return "Report files" }

func (s *reportsStep) Execute(ctx context.Context, run *GenerateRun) error {
	artifacts, err := s.writer.WriteReports(ctx, run.Reports)
	run.AddArtifact(artifacts...)
	return err
}

// workbookStep writes reports.xlsx
type workbookStep struct {
	writer *exporter.WorkbookWriter
}

func (s *workbookStep) ID() string   { return StepWorkbook }
func (s *workbookStep) Name() string { return "Excel workbook" }

func (s *workbookStep) Execute(ctx context.Context, run *GenerateRun) error {
	artifact, err := s.writer.Write(ctx, run.Paths.Workbook, run.Reports)
	if err != nil {
		return err
	}
	run.AddArtifact(artifact)
	return nil
}

// chartStep writes the efficiency bar chart when there are regional rows
type chartStep struct {
	writer *exporter.ChartWriter
}

func (s *chartStep) ID() string   { return StepChart }
func (s *chartStep) Name() string { return "Efficiency chart" }

func (s *chartStep) Execute(ctx context.Context, run *GenerateRun) error {
	artifact, ok, err := s.writer.Write(ctx, run.Paths.Chart, run.Reports.Regional)
	if err != nil {
		return err
	}
	if ok {
		run.AddArtifact(artifact)
	}
	return nil
}
