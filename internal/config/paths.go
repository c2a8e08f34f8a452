package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"dpwhcli/internal/errors"
)

// Paths contains every file path the pipeline reads or writes.
// Output files always live directly under OutputDir.
type Paths struct {
	InputFile string
	OutputDir string
	LogsDir   string
	LogFile   string

	// Report files
	RegionalReport   string
	ContractorReport string
	TrendsReport     string
	SummaryFile      string

	// Supplemental artifacts
	CleanedData string
	Workbook    string
	Chart       string
	Metrics     string
}

// NewPaths resolves all paths from the pipeline and logging configuration
func NewPaths(cfg *Config) *Paths {
	out := cfg.Pipeline.OutputDir
	if out == "" {
		out = DefaultOutputDir
	}
	logFile := cfg.Logging.FilePath
	if logFile == "" {
		logFile = DefaultLogFile
	}

	return &Paths{
		InputFile: cfg.Pipeline.InputFile,
		OutputDir: out,
		LogsDir:   filepath.Dir(logFile),
		LogFile:   logFile,

		RegionalReport:   filepath.Join(out, RegionalReportCSV),
		ContractorReport: filepath.Join(out, ContractorReportCSV),
		TrendsReport:     filepath.Join(out, TrendsReportCSV),
		SummaryFile:      filepath.Join(out, SummaryJSON),

		CleanedData: filepath.Join(out, CleanedDataCSV),
		Workbook:    filepath.Join(out, ReportsWorkbook),
		Chart:       filepath.Join(out, EfficiencyChartPNG),
		Metrics:     filepath.Join(out, MetricsTextfile),
	}
}

// EnsureDirectories creates the output and log directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.OutputDir,
		p.LogsDir,
	}

	logger := slog.Default()

	for _, dir := range directories {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.NewStorageError("failed to create directory", err).WithContext("path", dir)
		}
		logger.Debug("Ensured directory exists", slog.String("path", dir))
	}

	return nil
}

// ReportFiles returns the three report CSV paths in report order
func (p *Paths) ReportFiles() []string {
	return []string{p.RegionalReport, p.ContractorReport, p.TrendsReport}
}
