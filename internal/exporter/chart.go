package exporter

import (
	"context"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"dpwhcli/internal/errors"
	"dpwhcli/pkg/contracts/domain"
)

const (
	chartWidth    = 10 * vg.Inch
	chartHeight   = 6 * vg.Inch
	chartBarWidth = 18
)

var chartBarColor = color.RGBA{R: 33, G: 102, B: 172, A: 255}

// ChartWriter renders the regional efficiency scores as a bar chart
type ChartWriter struct {
	logger *slog.Logger
}

// NewChartWriter creates a chart writer
func NewChartWriter(logger *slog.Logger) *ChartWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartWriter{logger: logger}
}

// Write saves a PNG bar chart of EfficiencyScore per region to path.
// It reports ok=false and writes nothing when there are no regional rows.
func (c *ChartWriter) Write(ctx context.Context, path string, rows []domain.RegionSummary) (domain.Artifact, bool, error) {
	if len(rows) == 0 {
		c.logger.DebugContext(ctx, "Chart skipped, no regional rows")
		return domain.Artifact{}, false, nil
	}

	values := make(plotter.Values, len(rows))
	labels := make([]string, len(rows))
	for i, r := range rows {
		values[i] = r.EfficiencyScore
		labels[i] = r.Region + " / " + r.MainIsland
	}

	p := plot.New()
	p.Title.Text = "Regional Efficiency Score"
	p.Y.Label.Text = "Efficiency Score (0-100)"
	p.Y.Min = 0
	p.Y.Max = 100
	p.BackgroundColor = color.White

	bars, err := plotter.NewBarChart(values, vg.Points(chartBarWidth))
	if err != nil {
		return domain.Artifact{}, false, errors.NewStorageError("failed to build chart", err).WithContext("path", path)
	}
	bars.Color = chartBarColor
	bars.LineStyle.Width = 0
	p.Add(bars)

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return domain.Artifact{}, false, errors.NewStorageError("failed to create directory", err).WithContext("path", dir)
		}
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return domain.Artifact{}, false, errors.NewStorageError("failed to save chart", err).WithContext("path", path)
	}

	c.logger.InfoContext(ctx, "Chart written",
		slog.String("path", path),
		slog.Int("bars", len(rows)))
	return domain.Artifact{Name: "chart", Format: domain.ReportFormatPNG, Path: path, Rows: len(rows)}, true, nil
}
