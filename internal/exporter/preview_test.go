package exporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dpwhcli/internal/config"
)

func TestPreviewer_RenderReports(t *testing.T) {
	var buf bytes.Buffer
	paths := config.NewPaths(config.Default())

	require.NoError(t, NewPreviewer(&buf, DefaultPreviewOptions()).RenderReports(sampleReportSet(), paths))
	out := buf.String()

	for _, want := range []string{
		"Report 1: Regional Flood Mitigation Efficiency Summary",
		"Report 2: Top Contractors Performance Ranking (Top 15, >=5 Projects)",
		"Report 3: Annual Project Type Cost Overrun Trends",
		"(Filtered: 2021-2023 Projects)",
		"2,400,000.00",
		"-50,000.00",
		"(2 rows total, full table exported to report1_regional_summary.csv)",
		"(1 rows total, full table exported to report2_contractor_ranking.csv)",
		"Summary Stats (summary.json):",
		`"TotalProjects": 8`,
		"Global Average Delay: 26.25 days",
		"Total Savings: 470,000.00",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPreviewer_LimitsRows(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultPreviewOptions()
	opts.Rows = 1

	require.NoError(t, NewPreviewer(&buf, opts).RenderReports(sampleReportSet(), config.NewPaths(config.Default())))
	out := buf.String()

	assert.Contains(t, out, "Region VII")
	assert.NotContains(t, out, "3,900,000.00")
	assert.Contains(t, out, "(2 rows total")
}

func TestPreviewOptionsFromPipeline(t *testing.T) {
	p := config.Default().Pipeline
	p.PreviewRows = 5
	p.MinYear = 2022

	opts := PreviewOptionsFromPipeline(p)
	assert.Equal(t, PreviewOptions{Rows: 5, MinYear: 2022, MaxYear: 2023, TopContractors: 15, MinProjects: 5}, opts)
}
