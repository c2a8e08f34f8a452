package operations

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dpwhcli/internal/config"
	"dpwhcli/internal/errors"
	"dpwhcli/internal/shared/testutil"
	"dpwhcli/pkg/contracts/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Pipeline.InputFile = testutil.WriteProjectsCSV(t, dir)
	cfg.Pipeline.OutputDir = filepath.Join(dir, "out")
	return cfg
}

func artifactNames(artifacts []domain.Artifact) []string {
	names := make([]string, len(artifacts))
	for i, a := range artifacts {
		names[i] = a.Name
	}
	return names
}

func TestController_GenerateBeforeLoad(t *testing.T) {
	c := NewController(testConfig(t), nil)

	_, err := c.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypePrecondition))
	assert.Equal(t, config.MsgLoadFirst, errors.UserMessage(err))
	assert.Equal(t, StateIdle, c.State())
	assert.False(t, c.ReportsStale())
}

func TestController_LoadMissingFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pipeline.InputFile = filepath.Join(t.TempDir(), "missing.csv")
	logger, handler := testutil.NewTestLogger(t)
	c := NewController(cfg, logger)

	_, err := c.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeIO))
	assert.Equal(t, StateIdle, c.State())
	assert.Nil(t, c.Dataset())

	record, found := handler.FindMessage("Load failed")
	require.True(t, found)
	assert.Equal(t, "IO", record.Attrs["error_type"])
	assert.Equal(t, cfg.Pipeline.InputFile, record.Attrs["file"])
}

func TestController_LoadMissingColumns(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pipeline.InputFile = testutil.WriteFile(t, t.TempDir(), "bad.csv", "Region,MainIsland\nNCR,Luzon\n")
	c := NewController(cfg, nil)

	_, err := c.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))
	assert.Equal(t, StateIdle, c.State())
}

func TestController_LoadAndGenerate(t *testing.T) {
	cfg := testConfig(t)
	logger, handler := testutil.NewTestLogger(t)
	c := NewController(cfg, logger)
	ctx := context.Background()

	loaded, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, StateLoaded, c.State())
	assert.True(t, c.ReportsStale())
	assert.Equal(t, domain.LoadStats{
		RowsRead:           testutil.ProjectsRowsRead,
		RowsRetained:       testutil.ProjectsRowsRetained,
		ParseRejected:      testutil.ProjectsParseRejected,
		ValidationRejected: testutil.ProjectsValidationRejected,
	}, loaded.Stats)
	assert.Equal(t, []string{"cleaned", "metrics"}, artifactNames(loaded.Artifacts))
	assert.FileExists(t, c.Paths().CleanedData)
	assert.Equal(t, cfg.Pipeline.InputFile, c.Dataset().SourcePath)
	testutil.AssertLogContains(t, handler, slog.LevelInfo, "11 rows loaded, 8 retained for 2021-2023")

	generated, err := c.Generate(ctx)
	require.NoError(t, err)
	assert.False(t, c.ReportsStale())
	assert.Same(t, generated.Reports, c.Reports())
	assert.Equal(t,
		[]string{"regional", "contractors", "trends", "summary", "workbook", "chart", "metrics"},
		artifactNames(generated.Artifacts))
	for _, a := range generated.Artifacts {
		assert.FileExists(t, a.Path, a.Name)
	}

	require.Len(t, generated.Reports.Contractors, 1)
	assert.Equal(t, "Alpha Builders", generated.Reports.Contractors[0].Contractor)
	assert.Equal(t, 470000.0, generated.Reports.Summary.TotalSavings)

	metrics, err := os.ReadFile(c.Paths().Metrics)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `dpwh_pipeline_generations_total{outcome="ok"} 1`)
	assert.Contains(t, string(metrics), "dpwh_pipeline_rows_retained_total 8")

	t.Run("reload marks reports stale", func(t *testing.T) {
		_, err := c.Load(ctx)
		require.NoError(t, err)
		assert.True(t, c.ReportsStale())
		assert.NotNil(t, c.Reports())
	})
}

func TestController_FailedReloadKeepsDataset(t *testing.T) {
	cfg := testConfig(t)
	c := NewController(cfg, nil)
	ctx := context.Background()

	_, err := c.Load(ctx)
	require.NoError(t, err)
	before := c.Dataset()

	require.NoError(t, os.Remove(cfg.Pipeline.InputFile))
	_, err = c.Load(ctx)
	require.Error(t, err)

	assert.Equal(t, StateLoaded, c.State())
	assert.Same(t, before, c.Dataset())
	assert.Equal(t, testutil.ProjectsRowsRetained, c.Stats().RowsRetained)
}

func TestController_ExportsDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pipeline.WriteCleaned = false
	cfg.Export = config.ExportConfig{}
	c := NewController(cfg, nil)
	ctx := context.Background()

	loaded, err := c.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Artifacts)
	assert.NoFileExists(t, c.Paths().CleanedData)

	generated, err := c.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"regional", "contractors", "trends", "summary"}, artifactNames(generated.Artifacts))
	assert.NoFileExists(t, c.Paths().Workbook)
	assert.NoFileExists(t, c.Paths().Chart)
	assert.NoFileExists(t, c.Paths().Metrics)
}

func TestController_EmptyDatasetGeneratesEmptyReports(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pipeline.InputFile = testutil.WriteFile(t, t.TempDir(), "header_only.csv", testutil.ProjectsHeader+"\n")
	logger, handler := testutil.NewTestLogger(t)
	c := NewController(cfg, logger)
	ctx := context.Background()

	_, err := c.Load(ctx)
	require.NoError(t, err)
	assert.True(t, c.Dataset().IsEmpty())
	testutil.AssertLogContains(t, handler, slog.LevelWarn, "No rows retained")

	generated, err := c.Generate(ctx)
	require.NoError(t, err)
	assert.Empty(t, generated.Reports.Regional)
	assert.NotContains(t, artifactNames(generated.Artifacts), "chart")
	assert.FileExists(t, c.Paths().RegionalReport)
}
