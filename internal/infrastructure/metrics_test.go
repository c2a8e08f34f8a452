package infrastructure

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineMetrics_RecordLoad(t *testing.T) {
	m := NewPipelineMetrics()

	m.RecordLoad(10, 7, 1, 2, nil)
	m.RecordLoad(5, 5, 0, 0, nil)
	m.RecordLoad(0, 0, 0, 0, errors.New("missing file"))

	assert.Equal(t, 15.0, testutil.ToFloat64(m.rowsRead))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.rowsRetained))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rowsRejected.WithLabelValues("parse")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.rowsRejected.WithLabelValues("validation")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.loads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("error")))
}

func TestPipelineMetrics_RecordGenerate(t *testing.T) {
	m := NewPipelineMetrics()

	m.RecordGenerate(map[string]int{"regional": 4, "contractors": 15}, nil)
	m.RecordGenerate(nil, errors.New("write failed"))

	assert.Equal(t, 4.0, testutil.ToFloat64(m.reportRows.WithLabelValues("regional")))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.reportRows.WithLabelValues("contractors")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues("error")))
	assert.Greater(t, testutil.ToFloat64(m.lastSuccess), 0.0)
}

func TestPipelineMetrics_WriteTextfile(t *testing.T) {
	m := NewPipelineMetrics()
	m.RecordLoad(3, 2, 1, 0, nil)
	m.ObserveStage("load", time.Now().Add(-10*time.Millisecond))

	path := filepath.Join(t.TempDir(), "metrics", "pipeline_metrics.prom")
	require.NoError(t, m.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "dpwh_pipeline_rows_read_total 3")
	assert.Contains(t, text, "dpwh_pipeline_rows_retained_total 2")
	assert.Contains(t, text, `dpwh_pipeline_stage_duration_seconds_count{stage="load"} 1`)

	count, err := testutil.GatherAndCount(m.Registry(), "dpwh_pipeline_rows_read_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
