package exporter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "efficiency_scores.png")

	artifact, ok, err := NewChartWriter(nil).Write(context.Background(), path, sampleReportSet().Regional)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, artifact.Rows)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestChartWriter_SkipsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "efficiency_scores.png")

	_, ok, err := NewChartWriter(nil).Write(context.Background(), path, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoFileExists(t, path)
}
