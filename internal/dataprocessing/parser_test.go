package dataprocessing

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dpwhcli/internal/errors"
	"dpwhcli/internal/shared/testutil"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "quoted comma", line: `A,"B,C",D`, want: []string{"A", "B,C", "D"}},
		{name: "trims fields", line: "  a , b  ,c ", want: []string{"a", "b", "c"}},
		{name: "empty middle field", line: "a,,b", want: []string{"a", "", "b"}},
		{name: "trailing comma", line: "a,", want: []string{"a", ""}},
		{name: "empty line", line: "", want: []string{""}},
		{name: "quoted thousands", line: `x,"1,234,567.89"`, want: []string{"x", "1,234,567.89"}},
		{name: "doubled quotes only toggle", line: `"say ""hi""",x`, want: []string{"say hi", "x"}},
		{name: "unterminated quote swallows commas", line: `"a,b`, want: []string{"a,b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLine(tt.line))
		})
	}
}

func TestReadRows(t *testing.T) {
	t.Run("bom, crlf and blank lines", func(t *testing.T) {
		input := "\ufeffRegion,FundingYear\r\nNCR,2021\r\n\r\n   \nCAR,2022\n"
		table, err := ReadRows(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, []string{"Region", "FundingYear"}, table.Headers)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, Row{Line: 2, Fields: []string{"NCR", "2021"}}, table.Rows[0])
		assert.Equal(t, Row{Line: 5, Fields: []string{"CAR", "2022"}}, table.Rows[1])
	})

	t.Run("header only", func(t *testing.T) {
		table, err := ReadRows(strings.NewReader("Region,FundingYear\n"))
		require.NoError(t, err)
		assert.Empty(t, table.Rows)
	})

	t.Run("no header", func(t *testing.T) {
		_, err := ReadRows(strings.NewReader("\n\r\n"))
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeParsing))
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("fixture", func(t *testing.T) {
		path := testutil.WriteProjectsCSV(t, dir)
		table, err := ReadFile(path, nil)
		require.NoError(t, err)

		assert.Len(t, table.Headers, 10)
		assert.Equal(t, "Region", table.Headers[0])
		assert.Len(t, table.Rows, testutil.ProjectsRowsRead)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(dir, "missing.csv")
		_, err := ReadFile(path, nil)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrTypeIO))
		assert.Contains(t, errors.UserMessage(err), path)
	})
}
