package dataprocessing

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"dpwhcli/internal/errors"
)

const utf8BOM = "\ufeff"

// Row is one parsed data line with its 1-based line number in the source file
type Row struct {
	Line   int
	Fields []string
}

// Table is a parsed source file: the header row plus every non-blank data row
type Table struct {
	Headers []string
	Rows    []Row
}

// ParseLine splits a comma-delimited line into trimmed fields.
// A double quote toggles quoted mode and is dropped; commas inside quotes are
// literal. Doubled quotes are not treated as an escaped quote.
func ParseLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}

// ReadRows parses a whole source stream. Lines may end in \n or \r\n; blank
// lines are skipped. The first non-blank line is the header.
func ReadRows(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIOError("failed to read input", err)
	}

	lines := strings.Split(string(data), "\n")
	table := &Table{}

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if table.Headers == nil {
			table.Headers = ParseLine(strings.TrimPrefix(line, utf8BOM))
			continue
		}

		table.Rows = append(table.Rows, Row{Line: i + 1, Fields: ParseLine(line)})
	}

	if table.Headers == nil {
		return nil, errors.NewParsingError("input has no header row", nil)
	}

	return table, nil
}

// ReadFile opens path and parses it with ReadRows
func ReadFile(path string, logger *slog.Logger) (*Table, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewIOError("Input file not found", err).WithContext("path", path)
		}
		return nil, errors.NewIOError("Input file is not readable", err).WithContext("path", path)
	}
	defer f.Close()

	table, err := ReadRows(f)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr.WithContext("path", path)
		}
		return nil, errors.NewParsingError(fmt.Sprintf("failed to parse %s", path), err)
	}

	logger.Debug("Parsed input file",
		slog.String("file", path),
		slog.Int("columns", len(table.Headers)),
		slog.Int("rows", len(table.Rows)))

	return table, nil
}
