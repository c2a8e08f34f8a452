package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dpwhcli/internal/errors"
	"dpwhcli/pkg/contracts/domain"
)

// FileValidator checks input and output locations before the pipeline touches them
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateInputFile checks that path names an existing, non-empty regular file
func (v *FileValidator) ValidateInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Input file does not exist",
			slog.String("file", path))
		return errors.NewIOError("Input file not found", err).WithContext("path", path)
	}
	if err != nil {
		v.logger.Error("Failed to stat input file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return errors.NewIOError("Input file is not readable", err).WithContext("path", path)
	}
	if info.IsDir() {
		v.logger.Error("Input path is a directory, not a file",
			slog.String("path", path))
		return errors.NewIOError(fmt.Sprintf("%s is a directory, not a file", path), nil)
	}
	if info.Size() == 0 {
		v.logger.Error("Input file is empty",
			slog.String("file", path))
		return errors.NewParsingError(fmt.Sprintf("%s is empty", path), nil)
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".csv" && ext != ".txt" {
		v.logger.Warn("Input file has an unexpected extension",
			slog.String("file", path),
			slog.String("extension", ext))
	}

	v.logger.Debug("Input file validated",
		slog.String("file", path),
		slog.Int64("size_bytes", info.Size()))
	return nil
}

// ValidateOutputDirectory ensures output directory exists or can be created
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return errors.NewStorageError(fmt.Sprintf("failed to create output directory %s", dir), err)
	}

	// Verify it's writable by creating a test file
	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return errors.NewStorageError(fmt.Sprintf("output directory %s is not writable", dir), err)
	}
	file.Close()
	os.Remove(testFile)

	v.logger.Debug("Output directory validated",
		slog.String("directory", dir))
	return nil
}

// ValidateHeaders checks that every required column is present in the header row
func (v *FileValidator) ValidateHeaders(headers []string) error {
	var missing []string
	for _, column := range domain.RequiredColumns {
		if !domain.HasColumn(headers, column) {
			missing = append(missing, strings.Join(column, "|"))
		}
	}

	if len(missing) > 0 {
		v.logger.Error("Input file is missing required columns",
			slog.Any("missing", missing))
		return errors.NewAppValidationError(
			fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")), nil,
		).WithContext("missing", missing)
	}

	if !domain.HasColumn(headers, domain.ColumnProvince) {
		v.logger.Info("Province column not present; province totals will be omitted")
	}
	return nil
}
