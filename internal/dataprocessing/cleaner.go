package dataprocessing

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"dpwhcli/internal/config"
	"dpwhcli/internal/errors"
	"dpwhcli/pkg/contracts/domain"
)

// dateLayouts are tried in order for StartDate and ActualCompletionDate
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
}

// CleanerConfig holds the retention rules applied to every row
type CleanerConfig struct {
	MinYear           int
	MaxYear           int
	MaxMissingColumns int
}

// DefaultCleanerConfig returns the 2021-2023 filter
func DefaultCleanerConfig() CleanerConfig {
	return CleanerConfig{
		MinYear:           config.DefaultMinYear,
		MaxYear:           config.DefaultMaxYear,
		MaxMissingColumns: config.MaxMissingColumns,
	}
}

// Cleaner turns parsed rows into validated project records and counts what it drops
type Cleaner struct {
	cfg      CleanerConfig
	validate *validator.Validate
	logger   *slog.Logger
	stats    domain.LoadStats
}

// NewCleaner creates a cleaner with zeroed counters
func NewCleaner(cfg CleanerConfig, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{
		cfg:      cfg,
		validate: validator.New(),
		logger:   logger,
	}
}

// Stats returns the counters accumulated so far
func (c *Cleaner) Stats() domain.LoadStats {
	return c.stats
}

// Clean builds a ProjectRecord from one row of fields. Rejected rows return a
// PARSING error when the row shape is wrong and a VALIDATION error otherwise.
func (c *Cleaner) Clean(fields, headers []string) (domain.ProjectRecord, error) {
	c.stats.RowsRead++

	rec, err := c.clean(fields, headers)
	if err != nil {
		if errors.IsType(err, errors.ErrTypeParsing) {
			c.stats.ParseRejected++
		} else {
			c.stats.ValidationRejected++
		}
		return domain.ProjectRecord{}, err
	}

	c.stats.RowsRetained++
	return rec, nil
}

func (c *Cleaner) clean(fields, headers []string) (domain.ProjectRecord, error) {
	if len(fields) < len(headers)-c.cfg.MaxMissingColumns {
		return domain.ProjectRecord{}, errors.NewParsingError(
			fmt.Sprintf("row has %d fields, header has %d", len(fields), len(headers)), nil)
	}

	row := make(domain.RawRow, len(headers))
	for i, h := range headers {
		if i < len(fields) {
			row[h] = fields[i]
		} else {
			row[h] = ""
		}
	}

	yearText, _ := row.Get(domain.ColumnFundingYear...)
	year, err := parseYear(yearText)
	if err != nil {
		return domain.ProjectRecord{}, fieldError("FundingYear", yearText, err)
	}
	if err := c.validate.Var(year, fmt.Sprintf("gte=%d,lte=%d", c.cfg.MinYear, c.cfg.MaxYear)); err != nil {
		return domain.ProjectRecord{}, errors.NewAppValidationError(
			fmt.Sprintf("FundingYear %d outside %d-%d", year, c.cfg.MinYear, c.cfg.MaxYear), nil)
	}

	budgetText, _ := row.Get(domain.ColumnApprovedBudget...)
	budget, err := parseAmount(budgetText)
	if err != nil {
		return domain.ProjectRecord{}, fieldError("ApprovedBudgetForContract", budgetText, err)
	}

	costText, _ := row.Get(domain.ColumnContractCost...)
	cost, err := parseAmount(costText)
	if err != nil {
		return domain.ProjectRecord{}, fieldError("ContractCost", costText, err)
	}

	startText, _ := row.Get(domain.ColumnStartDate...)
	start, err := parseDate(startText)
	if err != nil {
		return domain.ProjectRecord{}, fieldError("StartDate", startText, err)
	}

	endText, _ := row.Get(domain.ColumnActualCompletionDate...)
	end, err := parseDate(endText)
	if err != nil {
		return domain.ProjectRecord{}, fieldError("ActualCompletionDate", endText, err)
	}

	rec := domain.ProjectRecord{
		FundingYear:          year,
		ApprovedBudget:       budget,
		ContractCostNum:      cost,
		StartDate:            start,
		ActualCompletionDate: end,
		CostSavings:          budget - cost,
		CompletionDelayDays:  DaysBetween(start, end),
	}
	rec.Region, _ = row.Get(domain.ColumnRegion...)
	rec.MainIsland, _ = row.Get(domain.ColumnMainIsland...)
	rec.Province, _ = row.Get(domain.ColumnProvince...)
	rec.Contractor, _ = row.Get(domain.ColumnContractor...)
	rec.TypeOfWork, _ = row.Get(domain.ColumnTypeOfWork...)

	if err := c.validate.Struct(rec); err != nil {
		return domain.ProjectRecord{}, errors.NewAppValidationError("record failed validation", err)
	}

	return rec, nil
}

// CleanTable runs every row of table through a new Cleaner and returns the
// retained records as a dataset together with the row counters.
func CleanTable(table *Table, cfg CleanerConfig, logger *slog.Logger) (*domain.ProjectDataset, domain.LoadStats) {
	c := NewCleaner(cfg, logger)
	dataset := &domain.ProjectDataset{
		HasProvince: domain.HasColumn(table.Headers, domain.ColumnProvince),
		Records:     make([]domain.ProjectRecord, 0, len(table.Rows)),
	}

	for _, row := range table.Rows {
		rec, err := c.Clean(row.Fields, table.Headers)
		if err != nil {
			c.logger.Debug("Row rejected",
				slog.Int("line", row.Line),
				slog.String("reason", err.Error()))
			continue
		}
		dataset.Records = append(dataset.Records, rec)
	}

	return dataset, c.Stats()
}

// DaysBetween returns the whole calendar days from start to end, rounding toward negative infinity
func DaysBetween(start, end time.Time) int {
	return int(math.Floor(end.Sub(start).Hours() / 24))
}

func fieldError(column, value string, cause error) error {
	return errors.NewAppValidationError(fmt.Sprintf("invalid %s %q", column, value), cause).
		WithContext("column", column)
}

func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if year, err := strconv.Atoi(s); err == nil {
		return year, nil
	}
	// Spreadsheet exports sometimes write years as 2022.0
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("year %q is not a whole number", s)
	}
	return int(f), nil
}

func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("amount %q is not finite", s)
	}
	return v, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
