package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"dpwhcli/internal/errors"
	"dpwhcli/pkg/contracts/domain"
)

// Workbook sheet names
const (
	SheetRegional    = "Regional"
	SheetContractors = "Contractors"
	SheetTrends      = "Trends"
	SheetSummary     = "Summary"
)

// WorkbookWriter writes all reports into one spreadsheet, one sheet per report
type WorkbookWriter struct {
	logger *slog.Logger
}

// NewWorkbookWriter creates a workbook writer
func NewWorkbookWriter(logger *slog.Logger) *WorkbookWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookWriter{logger: logger}
}

// sheetData is one sheet worth of header plus typed rows
type sheetData struct {
	name    string
	headers []string
	rows    [][]interface{}
}

// Write saves the report set to path as an xlsx workbook
func (w *WorkbookWriter) Write(ctx context.Context, path string, set *domain.ReportSet) (domain.Artifact, error) {
	sheets := []sheetData{
		{SheetRegional, domain.RegionalColumns, regionalCells(set.Regional)},
		{SheetContractors, domain.ContractorColumns, contractorCells(set.Contractors)},
		{SheetTrends, domain.TrendColumns, trendCells(set.Trends)},
		summarySheet(set.Summary),
	}

	f := excelize.NewFile()
	defer f.Close()

	rows := 0
	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return domain.Artifact{}, errors.NewStorageError("failed to name sheet", err).WithContext("path", path)
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return domain.Artifact{}, errors.NewStorageError("failed to add sheet", err).WithContext("path", path)
		}
		if err := fillSheet(f, sheet); err != nil {
			return domain.Artifact{}, errors.NewStorageError(fmt.Sprintf("failed to fill sheet %s", sheet.name), err).
				WithContext("path", path)
		}
		rows += len(sheet.rows)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return domain.Artifact{}, errors.NewStorageError("failed to create directory", err).WithContext("path", dir)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return domain.Artifact{}, errors.NewStorageError("failed to save workbook", err).WithContext("path", path)
	}

	w.logger.InfoContext(ctx, "Workbook written",
		slog.String("path", path),
		slog.Int("sheets", len(sheets)))
	return domain.Artifact{Name: "workbook", Format: domain.ReportFormatExcel, Path: path, Rows: rows}, nil
}

func fillSheet(f *excelize.File, sheet sheetData) error {
	for col, header := range sheet.headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet.name, cell, header); err != nil {
			return err
		}
	}

	for r, row := range sheet.rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet.name, cell, value); err != nil {
				return err
			}
		}
	}

	if len(sheet.headers) > 0 {
		last, err := excelize.ColumnNumberToName(len(sheet.headers))
		if err != nil {
			return err
		}
		return f.SetColWidth(sheet.name, "A", last, 18)
	}
	return nil
}

// Cells stay numeric so spreadsheet formulas work; values are rounded like the CSVs.

func regionalCells(rows []domain.RegionSummary) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, r := range rows {
		out[i] = []interface{}{
			r.Region, r.MainIsland,
			round2(r.TotalBudget), round2(r.MedianSavings), round2(r.AvgDelay),
			round2(r.HighDelayPct), round2(r.EfficiencyScore),
		}
	}
	return out
}

func contractorCells(rows []domain.ContractorSummary) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, r := range rows {
		out[i] = []interface{}{
			r.Rank, r.Contractor, round2(r.TotalCost), r.NumProjects,
			round2(r.AvgDelay), round2(r.TotalSavings), round2(r.ReliabilityIndex), r.RiskFlag,
		}
	}
	return out
}

func trendCells(rows []domain.AnnualTrend) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, r := range rows {
		out[i] = []interface{}{
			r.FundingYear, r.TypeOfWork, r.TotalProjects,
			round2(r.AvgSavings), round2(r.OverrunRate), round2(r.YoYChangePercent),
		}
	}
	return out
}

func summarySheet(s domain.Summary) sheetData {
	rows := [][]interface{}{
		{"TotalProjects", s.TotalProjects},
		{"TotalContractors", s.TotalContractors},
	}
	if s.TotalProvinces != nil {
		rows = append(rows, []interface{}{"TotalProvinces", *s.TotalProvinces})
	}
	rows = append(rows,
		[]interface{}{"GlobalAvgDelay", round2(s.GlobalAvgDelay)},
		[]interface{}{"TotalSavings", round2(s.TotalSavings)},
	)
	return sheetData{name: SheetSummary, headers: []string{"Metric", "Value"}, rows: rows}
}

func round2(f float64) float64 {
	v, _ := strconv.ParseFloat(formatFloat(f), 64)
	return v
}
