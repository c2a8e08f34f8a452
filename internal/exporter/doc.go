// Package exporter writes pipeline results to disk and to the console.
//
// This package contains these components:
//
// CSVWriter: Core CSV writing with headers and a streaming writer for the
// cleaned dataset.
//
// ReportWriter: Writes the three report CSVs, summary.json and the cleaned dataset.
//
// WorkbookWriter and ChartWriter: Supplemental reports.xlsx workbook and
// efficiency_scores.png bar chart.
//
// Previewer: Console tables showing the first rows of each report.
//
// Example usage:
//
//	writer := exporter.NewReportWriter(paths, logger)
//	artifacts, err := writer.WriteReports(ctx, reports)
//
//	preview := exporter.NewPreviewer(os.Stdout, exporter.DefaultPreviewOptions())
//	preview.RenderReports(reports, paths)
package exporter
