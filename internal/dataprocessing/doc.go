// Package dataprocessing turns the raw flood-control project export into the
// three analytical reports and the summary record.
//
// # Architecture
//
// Data flows strictly downward through five stages:
//
// 1. Parser: splits lines into fields, honouring quoted commas
// 2. Cleaner: builds typed records, derives savings and delay, applies the year filter
// 3. Aggregator: generic group-by with sum, mean, median, count and percentage
// 4. Scorers: regional efficiency, contractor reliability, annual trends
// 5. Summarizer: dataset-wide totals
//
// # Usage
//
//	table, err := dataprocessing.ReadFile("dpwh_flood_control_projects.csv", logger)
//	if err != nil {
//	    return err
//	}
//	dataset, stats := dataprocessing.CleanTable(table, dataprocessing.DefaultCleanerConfig(), logger)
//	reports, err := dataprocessing.NewReportBuilder(dataprocessing.DefaultReportConfig(), logger).
//	    Build(ctx, dataset)
//
// Every stage except the Cleaner's counters is stateless.
package dataprocessing
