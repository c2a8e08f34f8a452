// Package operations owns the loaded dataset and drives the Load and Generate
// operations of the pipeline.
//
// Controller: The state machine (Idle, Loaded) behind the interactive shell. Load
// validates, parses and cleans the input file and replaces the dataset; Generate
// computes the reports and runs the registered export steps.
//
// Step: One unit of Generate output (report files, workbook, chart). Steps run
// in registration order from a Registry and stop at the first failure.
//
// Example usage:
//
//	controller := operations.NewController(cfg, logger)
//	if _, err := controller.Load(ctx); err != nil {
//		return err
//	}
//	result, err := controller.Generate(ctx)
package operations
