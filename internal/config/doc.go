// Package config provides configuration management for the flood-control
// analysis pipeline. It loads settings from several sources, validates them,
// and resolves every input and output path the pipeline touches.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//  1. Environment variables (highest priority)
//  2. A .env file in the working directory
//  3. YAML configuration file
//  4. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern DPWH_<SECTION>_<FIELD>:
//
//	DPWH_PIPELINE_INPUT_FILE=dpwh_flood_control_projects.csv
//	DPWH_PIPELINE_OUTPUT_DIR=out
//	DPWH_EXPORT_CHART=false
//	DPWH_LOGGING_LEVEL=debug
//
// # Path Management
//
// Paths resolves report file names under the configured output directory:
//
//	cfg, err := config.Load("")
//	paths := config.NewPaths(cfg)
//	fmt.Println(paths.RegionalReport) // ./report1_regional_summary.csv
package config
