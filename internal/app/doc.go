// Package app wires configuration, logging and the pipeline controller together
// and runs the interactive shell.
//
// # Initialization Flow
//
//  1. Load configuration from defaults, YAML, .env and DPWH_* variables
//  2. Apply command-line overrides
//  3. Create the output and log directories
//  4. Initialize logging
//  5. Create the pipeline controller and the shell
//
// # Usage
//
//	application, err := app.NewApplication(app.Options{ConfigFile: path})
//	if err != nil {
//		return err
//	}
//	defer application.Stop()
//	return application.Run(ctx, os.Stdin, os.Stdout)
package app
