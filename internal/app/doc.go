// Package app wires configuration, logging, telemetry and the reporting
// pipeline into a single run.
//
// # Initialization Flow
//
//  1. Load configuration from defaults, file, .env, environment and flags
//  2. Initialize the JSON logger
//  3. Initialize OpenTelemetry and the run metrics
//
// # Usage
//
//	application, err := app.NewApplication("", config.WithDryRun(true))
//	if err != nil {
//	    return err
//	}
//	defer application.Close(ctx)
//	state, err := application.Run(ctx)
//
// The app does not call os.Exit; the command layer decides the exit status.
package app
