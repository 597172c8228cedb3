// Package operations runs the weekly reporting pipeline as an ordered list
// of steps.
//
// Core Components:
//
// Manager: runs the registered steps one after another in a single run,
// tracing each step and logging its progress. The first failing step ends
// the run; the steps after it are marked skipped.
//
// Step: one unit of work (discover, calendar, gsd, gfk, substitute, combine,
// export). Steps pass their results to later steps through the typed fields
// of OperationState.
//
// OperationError: every failure is classified as fatal (missing input),
// data_shape (input that cannot be converted), validation (unmet step
// precondition), cancellation or execution (everything else).
//
// Example usage:
//
//	manager, err := operations.NewPipeline(operations.StepOptions{Config: cfg}, nil)
//	state, err := manager.Execute(ctx, runID)
//	if operations.IsFatal(err) {
//	    // an input file is missing
//	}
package operations
