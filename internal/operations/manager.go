package operations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hwreport/internal/infrastructure"
)

// Manager runs the registered steps in order. The first failing step ends
// the run and every later step is marked skipped.
type Manager struct {
	registry *Registry
	tracer   *OperationTracer
	logger   *slog.Logger
}

// NewManager creates a new operation manager
func NewManager(registry *Registry, tracer *OperationTracer, logger *slog.Logger) *Manager {
	if registry == nil {
		registry = NewRegistry()
	}
	if tracer == nil {
		tracer = NewOperationTracer(nil, nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		registry: registry,
		tracer:   tracer,
		logger:   infrastructure.WithComponent(logger, "operations"),
	}
}

// RegisterStage registers a step with the operation
func (m *Manager) RegisterStage(step Step) error {
	return m.registry.Register(step)
}

// GetRegistry returns the step registry
func (m *Manager) GetRegistry() *Registry {
	return m.registry
}

// Execute runs every registered step. The returned state is complete even
// when an error is returned.
func (m *Manager) Execute(ctx context.Context, id string) (*OperationState, error) {
	if id == "" {
		ctx = infrastructure.EnsureRunID(ctx)
		id = infrastructure.GetRunID(ctx)
	} else if infrastructure.GetRunID(ctx) == "" {
		ctx = infrastructure.WithRunID(ctx, id)
	}

	state := NewOperationState(id)
	steps := m.registry.List()
	for _, step := range steps {
		state.SetStage(step.ID(), NewStepState(step.ID(), step.Name()))
	}

	ctx, span := m.tracer.TraceRun(ctx, id)
	state.Start()

	m.logger.InfoContext(ctx, "operation_started",
		slog.String("operation_id", id),
		slog.Int("step_count", len(steps)))

	err := m.executeSequential(ctx, state, steps)
	if err != nil {
		state.Fail(err)
		m.logger.ErrorContext(ctx, "operation_failed",
			slog.String("operation_id", id),
			slog.String("error_type", string(GetErrorType(err))),
			slog.Duration("duration", state.Duration()),
			slog.String("error", err.Error()))
	} else {
		state.Complete()
		m.logger.InfoContext(ctx, "operation_completed",
			slog.String("operation_id", id),
			slog.Int("output_rows", len(state.Output)),
			slog.Duration("duration", state.Duration()))
	}

	m.tracer.EndRun(ctx, span, state)
	return state, err
}

func (m *Manager) executeSequential(ctx context.Context, state *OperationState, steps []Step) error {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			m.logger.WarnContext(ctx, "operation_cancelled",
				slog.String("operation_id", state.ID),
				slog.String("step", step.ID()))
			m.skipRemaining(state, steps[i:], "operation cancelled")
			return NewCancellationError(step.ID(), err)
		}

		m.logger.InfoContext(ctx, "executing_step",
			slog.String("operation_id", state.ID),
			slog.String("step", step.ID()),
			slog.Int("step_number", i+1),
			slog.Int("total_steps", len(steps)))

		if err := m.executeStage(ctx, state, step); err != nil {
			m.skipRemaining(state, steps[i+1:], fmt.Sprintf("previous step %s failed", step.ID()))
			return err
		}
	}
	return nil
}

func (m *Manager) executeStage(ctx context.Context, state *OperationState, step Step) error {
	stepState := state.GetStage(step.ID())

	if err := step.Validate(state); err != nil {
		var verr *OperationError
		if !errors.As(err, &verr) {
			verr = NewValidationError(step.ID(), err.Error())
		}
		stepState.Fail(verr)
		m.logger.ErrorContext(ctx, "validation_failed",
			slog.String("operation_id", state.ID),
			slog.String("step", step.ID()),
			slog.String("error", verr.Error()))
		return verr
	}

	stepCtx, span := m.tracer.TraceStep(ctx, state.ID, step.ID())
	stepState.Start()
	start := time.Now()
	err := step.Execute(stepCtx, state)
	duration := time.Since(start)

	if err != nil {
		opErr := WrapError(err, step.ID())
		stepState.Fail(opErr)
		m.tracer.EndStep(stepCtx, span, step.ID(), duration, opErr)
		m.logger.ErrorContext(ctx, "step_failed",
			slog.String("operation_id", state.ID),
			slog.String("step", step.ID()),
			slog.String("error_type", string(opErr.Type)),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return opErr
	}

	stepState.Complete()
	m.tracer.EndStep(stepCtx, span, step.ID(), duration, nil)
	m.logger.InfoContext(ctx, "step_completed",
		slog.String("operation_id", state.ID),
		slog.String("step", step.ID()),
		slog.Duration("duration", duration))
	return nil
}

func (m *Manager) skipRemaining(state *OperationState, steps []Step, reason string) {
	for _, step := range steps {
		if s := state.GetStage(step.ID()); s != nil && s.GetStatus() == StepStatusPending {
			s.Skip(reason)
		}
	}
}
