package operations

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"hwreport/internal/infrastructure"
)

// TracerName names the operation tracer
const TracerName = "hwreport.operation"

// OperationTracer provides OpenTelemetry instrumentation for runs and steps
type OperationTracer struct {
	tracer  trace.Tracer
	metrics *infrastructure.RunMetrics
}

// NewOperationTracer creates a new operation tracer. Either argument may be
// nil.
func NewOperationTracer(tracer trace.Tracer, metrics *infrastructure.RunMetrics) *OperationTracer {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(TracerName)
	}
	return &OperationTracer{tracer: tracer, metrics: metrics}
}

// Metrics returns the run instruments, possibly nil
func (ot *OperationTracer) Metrics() *infrastructure.RunMetrics {
	return ot.metrics
}

// TraceRun creates a span for the whole run
func (ot *OperationTracer) TraceRun(ctx context.Context, runID string) (context.Context, trace.Span) {
	return ot.tracer.Start(ctx, "operation.run",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("operation.id", runID)),
	)
}

// TraceStep creates a span for one step
func (ot *OperationTracer) TraceStep(ctx context.Context, runID, stepID string) (context.Context, trace.Span) {
	return ot.tracer.Start(ctx, "operation.step."+stepID,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("operation.id", runID),
			attribute.String("step.id", stepID),
		),
	)
}

// EndStep closes a step span and records the step metrics
func (ot *OperationTracer) EndStep(ctx context.Context, span trace.Span, stepID string, duration time.Duration, err error) {
	span.SetAttributes(attribute.Float64("step.duration_seconds", duration.Seconds()))
	errType := ""
	if err != nil {
		errType = string(GetErrorType(err))
		infrastructure.RecordError(ctx, err)
	}
	span.End()
	ot.metrics.RecordStep(ctx, stepID, duration, errType)
}

// EndRun closes the run span and records the run metrics
func (ot *OperationTracer) EndRun(ctx context.Context, span trace.Span, state *OperationState) {
	span.SetAttributes(
		attribute.String("operation.status", string(state.Status)),
		attribute.Int("operation.output_rows", len(state.Output)),
	)
	if state.Error != nil {
		span.SetStatus(codes.Error, state.Error.Error())
	}
	span.End()
	ot.metrics.RecordRun(ctx, string(state.Status), len(state.Output))
}
