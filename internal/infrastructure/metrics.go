package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RunMetrics holds the instruments of a reporting run
type RunMetrics struct {
	RunsTotal          metric.Int64Counter
	StepDuration       metric.Float64Histogram
	StepErrors         metric.Int64Counter
	RowsRead           metric.Int64Counter
	RowsDropped        metric.Int64Counter
	RowsEmitted        metric.Int64Counter
	UnmatchedJoins     metric.Int64Counter
	ReferenceDuplicate metric.Int64Counter
	OutputRows         metric.Int64Counter
}

// CreateRunMetrics creates the run instruments on meter
func CreateRunMetrics(meter metric.Meter) (*RunMetrics, error) {
	var (
		m   RunMetrics
		err error
	)

	if m.RunsTotal, err = meter.Int64Counter("hwreport_runs",
		metric.WithDescription("Reporting runs by final status")); err != nil {
		return nil, err
	}
	if m.StepDuration, err = meter.Float64Histogram("hwreport_step_duration_seconds",
		metric.WithDescription("Pipeline step duration in seconds"),
		metric.WithUnit("s")); err != nil {
		return nil, err
	}
	if m.StepErrors, err = meter.Int64Counter("hwreport_step_errors",
		metric.WithDescription("Failed pipeline steps by error type")); err != nil {
		return nil, err
	}
	if m.RowsRead, err = meter.Int64Counter("hwreport_rows_read",
		metric.WithDescription("Raw vendor rows read")); err != nil {
		return nil, err
	}
	if m.RowsDropped, err = meter.Int64Counter("hwreport_rows_dropped",
		metric.WithDescription("Raw vendor rows dropped by filters")); err != nil {
		return nil, err
	}
	if m.RowsEmitted, err = meter.Int64Counter("hwreport_rows_emitted",
		metric.WithDescription("Canonical rows produced per source")); err != nil {
		return nil, err
	}
	if m.UnmatchedJoins, err = meter.Int64Counter("hwreport_unmatched_joins",
		metric.WithDescription("Rows whose calendar or extrapolation lookup failed")); err != nil {
		return nil, err
	}
	if m.ReferenceDuplicate, err = meter.Int64Counter("hwreport_reference_duplicates",
		metric.WithDescription("Duplicate keys ignored in reference tables")); err != nil {
		return nil, err
	}
	if m.OutputRows, err = meter.Int64Counter("hwreport_output_rows",
		metric.WithDescription("Rows written to the report")); err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordStep records one finished step
func (m *RunMetrics) RecordStep(ctx context.Context, stepID string, duration time.Duration, errType string) {
	if m == nil {
		return
	}
	status := "success"
	if errType != "" {
		status = "failure"
		m.StepErrors.Add(ctx, 1, metric.WithAttributes(
			attribute.String("step", stepID),
			attribute.String("error_type", errType)))
	}
	m.StepDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("step", stepID),
		attribute.String("status", status)))
}

// SourceCounts are the per-source row counts of one adapter run
type SourceCounts struct {
	Source                 string
	RowsRead               int
	DroppedPlatform        int
	DroppedCountry         int
	UnmatchedCalendar      int
	UnmatchedExtrapolation int
	RowsEmitted            int
}

// RecordSource records the counts of one adapter run
func (m *RunMetrics) RecordSource(ctx context.Context, c SourceCounts) {
	if m == nil {
		return
	}
	src := attribute.String("source", c.Source)
	m.RowsRead.Add(ctx, int64(c.RowsRead), metric.WithAttributes(src))
	m.RowsEmitted.Add(ctx, int64(c.RowsEmitted), metric.WithAttributes(src))
	m.RowsDropped.Add(ctx, int64(c.DroppedPlatform), metric.WithAttributes(src, attribute.String("reason", "platform")))
	m.RowsDropped.Add(ctx, int64(c.DroppedCountry), metric.WithAttributes(src, attribute.String("reason", "country")))
	m.UnmatchedJoins.Add(ctx, int64(c.UnmatchedCalendar), metric.WithAttributes(src, attribute.String("join", "calendar")))
	m.UnmatchedJoins.Add(ctx, int64(c.UnmatchedExtrapolation), metric.WithAttributes(src, attribute.String("join", "extrapolation")))
}

// RecordDuplicates records ignored duplicate keys of a reference table
func (m *RunMetrics) RecordDuplicates(ctx context.Context, table string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.ReferenceDuplicate.Add(ctx, int64(n), metric.WithAttributes(attribute.String("table", table)))
}

// RecordRun records the final status and output size of a run
func (m *RunMetrics) RecordRun(ctx context.Context, status string, outputRows int) {
	if m == nil {
		return
	}
	m.RunsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	m.OutputRows.Add(ctx, int64(outputRows))
}
