package operations

import (
	"context"
	"fmt"
	"log/slog"

	"hwreport/internal/calendar"
	"hwreport/internal/config"
	"hwreport/internal/dataset"
	"hwreport/internal/exporter"
	"hwreport/internal/extrapolation"
	"hwreport/internal/files"
	"hwreport/internal/infrastructure"
	"hwreport/internal/merger"
	"hwreport/internal/sources"
	"hwreport/pkg/contracts/domain"
)

// StepOptions carries the shared dependencies of the pipeline steps
type StepOptions struct {
	Config  *config.Config
	Metrics *infrastructure.RunMetrics
	Logger  *slog.Logger
}

func (o StepOptions) logger(step string) *slog.Logger {
	l := o.Logger
	if l == nil {
		l = slog.Default()
	}
	return l.With(slog.String("step", step))
}

// LayoutFromConfig maps the configured paths onto a discovery layout
func LayoutFromConfig(cfg *config.Config) files.Layout {
	p := cfg.Paths
	return files.Layout{
		InputDir:       p.InputDir,
		PastDir:        p.PastDir,
		CurrentGFK:     p.CurrentGFK,
		CalendarFile:   p.CalendarPath(),
		GSDFactorsFile: p.GSDFactorsPath(),
		GFKFactorsFile: p.GFKFactorsPath(),
		SubstituteFile: p.SubstitutePath(),
		LatestGSD:      cfg.Sources.LatestGSD,
	}
}

// NewPipeline returns a manager with every step registered in order
func NewPipeline(opts StepOptions, tracer *OperationTracer) (*Manager, error) {
	m := NewManager(NewRegistry(), tracer, opts.Logger)
	steps := []Step{
		NewDiscoverStep(opts),
		NewCalendarStep(opts),
		NewSourceStep(domain.SourceGSD, opts),
		NewSourceStep(domain.SourceGFK, opts),
		NewSubstituteStep(opts),
		NewCombineStep(opts),
		NewExportStep(opts),
	}
	for _, s := range steps {
		if err := m.RegisterStage(s); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func requireInputs(step string, state *OperationState) error {
	if state.Inputs == nil {
		return NewValidationError(step, "inputs have not been discovered")
	}
	return nil
}

// DiscoverStep locates every input file. A missing file is fatal.
type DiscoverStep struct {
	BaseStage
	opts   StepOptions
	logger *slog.Logger
}

// NewDiscoverStep creates the discovery step
func NewDiscoverStep(opts StepOptions) *DiscoverStep {
	return &DiscoverStep{
		BaseStage: NewBaseStage(StepIDDiscover, StepNameDiscover),
		opts:      opts,
		logger:    opts.logger(StepIDDiscover),
	}
}

// Execute implements Step
func (s *DiscoverStep) Execute(ctx context.Context, state *OperationState) error {
	cfg := s.opts.Config
	in, err := files.NewDiscovery(cfg.Paths.BaseDir).Discover(LayoutFromConfig(cfg))
	if err != nil {
		return NewFatalError(s.ID(), "input discovery failed", err)
	}
	state.Inputs = in

	s.logger.InfoContext(ctx, "inputs_discovered",
		slog.String("current_gsd", in.CurrentGSD.Path),
		slog.String("current_gfk", in.CurrentGFK.Path),
		slog.Int("past_gsd_files", len(in.PastGSD)),
		slog.Int("past_gfk_files", len(in.PastGFK)))
	return nil
}

// CalendarStep loads the fiscal calendar
type CalendarStep struct {
	BaseStage
	opts   StepOptions
	logger *slog.Logger
}

// NewCalendarStep creates the calendar step
func NewCalendarStep(opts StepOptions) *CalendarStep {
	return &CalendarStep{
		BaseStage: NewBaseStage(StepIDCalendar, StepNameCalendar),
		opts:      opts,
		logger:    opts.logger(StepIDCalendar),
	}
}

// Validate implements Step
func (s *CalendarStep) Validate(state *OperationState) error {
	return requireInputs(s.ID(), state)
}

// Execute implements Step
func (s *CalendarStep) Execute(ctx context.Context, state *OperationState) error {
	table, err := dataset.ReadFile(state.Inputs.Calendar.Path)
	if err != nil {
		return err
	}
	cal, err := calendar.New(table)
	if err != nil {
		return err
	}
	state.Calendar = cal

	s.opts.Metrics.RecordDuplicates(ctx, StepIDCalendar, cal.Duplicates())
	if cal.Duplicates() > 0 {
		s.logger.WarnContext(ctx, "calendar_duplicate_weeks",
			slog.Int("duplicates", cal.Duplicates()))
	}
	s.logger.InfoContext(ctx, "calendar_loaded",
		slog.String("path", state.Inputs.Calendar.Path),
		slog.Int("weeks", cal.Len()))
	return nil
}

// SourceStep reads one vendor's current and historical exports and runs
// its adapter
type SourceStep struct {
	BaseStage
	source domain.Source
	opts   StepOptions
	logger *slog.Logger
}

// NewSourceStep creates the step for a vendor
func NewSourceStep(source domain.Source, opts StepOptions) *SourceStep {
	id, name := StepIDGSD, StepNameGSD
	if source == domain.SourceGFK {
		id, name = StepIDGFK, StepNameGFK
	}
	return &SourceStep{
		BaseStage: NewBaseStage(id, name),
		source:    source,
		opts:      opts,
		logger:    opts.logger(id),
	}
}

// Validate implements Step
func (s *SourceStep) Validate(state *OperationState) error {
	if err := requireInputs(s.ID(), state); err != nil {
		return err
	}
	if state.Calendar == nil {
		return NewValidationError(s.ID(), "calendar has not been loaded")
	}
	return nil
}

// Execute implements Step
func (s *SourceStep) Execute(ctx context.Context, state *OperationState) error {
	adapter, raw, err := s.prepare(ctx, state)
	if err != nil {
		return err
	}

	res, err := adapter.Process(raw)
	if err != nil {
		return err
	}
	if s.source == domain.SourceGSD {
		state.GSD = res
	} else {
		state.GFK = res
	}

	s.report(ctx, res.Stats)
	return nil
}

func (s *SourceStep) prepare(ctx context.Context, state *OperationState) (sources.Adapter, *dataset.Table, error) {
	in := state.Inputs
	cfg := s.opts.Config

	if s.source == domain.SourceGSD {
		factors, err := s.loadFactors(ctx, in.GSDFactors.Path, extrapolation.Options{UseWeek: true, UpperCaseTerritory: true})
		if err != nil {
			return nil, nil, err
		}
		current, err := dataset.ReadWorkbook(in.CurrentGSD.Path, cfg.Sources.GSDSheet)
		if err != nil {
			return nil, nil, err
		}
		raw, err := stack("gsd", current, in.PastGSD)
		if err != nil {
			return nil, nil, err
		}
		opts := sources.DefaultGSDOptions()
		opts.ExcludedCountries = cfg.Sources.ExcludedCountries
		return sources.NewGSD(state.Calendar, factors, opts), raw, nil
	}

	factors, err := s.loadFactors(ctx, in.GFKFactors.Path, extrapolation.Options{})
	if err != nil {
		return nil, nil, err
	}
	current, err := dataset.ReadFile(in.CurrentGFK.Path)
	if err != nil {
		return nil, nil, err
	}
	raw, err := stack("gfk", current, in.PastGFK)
	if err != nil {
		return nil, nil, err
	}
	return sources.NewGFK(state.Calendar, factors, sources.DefaultGFKOptions()), raw, nil
}

func (s *SourceStep) loadFactors(ctx context.Context, path string, opts extrapolation.Options) (*extrapolation.Resolver, error) {
	table, err := dataset.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := extrapolation.New(table, opts)
	if err != nil {
		return nil, err
	}

	s.opts.Metrics.RecordDuplicates(ctx, s.ID()+"_extrapolation", r.Duplicates())
	s.logger.InfoContext(ctx, "extrapolation_loaded",
		slog.String("path", path),
		slog.Int("factors", r.Len()),
		slog.Int("duplicates", r.Duplicates()),
		slog.Int("skipped", r.Skipped()))
	return r, nil
}

// stack concatenates the current export with the historical ones
func stack(name string, current *dataset.Table, past []files.FileInfo) (*dataset.Table, error) {
	tables := []*dataset.Table{current}
	for _, f := range past {
		t, err := dataset.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("historical %s: %w", name, err)
		}
		tables = append(tables, t)
	}
	return dataset.Concat(name, tables...), nil
}

func (s *SourceStep) report(ctx context.Context, st sources.Stats) {
	s.opts.Metrics.RecordSource(ctx, infrastructure.SourceCounts{
		Source:                 string(st.Source),
		RowsRead:               st.RowsRead,
		DroppedPlatform:        st.DroppedPlatform,
		DroppedCountry:         st.DroppedCountry,
		UnmatchedCalendar:      st.UnmatchedCalendar,
		UnmatchedExtrapolation: st.UnmatchedExtrapolation,
		RowsEmitted:            st.RowsEmitted,
	})

	if st.UnmatchedCalendar > 0 {
		s.logger.WarnContext(ctx, "unmatched_calendar_weeks",
			slog.String("source", string(st.Source)),
			slog.Int("rows", st.UnmatchedCalendar),
			slog.Any("samples", st.CalendarSamples))
	}
	if st.UnmatchedExtrapolation > 0 {
		s.logger.WarnContext(ctx, "unmatched_extrapolation_keys",
			slog.String("source", string(st.Source)),
			slog.Int("rows", st.UnmatchedExtrapolation),
			slog.Any("samples", st.ExtrapolationSamples))
	}
	s.logger.InfoContext(ctx, "source_processed",
		slog.String("source", string(st.Source)),
		slog.Int("rows_read", st.RowsRead),
		slog.Int("dropped_platform", st.DroppedPlatform),
		slog.Int("dropped_country", st.DroppedCountry),
		slog.Int("rows_emitted", st.RowsEmitted))
}

// SubstituteStep loads the rows that stand in for vendor data
type SubstituteStep struct {
	BaseStage
	opts   StepOptions
	logger *slog.Logger
}

// NewSubstituteStep creates the substitute step
func NewSubstituteStep(opts StepOptions) *SubstituteStep {
	return &SubstituteStep{
		BaseStage: NewBaseStage(StepIDSubstitute, StepNameSubstitute),
		opts:      opts,
		logger:    opts.logger(StepIDSubstitute),
	}
}

// Validate implements Step
func (s *SubstituteStep) Validate(state *OperationState) error {
	return requireInputs(s.ID(), state)
}

// Execute implements Step
func (s *SubstituteStep) Execute(ctx context.Context, state *OperationState) error {
	table, err := dataset.ReadFile(state.Inputs.Substitute.Path)
	if err != nil {
		return err
	}
	rows, err := merger.FromTable(table)
	if err != nil {
		return err
	}
	state.Substitute = rows

	s.logger.InfoContext(ctx, "substitute_loaded",
		slog.String("path", state.Inputs.Substitute.Path),
		slog.Int("rows", len(rows)))
	return nil
}

// CombineStep concatenates GSD, GFK and substitute rows and applies the
// fiscal year filter
type CombineStep struct {
	BaseStage
	opts   StepOptions
	logger *slog.Logger
}

// NewCombineStep creates the combine step
func NewCombineStep(opts StepOptions) *CombineStep {
	return &CombineStep{
		BaseStage: NewBaseStage(StepIDCombine, StepNameCombine),
		opts:      opts,
		logger:    opts.logger(StepIDCombine),
	}
}

// Validate implements Step
func (s *CombineStep) Validate(state *OperationState) error {
	if state.GSD == nil || state.GFK == nil {
		return NewValidationError(s.ID(), "vendor rows are missing")
	}
	return nil
}

// Execute implements Step
func (s *CombineStep) Execute(ctx context.Context, state *OperationState) error {
	minFY := s.opts.Config.Report.MinFiscalYear
	total := len(state.GSD.Rows) + len(state.GFK.Rows) + len(state.Substitute)
	state.Output = merger.Merge(state.GSD.Rows, state.GFK.Rows, state.Substitute, minFY)

	s.logger.InfoContext(ctx, "rows_combined",
		slog.Int("gsd_rows", len(state.GSD.Rows)),
		slog.Int("gfk_rows", len(state.GFK.Rows)),
		slog.Int("substitute_rows", len(state.Substitute)),
		slog.Int("min_fiscal_year", minFY),
		slog.Int("filtered_out", total-len(state.Output)),
		slog.Int("output_rows", len(state.Output)))
	return nil
}

// ExportStep writes the report workbook and the optional CSV copy
type ExportStep struct {
	BaseStage
	opts   StepOptions
	logger *slog.Logger
}

// NewExportStep creates the export step
func NewExportStep(opts StepOptions) *ExportStep {
	return &ExportStep{
		BaseStage: NewBaseStage(StepIDExport, StepNameExport),
		opts:      opts,
		logger:    opts.logger(StepIDExport),
	}
}

// Validate implements Step
func (s *ExportStep) Validate(state *OperationState) error {
	if state.GSD == nil || state.GFK == nil {
		return NewValidationError(s.ID(), "nothing has been combined")
	}
	return nil
}

// Execute implements Step
func (s *ExportStep) Execute(ctx context.Context, state *OperationState) error {
	cfg := s.opts.Config

	if path := cfg.CSVPath(); path != "" {
		if err := exporter.NewCSVWriter("").WriteRows(path, state.Output, cfg.Report.CSVBOM); err != nil {
			return err
		}
		state.Written = append(state.Written, path)
	}

	path := cfg.ReportPath()
	switch {
	case path == "":
		return nil
	case cfg.Report.DryRun:
		s.logger.InfoContext(ctx, "report_write_skipped",
			slog.String("path", path),
			slog.String("reason", "dry run"))
		return nil
	}

	if cfg.Report.Backup {
		backup, err := files.NewManager("").Backup(path)
		if err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "report_backed_up", slog.String("backup", backup))
	}

	w := exporter.NewWorkbookWriter(path, cfg.Report.Sheet, cfg.Report.Range)
	if err := w.Write(state.Output); err != nil {
		return err
	}
	state.Written = append(state.Written, path)
	return nil
}
