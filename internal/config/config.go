package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
	Report    ReportConfig    `yaml:"report" envconfig:"REPORT"`
	Sources   SourcesConfig   `yaml:"sources" envconfig:"SOURCES"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// PathsConfig locates the inputs. Directories are relative to BaseDir;
// the reference tables are relative to ExtrapDir.
type PathsConfig struct {
	BaseDir    string `yaml:"base_dir" split_words:"true"`
	InputDir   string `yaml:"input_dir" split_words:"true" validate:"required"`
	PastDir    string `yaml:"past_dir" split_words:"true" validate:"required"`
	ExtrapDir  string `yaml:"extrap_dir" split_words:"true" validate:"required"`
	CurrentGFK string `yaml:"current_gfk" split_words:"true" validate:"required"`
	Calendar   string `yaml:"calendar" split_words:"true" validate:"required"`
	GSDFactors string `yaml:"gsd_factors" split_words:"true" validate:"required"`
	GFKFactors string `yaml:"gfk_factors" split_words:"true" validate:"required"`
	Substitute string `yaml:"substitute" split_words:"true" validate:"required"`
}

// ReportConfig describes the output
type ReportConfig struct {
	Path          string `yaml:"path" split_words:"true"`
	Sheet         string `yaml:"sheet" split_words:"true" validate:"required"`
	Range         string `yaml:"range" split_words:"true" validate:"required,contains=:"`
	MinFiscalYear int    `yaml:"min_fiscal_year" split_words:"true" validate:"gte=1990,lte=2100"`
	CSVPath       string `yaml:"csv_path" split_words:"true"`
	CSVBOM        bool   `yaml:"csv_bom" split_words:"true"`
	Backup        bool   `yaml:"backup" split_words:"true"`
	DryRun        bool   `yaml:"dry_run" split_words:"true"`
}

// SourcesConfig holds vendor options
type SourcesConfig struct {
	// GSDSheet selects the sheet of the current GSD export; empty is the first sheet
	GSDSheet          string   `yaml:"gsd_sheet" split_words:"true"`
	// LatestGSD uses the newest of several current GSD exports; by default
	// more than one is an error
	LatestGSD         bool     `yaml:"latest_gsd" split_words:"true"`
	ExcludedCountries []string `yaml:"excluded_countries" split_words:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" split_words:"true" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" split_words:"true" validate:"oneof=json"`
	Output   string `yaml:"output" split_words:"true" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" split_words:"true" validate:"required_unless=Output console"`
}

// TelemetryConfig selects the OpenTelemetry exporters
type TelemetryConfig struct {
	Environment    string  `yaml:"environment" split_words:"true"`
	TraceExporter  string  `yaml:"trace_exporter" split_words:"true" validate:"oneof=stdout none"`
	MetricExporter string  `yaml:"metric_exporter" split_words:"true" validate:"oneof=prometheus none"`
	SampleRatio    float64 `yaml:"sample_ratio" split_words:"true" validate:"gte=0,lte=1"`
	// MetricsFile receives a Prometheus text dump at the end of a run
	MetricsFile string `yaml:"metrics_file" split_words:"true"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			InputDir:   DefaultInputDir,
			PastDir:    DefaultPastDir,
			ExtrapDir:  DefaultExtrapDir,
			CurrentGFK: DefaultCurrentGFK,
			Calendar:   DefaultCalendar,
			GSDFactors: DefaultGSDFactors,
			GFKFactors: DefaultGFKFactors,
			Substitute: DefaultSubstitute,
		},
		Report: ReportConfig{
			Sheet:         DefaultSheet,
			Range:         DefaultRange,
			MinFiscalYear: DefaultMinFiscalYear,
			CSVBOM:        true,
		},
		Sources: SourcesConfig{
			ExcludedCountries: []string{"UNITED KINGDOM"},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: DefaultLogFile,
		},
		Telemetry: TelemetryConfig{
			Environment:    "production",
			TraceExporter:  "none",
			MetricExporter: "prometheus",
			SampleRatio:    1.0,
		},
	}
}

// Option overrides a loaded value, typically from a command line flag
type Option func(*Config)

// WithBaseDir sets the directory every relative path is resolved against
func WithBaseDir(dir string) Option {
	return func(c *Config) { c.Paths.BaseDir = dir }
}

// WithReportPath sets the report workbook
func WithReportPath(path string) Option {
	return func(c *Config) { c.Report.Path = path }
}

// WithCSVPath sets the CSV copy of the report
func WithCSVPath(path string) Option {
	return func(c *Config) { c.Report.CSVPath = path }
}

// WithDryRun skips the workbook write
func WithDryRun(dryRun bool) Option {
	return func(c *Config) { c.Report.DryRun = dryRun }
}

// Load builds the configuration: defaults, then the YAML file, then .env
// and environment variables, then opts. An explicit configFile must exist;
// otherwise HWREPORT_CONFIG and then hwreport.yaml in the working directory
// are tried.
func Load(configFile string, opts ...Option) (*Config, error) {
	cfg := Default()

	loadDotEnv()

	explicit := configFile != ""
	if !explicit {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg; keys absent from the file
// keep their current value
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("%s: %w", filePath, err)
	}
	return nil
}

func getConfigFilePath() string {
	if path := os.Getenv(ConfigFileEnv); path != "" {
		return path
	}
	return DefaultConfigFile
}

// loadDotEnv loads the first .env file found next to the working directory
// or the executable. Variables already set are not overwritten.
func loadDotEnv() {
	candidates := []string{".env"}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), ".env"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

// resolvePaths makes the base directory absolute
func (c *Config) resolvePaths() error {
	base := c.Paths.BaseDir
	if base == "" {
		base = "."
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return err
	}
	c.Paths.BaseDir = abs
	return nil
}

// Validate checks field constraints and cross-field rules
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}

	if !c.Report.DryRun && c.Report.Path == "" && c.Report.CSVPath == "" {
		return errors.New("report.path or report.csv_path is required unless dry_run is set")
	}
	return nil
}
