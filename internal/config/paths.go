package config

import "path/filepath"

// Resolve returns path relative to the base directory, or path itself when
// it is absolute
func (p PathsConfig) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.BaseDir, path)
}

// ExtrapFile returns the location of a reference table
func (p PathsConfig) ExtrapFile(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return p.Resolve(filepath.Join(p.ExtrapDir, name))
}

// CalendarPath returns the fiscal calendar table
func (p PathsConfig) CalendarPath() string { return p.ExtrapFile(p.Calendar) }

// GSDFactorsPath returns the GSD extrapolation table
func (p PathsConfig) GSDFactorsPath() string { return p.ExtrapFile(p.GSDFactors) }

// GFKFactorsPath returns the GFK extrapolation table
func (p PathsConfig) GFKFactorsPath() string { return p.ExtrapFile(p.GFKFactors) }

// SubstitutePath returns the substitute rows table
func (p PathsConfig) SubstitutePath() string { return p.ExtrapFile(p.Substitute) }

// ReportPath returns the resolved report workbook path
func (c *Config) ReportPath() string { return c.Paths.Resolve(c.Report.Path) }

// CSVPath returns the resolved CSV copy path, empty when disabled
func (c *Config) CSVPath() string { return c.Paths.Resolve(c.Report.CSVPath) }

// LogFilePath returns the resolved log file path
func (c *Config) LogFilePath() string { return c.Paths.Resolve(c.Logging.FilePath) }

// MetricsFilePath returns the resolved metrics dump path, empty when disabled
func (c *Config) MetricsFilePath() string { return c.Paths.Resolve(c.Telemetry.MetricsFile) }
