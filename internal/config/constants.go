package config

import "hwreport/pkg/contracts"

// Application constants
const (
	AppName    = "hwreport"
	AppVersion = contracts.Version

	// EnvPrefix namespaces every environment override (HWREPORT_REPORT_PATH, ...)
	EnvPrefix = "HWREPORT"

	// DefaultConfigFile is looked up in the working directory when no
	// config file is given
	DefaultConfigFile = "hwreport.yaml"
	// ConfigFileEnv names an explicit config file
	ConfigFileEnv = "HWREPORT_CONFIG"
)

// Default input layout, relative to the base directory
const (
	DefaultInputDir   = "input"
	DefaultPastDir    = "past"
	DefaultExtrapDir  = "extrap"
	DefaultCurrentGFK = "NEW_HW_DATA.txt"
	DefaultCalendar   = "DATES.csv"
	DefaultGSDFactors = "EXTRAPOLATION HW GSD.csv"
	DefaultGFKFactors = "EXTRAPOLATION HW GFK.csv"
	DefaultSubstitute = "Germany Extrap.csv"
)

// Report defaults
const (
	DefaultSheet         = "weekly"
	DefaultRange         = "A:R"
	DefaultMinFiscalYear = 2021
	DefaultLogFile       = "logs/hwreport.log"
)
