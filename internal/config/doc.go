// Package config loads the hwreport configuration.
//
// # Configuration Sources
//
// Configuration is built from the following sources, later ones winning:
//
//  1. Default values (Default)
//  2. A YAML file (--config, HWREPORT_CONFIG, or ./hwreport.yaml)
//  3. A .env file in the working directory or next to the executable
//  4. Environment variables
//
// # Environment Variables
//
// Environment variables follow the section layout under the HWREPORT prefix:
//
//	HWREPORT_PATHS_BASE_DIR=/data/hw
//	HWREPORT_REPORT_PATH=reports/HW weekly.xlsx
//	HWREPORT_REPORT_MIN_FISCAL_YEAR=2021
//	HWREPORT_SOURCES_EXCLUDED_COUNTRIES=UNITED KINGDOM
//	HWREPORT_LOGGING_LEVEL=debug
//	HWREPORT_TELEMETRY_METRICS_FILE=/var/lib/node_exporter/hwreport.prom
//
// # Paths
//
// Every relative path is resolved against paths.base_dir, which itself
// defaults to the working directory. Reference tables (calendar,
// extrapolation factors, substitute rows) live under paths.extrap_dir.
package config
