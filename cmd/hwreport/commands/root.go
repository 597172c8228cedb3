package commands

import (
	"github.com/spf13/cobra"

	"hwreport/internal/config"
)

var (
	// Global flags
	configFile string
	baseDir    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hwreport",
	Short: "Console hardware sell-through report",
	Long: `hwreport reconciles the weekly GSD and GFK panel exports into one
sell-through table and writes it into the report workbook.

Configuration is read from hwreport.yaml (or --config), a .env file and
HWREPORT_* environment variables. Flags override all of them.

Examples:
  hwreport run
  hwreport run --base-dir /data/hw --dry-run --csv weekly.csv
  hwreport inputs`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is "+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "directory the input layout is relative to")
}

// loadOptions turns the flags that were set into config overrides
func loadOptions(cmd *cobra.Command) []config.Option {
	var opts []config.Option
	if cmd.Flags().Changed("base-dir") {
		opts = append(opts, config.WithBaseDir(baseDir))
	}
	return opts
}
