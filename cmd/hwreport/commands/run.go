package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hwreport/internal/app"
	"hwreport/internal/config"
	"hwreport/internal/operations"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build the weekly report",
	Long: `Runs the full pipeline: discover inputs, load the calendar and the
extrapolation tables, process GSD and GFK, add the substitute rows, filter
by fiscal year and write the report.

Missing inputs stop the run before anything is read. Unmatched calendar
weeks and extrapolation keys are logged as warnings with sample keys.

Example:
  hwreport run
  hwreport run --report weekly.xlsx --csv out/weekly.csv
  hwreport run --dry-run --csv out/weekly.csv`,
	RunE: runPipeline,
}

var (
	// Run flags
	reportPath string
	csvPath    string
	dryRun     bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&reportPath, "report", "", "report workbook to write")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "also write the table to this CSV file")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "skip the workbook write")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	opts := loadOptions(cmd)
	if cmd.Flags().Changed("report") {
		opts = append(opts, config.WithReportPath(reportPath))
	}
	if cmd.Flags().Changed("csv") {
		opts = append(opts, config.WithCSVPath(csvPath))
	}
	if cmd.Flags().Changed("dry-run") {
		opts = append(opts, config.WithDryRun(dryRun))
	}

	application, err := app.NewApplication(configFile, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hwreport: %v\n", err)
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := application.Close(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "hwreport: shutdown: %v\n", err)
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state, err := application.Run(ctx)
	if err != nil {
		application.Logger.Error("Run failed",
			slog.String("error_type", string(operations.GetErrorType(err))),
			slog.String("error", err.Error()))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d rows in %s\n", state.ID, len(state.Output), state.Duration().Round(time.Millisecond))
	for _, path := range state.Written {
		fmt.Fprintf(cmd.OutOrStdout(), "  wrote %s\n", path)
	}
	return nil
}
