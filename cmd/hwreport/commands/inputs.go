package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hwreport/internal/app"
	"hwreport/internal/config"
	"hwreport/internal/files"
)

// inputsCmd represents the inputs command
var inputsCmd = &cobra.Command{
	Use:   "inputs",
	Short: "List the files a run would read",
	Long: `Runs input discovery only and prints every file a run would consume.
Use it after swapping in the weekly exports.

Example:
  hwreport inputs
  hwreport inputs --base-dir /data/hw`,
	RunE: runInputs,
}

func init() {
	rootCmd.AddCommand(inputsCmd)
}

func runInputs(cmd *cobra.Command, args []string) error {
	// discovery never writes, so no output has to be configured
	opts := append([]config.Option{config.WithDryRun(true)}, loadOptions(cmd)...)

	application, err := app.NewApplication(configFile, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hwreport: %v\n", err)
		return err
	}
	defer application.Close(cmd.Context())

	in, err := application.Discover()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hwreport: %v\n", err)
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROLE\tMODIFIED\tSIZE\tPATH")
	row := func(role string, f files.FileInfo) {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", role, f.ModTime.Format("2006-01-02 15:04"), f.Size, f.Path)
	}
	row("current gsd", in.CurrentGSD)
	row("current gfk", in.CurrentGFK)
	for _, f := range in.PastGSD {
		row("past gsd", f)
	}
	for _, f := range in.PastGFK {
		row("past gfk", f)
	}
	row("calendar", in.Calendar)
	row("gsd extrapolation", in.GSDFactors)
	row("gfk extrapolation", in.GFKFactors)
	row("substitute", in.Substitute)
	return w.Flush()
}
