package main

import (
	"fmt"
	"io"
	"os"

	"pcoslens/app"
	"pcoslens/internal"
	"pcoslens/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const usage = "Usage: analyze <path_to_csv>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	// cobra falls back to os.Args on a nil slice
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Compare PCOS-positive and PCOS-negative records of a dataset",
		Long: `Compute per-class mean and standard deviation for the monitored PCOS
features, rank features by the difference of class means and report missing
values. The results are printed and saved to pcos_analysis_results.json in the
current directory.

Accepts comma-separated files and .xlsx workbooks (first sheet, or PCOS_SHEET).

Example: analyze PCOS_data.csv`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return nil
			}
			return runAnalysis(args[0], cmd.OutOrStdout(), stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd
}

func runAnalysis(inputPath string, stdout, stderr io.Writer) error {
	// a missing .env is the normal case
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := internal.NewLoggerTo(stderr, internal.ParseLogLevel(cfg.Log.Level, internal.LogLevelWarn))

	_, err = app.NewAnalysisService(cfg, stdout, logger).Run(inputPath)
	return err
}
