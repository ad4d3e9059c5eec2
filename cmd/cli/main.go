package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &dataOptions{}

	rootCmd := &cobra.Command{
		Use:           "pulsex-cli",
		Short:         "Explore Household Pulse survey slices from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.dataFile, "data", os.Getenv("DATA_FILE"), "CSV or XLSX survey file (defaults to $DATA_FILE)")
	flags.BoolVar(&opts.demo, "demo", false, "Use synthetic survey data instead of a file")
	flags.IntVar(&opts.demoRows, "demo-rows", 2000, "Number of synthetic respondents with --demo")
	flags.Int64Var(&opts.seed, "seed", 42, "Random seed for synthetic data and sampling")
	flags.StringVar(&opts.prefix, "prefix", "why_no_vaccine_", "Column prefix of the reason indicators")
	flags.BoolVar(&opts.json, "json", false, "Print JSON instead of text")
	flags.StringVar(&opts.logLevel, "log-level", "WARN", "Log level: ERROR|WARN|INFO|DEBUG|TRACE")

	rootCmd.AddCommand(
		newSliceCmd(opts),
		newReasonsCmd(opts),
		newSampleCmd(opts),
		newOverviewCmd(opts),
		newProfileCmd(opts),
		newGenerateCmd(),
	)

	return rootCmd
}
