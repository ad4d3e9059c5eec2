package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"

	"pulsex/domain/survey"
	"pulsex/internal"
	"pulsex/internal/analysis"
	"pulsex/internal/config"
	"pulsex/internal/dataset"
	"pulsex/internal/errors"
	"pulsex/internal/testkit"

	"github.com/spf13/cobra"
)

// dataOptions are the persistent flags shared by every data command
type dataOptions struct {
	dataFile string
	demo     bool
	demoRows int
	seed     int64
	prefix   string
	json     bool
	logLevel string
}

// sliceFlags collect the filter criteria of a command
type sliceFlags struct {
	genders    []string
	races      []string
	educations []string
	ageMin     string
	ageMax     string
}

func (f *sliceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.genders, "gender", nil, "Gender to include (repeatable)")
	cmd.Flags().StringArrayVar(&f.races, "race", nil, "Race to include (repeatable)")
	cmd.Flags().StringArrayVar(&f.educations, "education", nil, "Education level to include (repeatable)")
	cmd.Flags().StringVar(&f.ageMin, "age-min", "", "Inclusive lower age bound")
	cmd.Flags().StringVar(&f.ageMax, "age-max", "", "Inclusive upper age bound")
}

func (f *sliceFlags) criteria(cmd *cobra.Command) (survey.Criteria, error) {
	ageRange, err := survey.ParseAgeBounds(
		f.ageMin, cmd.Flags().Changed("age-min"),
		f.ageMax, cmd.Flags().Changed("age-max"),
	)
	if err != nil {
		return survey.Criteria{}, err
	}
	return survey.Criteria{
		Genders:    f.genders,
		Races:      f.races,
		Educations: f.educations,
		Age:        ageRange,
	}, nil
}

func (o *dataOptions) load() (*survey.Table, error) {
	logger := internal.NewLogger(internal.ParseLogLevel(o.logLevel))
	defer logger.Sync()

	// An empty prefix would claim every column as a reason indicator
	if o.prefix == "" {
		return nil, errors.ConfigInvalid("--prefix cannot be empty")
	}

	loader := dataset.NewLoader(o.prefix, logger)
	if o.demo {
		return loader.BuildTable(testkit.NewTestKit(o.demoRows, o.seed).RawData())
	}
	if o.dataFile == "" {
		return nil, errors.ConfigInvalid("no data file: pass --data, set DATA_FILE, or use --demo")
	}
	return loader.LoadFile(o.dataFile)
}

func newSliceCmd(opts *dataOptions) *cobra.Command {
	flags := &sliceFlags{}

	cmd := &cobra.Command{
		Use:   "slice",
		Short: "Compare a demographic slice against the rest of the respondents",
		Long: `Compute slice membership for the given filters and report vaccination
rate, mean intention and hesitancy reasons for the slice and its complement.

Example: pulsex-cli slice --data pulse39.csv --gender Female --age-min 25 --age-max 45`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := flags.criteria(cmd)
			if err != nil {
				return err
			}
			table, err := opts.load()
			if err != nil {
				return err
			}
			return runSlice(cmd.OutOrStdout(), table, criteria, opts)
		},
	}
	flags.register(cmd)
	return cmd
}

func newReasonsCmd(opts *dataOptions) *cobra.Command {
	flags := &sliceFlags{}
	var long bool

	cmd := &cobra.Command{
		Use:   "reasons",
		Short: "Reshape the reason indicator columns into long form",
		Long: `Melt the reason indicator columns into (id, reason, agree) rows, optionally
restricted to a slice, and print the per-reason totals or the rows themselves.

Example: pulsex-cli reasons --demo --race Black --long`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := flags.criteria(cmd)
			if err != nil {
				return err
			}
			table, err := opts.load()
			if err != nil {
				return err
			}
			return runReasons(cmd.OutOrStdout(), table, criteria, long, opts)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&long, "long", false, "Print every long-form row instead of totals")
	return cmd
}

func newSampleCmd(opts *dataOptions) *cobra.Command {
	var noVaccine bool

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Describe a randomly chosen respondent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.load()
			if err != nil {
				return err
			}
			return runSample(cmd.OutOrStdout(), table, rand.New(rand.NewSource(opts.seed)), noVaccine, opts)
		},
	}
	cmd.Flags().BoolVar(&noVaccine, "no-vaccine", false, "Only sample people who have not received the vaccine")
	return cmd
}

func newOverviewCmd(opts *dataOptions) *cobra.Command {
	var races, educations []string
	var layoutFile string

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Count respondents by race and education",
		Long: `Print the race and education distributions. Selecting races restricts the
education counts and selecting educations restricts the race counts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := config.LoadLayout(layoutFile)
			if err != nil {
				return err
			}
			table, err := opts.load()
			if err != nil {
				return err
			}
			overview := analysis.BuildOverview(table, races, educations, layout.EducationOrder)
			return printOverview(cmd.OutOrStdout(), overview, opts.json)
		},
	}
	cmd.Flags().StringArrayVar(&races, "race", nil, "Selected race (repeatable)")
	cmd.Flags().StringArrayVar(&educations, "education", nil, "Selected education level (repeatable)")
	cmd.Flags().StringVar(&layoutFile, "layout", os.Getenv("LAYOUT_FILE"), "Dashboard layout YAML")
	return cmd
}

func newProfileCmd(opts *dataOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Summarize type, missingness and distribution of every column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := opts.load()
			if err != nil {
				return err
			}
			return runProfile(cmd.OutOrStdout(), table, opts.json)
		},
	}
}

func newGenerateCmd() *cobra.Command {
	var rows int
	var seed int64
	var out string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic pulse-like survey CSV",
		Long: `Generate a seeded synthetic dataset with the same columns as the pulse
file, useful for demos and tests.

Example: pulsex-cli generate --rows 5000 --out demo.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows <= 0 {
				return errors.InvalidInput("--rows must be positive")
			}
			return runGenerate(cmd.OutOrStdout(), rows, seed, out)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 2000, "Number of respondents")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed")
	cmd.Flags().StringVar(&out, "out", "", "Output file (stdout when empty)")
	return cmd
}

func runGenerate(stdout io.Writer, rows int, seed int64, out string) error {
	genConfig := testkit.DefaultPulseConfig()
	genConfig.Respondents = rows
	genConfig.Seed = seed
	generator := testkit.NewPulseDataGenerator(genConfig)

	if out == "" {
		return generator.WriteCSV(stdout)
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}

	w := bufio.NewWriter(file)
	writeErr := generator.WriteCSV(w)
	if writeErr == nil {
		writeErr = w.Flush()
	}
	closeErr := file.Close()
	if writeErr != nil {
		return fmt.Errorf("failed to write %s: %w", out, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", out, closeErr)
	}
	fmt.Fprintf(stdout, "Wrote %d respondents to %s\n", rows, out)
	return nil
}
