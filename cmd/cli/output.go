package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"text/tabwriter"

	"pulsex/domain/survey"
	"pulsex/internal/analysis"
	"pulsex/internal/profiling"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runSlice(w io.Writer, table *survey.Table, criteria survey.Criteria, opts *dataOptions) error {
	labels := analysis.ComputeCriteriaMembership(table, criteria)
	report := analysis.BuildSliceReport(table, criteria, labels, opts.prefix)

	if opts.json {
		return writeJSON(w, report)
	}

	fmt.Fprintf(w, "The sliced dataset contains %d elements (of %d)\n\n", report.SliceSize, report.TotalRows)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tIn slice\tOut of slice")
	fmt.Fprintf(tw, "Size\t%d\t%d\n", report.Slice.Size, report.NonSlice.Size)
	fmt.Fprintf(tw, "Percentage received vaccine\t%s\t%s\n",
		report.Slice.ReceivedVaccine.Percent(), report.NonSlice.ReceivedVaccine.Percent())
	fmt.Fprintf(tw, "Mean intention\t%s\t%s\n",
		report.Slice.VaccineIntention.Rounded(), report.NonSlice.VaccineIntention.Rounded())
	for i, reason := range report.Slice.Reasons {
		fmt.Fprintf(tw, "  %s\t%d\t%d\n", reason.Reason, reason.Count, report.NonSlice.Reasons[i].Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	printTTest(w, "received_vaccine", report.Comparison.ReceivedVaccine)
	printTTest(w, "vaccine_intention", report.Comparison.VaccineIntention)
	return nil
}

func printTTest(w io.Writer, field string, result analysis.TTest) {
	if !result.Computed {
		fmt.Fprintf(w, "Welch t-test on %s: not computed (%s)\n", field, result.Reason)
		return
	}
	fmt.Fprintf(w, "Welch t-test on %s: t=%.3f df=%.1f p=%.4g\n", field, result.TStatistic, result.DF, result.PValue)
}

func runReasons(w io.Writer, table *survey.Table, criteria survey.Criteria, long bool, opts *dataOptions) error {
	var mask survey.Membership
	if !criteria.IsEmpty() {
		mask = analysis.ComputeCriteriaMembership(table, criteria)
	}
	reasons := analysis.ReshapeMasked(table, opts.prefix, mask)

	if opts.json {
		if long {
			return writeJSON(w, reasons)
		}
		return writeJSON(w, reasons.SumByReason())
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if long {
		fmt.Fprintln(tw, strings.Join(reasons.Columns(), "\t"))
		for _, row := range reasons.Rows {
			fmt.Fprintf(tw, "%d\t%s\t%d\n", row.ID, row.Reason, row.Agree)
		}
	} else {
		fmt.Fprintln(tw, "reason\tagree")
		for _, count := range reasons.SumByReason() {
			fmt.Fprintf(tw, "%s\t%d\n", count.Reason, count.Count)
		}
	}
	return tw.Flush()
}

func runSample(w io.Writer, table *survey.Table, rng *rand.Rand, noVaccine bool, opts *dataOptions) error {
	row, err := analysis.SamplePerson(table, rng, noVaccine)
	if err != nil {
		return err
	}
	person, err := analysis.DescribePerson(table, row, opts.prefix)
	if err != nil {
		return err
	}

	if opts.json {
		return writeJSON(w, person)
	}
	for _, sentence := range person.Sentences {
		fmt.Fprintln(w, sentence)
	}
	return nil
}

func printOverview(w io.Writer, overview *analysis.Overview, asJSON bool) error {
	if asJSON {
		return writeJSON(w, overview)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	printCounts(tw, "race", overview.Race)
	fmt.Fprintln(tw)
	printCounts(tw, "education", overview.Education)
	return tw.Flush()
}

func printCounts(w io.Writer, title string, counts []analysis.CategoryCount) {
	fmt.Fprintf(w, "%s\tcount\n", title)
	for _, c := range counts {
		marker := ""
		if c.Selected {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s\t%d\n", c.Value, marker, c.Count)
	}
}

func runProfile(w io.Writer, table *survey.Table, asJSON bool) error {
	profiles := profiling.NewDataProfiler().ProfileTable(table)
	if asJSON {
		return writeJSON(w, profiles)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Column\tType\tMissing\tUnique\tMean\tMedian\tMin\tMax")
	for _, p := range profiles {
		fmt.Fprintf(tw, "%s\t%s\t%.1f%%\t%d", p.Name, p.Type, p.MissingRate*100, p.Unique)
		if p.Summary != nil {
			fmt.Fprintf(tw, "\t%.2f\t%.2f\t%g\t%g\n", p.Summary.Mean, p.Summary.Median, p.Summary.Min, p.Summary.Max)
		} else {
			fmt.Fprintln(tw, "\t\t\t\t")
		}
	}
	return tw.Flush()
}
