package analysis

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"pulsex/domain/survey"
)

// Stat is a derived statistic that may be undefined, e.g. the mean of an
// empty partition
type Stat struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
	N       int     `json:"n"`
}

// NoData is the display text of an undefined statistic
const NoData = "no data"

// Percent formats the stat as a percentage
func (s Stat) Percent() string {
	if !s.Defined {
		return NoData
	}
	return fmt.Sprintf("%.2f%%", s.Value*100)
}

// Rounded formats the stat with three decimals
func (s Stat) Rounded() string {
	if !s.Defined {
		return NoData
	}
	return fmt.Sprintf("%.3f", s.Value)
}

// PartitionSummary describes one side of the slice / non-slice split
type PartitionSummary struct {
	Size             int                  `json:"size"`
	ReceivedVaccine  Stat                 `json:"received_vaccine"`
	VaccineIntention Stat                 `json:"vaccine_intention"`
	Reasons          []survey.ReasonCount `json:"reasons"`
}

// SliceReport compares the slice against the rest of the table
type SliceReport struct {
	Criteria   survey.Criteria  `json:"criteria"`
	TotalRows  int              `json:"total_rows"`
	SliceSize  int              `json:"slice_size"`
	Slice      PartitionSummary `json:"slice"`
	NonSlice   PartitionSummary `json:"non_slice"`
	Comparison Comparison       `json:"comparison"`
}

// Summarize computes outcome means and reason counts over the rows where mask is true
func Summarize(table *survey.Table, mask survey.Membership, reasonPrefix string) PartitionSummary {
	return PartitionSummary{
		Size:             mask.Count(),
		ReceivedVaccine:  MeanStat(OutcomeValues(table, survey.FieldReceivedVaccine, mask)),
		VaccineIntention: MeanStat(OutcomeValues(table, survey.FieldVaccineIntention, mask)),
		Reasons:          ReshapeMasked(table, reasonPrefix, mask).SumByReason(),
	}
}

// BuildSliceReport summarizes the slice selected by mask and its complement
func BuildSliceReport(table *survey.Table, criteria survey.Criteria, mask survey.Membership, reasonPrefix string) *SliceReport {
	complement := mask.Negate()
	return &SliceReport{
		Criteria:   criteria,
		TotalRows:  table.Len(),
		SliceSize:  mask.Count(),
		Slice:      Summarize(table, mask, reasonPrefix),
		NonSlice:   Summarize(table, complement, reasonPrefix),
		Comparison: Compare(table, mask),
	}
}

// OutcomeValues collects the non-missing numeric values of field for rows in mask.
// Booleans count as 0/1.
func OutcomeValues(table *survey.Table, field string, mask survey.Membership) []float64 {
	column := mustColumn(table, field)
	values := make([]float64, 0, len(mask))
	for i, in := range mask {
		if !in {
			continue
		}
		if v, ok := column.At(i).Float(); ok {
			values = append(values, v)
		}
	}
	return values
}

// MeanStat returns the mean of values, undefined when there are none
func MeanStat(values []float64) Stat {
	if len(values) == 0 {
		return Stat{}
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return Stat{N: len(values)}
	}
	return Stat{Value: mean, Defined: true, N: len(values)}
}
