// Package profiling describes the columns of a loaded survey table: type,
// missingness, cardinality and, for numeric columns, the value distribution.
package profiling

import (
	"pulsex/domain/survey"
)

// ColumnProfile summarises one column of the survey table
type ColumnProfile struct {
	Name        string           `json:"name"`
	Type        survey.ValueType `json:"type"`
	Count       int              `json:"count"`
	Missing     int              `json:"missing"`
	MissingRate float64          `json:"missing_rate"`
	Unique      int              `json:"unique"`
	Summary     *Summary         `json:"summary,omitempty"`
}

// DataProfiler profiles survey tables
type DataProfiler struct{}

// NewDataProfiler creates a new data profiler
func NewDataProfiler() *DataProfiler {
	return &DataProfiler{}
}

// ProfileTable profiles every column in source order
func (dp *DataProfiler) ProfileTable(table *survey.Table) []ColumnProfile {
	names := table.Columns()
	profiles := make([]ColumnProfile, 0, len(names))
	for _, name := range names {
		column, _ := table.Column(name)
		profiles = append(profiles, dp.ProfileColumn(column))
	}
	return profiles
}

// ProfileColumn computes the profile of a single column. The type reported
// is the type of the present values; an all-missing column reports missing.
func (dp *DataProfiler) ProfileColumn(column survey.Column) ColumnProfile {
	profile := ColumnProfile{
		Name:  column.Name(),
		Type:  survey.ValueTypeMissing,
		Count: column.Len(),
	}

	distinct := make(map[string]struct{})
	numeric := make([]float64, 0, column.Len())
	for i := 0; i < column.Len(); i++ {
		value := column.At(i)
		if value.IsMissing() {
			profile.Missing++
			continue
		}
		profile.Type = value.Type
		distinct[value.String()] = struct{}{}
		if value.IsNumeric() {
			numeric = append(numeric, value.NumericVal)
		}
	}

	profile.Unique = len(distinct)
	if profile.Count > 0 {
		profile.MissingRate = float64(profile.Missing) / float64(profile.Count)
	}

	if profile.Type == survey.ValueTypeNumeric && len(numeric) > 0 {
		if summary, err := AnalyzeDistribution(numeric); err == nil {
			profile.Summary = summary
		}
	}

	return profile
}
