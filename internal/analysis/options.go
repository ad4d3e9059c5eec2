package analysis

import (
	"math"

	"pulsex/domain/survey"
)

// FilterOptions lists what the slice controls can offer
type FilterOptions struct {
	Genders    []string `json:"genders"`
	Races      []string `json:"races"`
	Educations []string `json:"educations"`
	AgeMin     float64  `json:"age_min"`
	AgeMax     float64  `json:"age_max"`
	HasAge     bool     `json:"has_age"`
}

// DefaultAgeRange is the range control's initial position, spanning every age
func (o FilterOptions) DefaultAgeRange() *survey.AgeRange {
	if !o.HasAge {
		return nil
	}
	return &survey.AgeRange{Min: o.AgeMin, Max: o.AgeMax}
}

// BuildFilterOptions collects unique categorical values in first-appearance
// order and the age bounds over non-missing ages
func BuildFilterOptions(table *survey.Table) *FilterOptions {
	options := &FilterOptions{
		Genders:    UniqueValues(table, survey.FieldGender),
		Races:      UniqueValues(table, survey.FieldRace),
		Educations: UniqueValues(table, survey.FieldEducation),
		AgeMin:     math.Inf(1),
		AgeMax:     math.Inf(-1),
	}

	ages := mustColumn(table, survey.FieldAge)
	for i := 0; i < ages.Len(); i++ {
		age, ok := ages.At(i).Float()
		if !ok {
			continue
		}
		options.HasAge = true
		options.AgeMin = math.Min(options.AgeMin, age)
		options.AgeMax = math.Max(options.AgeMax, age)
	}
	if !options.HasAge {
		options.AgeMin, options.AgeMax = 0, 0
	}

	return options
}

// UniqueValues returns the distinct non-missing values of field
func UniqueValues(table *survey.Table, field string) []string {
	counts := CountBy(table, field, nil)
	values := make([]string, len(counts))
	for i, c := range counts {
		values[i] = c.Value
	}
	return values
}
