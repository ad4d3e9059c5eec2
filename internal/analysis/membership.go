package analysis

import (
	"pulsex/domain/survey"
	"pulsex/internal/errors"
)

// ComputeMembership marks the rows of table that belong to the slice.
//
// Fields are AND-combined; values within a field are OR-combined. An empty
// value set places no restriction on its field and a nil age range leaves age
// unconstrained. A range with Min > Max selects nothing. Rows whose value is
// missing never match a non-empty set or a present range.
//
// A criterion naming a column the table lacks is a programming error: the
// loader rejects such tables, so this panics with a MISSING_COLUMN AppError.
func ComputeMembership(table *survey.Table, genders, races, educations []string, ageRange *survey.AgeRange) survey.Membership {
	labels := survey.NewMembership(table.Len(), true)

	narrowBySet(table, labels, survey.FieldGender, genders)
	narrowBySet(table, labels, survey.FieldEducation, educations)
	narrowBySet(table, labels, survey.FieldRace, races)

	if ageRange != nil {
		ages := mustColumn(table, survey.FieldAge)
		for i := range labels {
			if !labels[i] {
				continue
			}
			age, ok := ages.At(i).Float()
			labels[i] = ok && ageRange.Contains(age)
		}
	}

	return labels
}

// ComputeCriteriaMembership is ComputeMembership over a Criteria value
func ComputeCriteriaMembership(table *survey.Table, criteria survey.Criteria) survey.Membership {
	return ComputeMembership(table, criteria.Genders, criteria.Races, criteria.Educations, criteria.Age)
}

func narrowBySet(table *survey.Table, labels survey.Membership, field string, selected []string) {
	if len(selected) == 0 {
		return
	}

	set := make(map[string]bool, len(selected))
	for _, v := range selected {
		set[v] = true
	}

	column := mustColumn(table, field)
	for i := range labels {
		if !labels[i] {
			continue
		}
		value := column.At(i)
		labels[i] = !value.IsMissing() && set[value.String()]
	}
}

func mustColumn(table *survey.Table, field string) survey.Column {
	column, ok := table.Column(field)
	if !ok {
		panic(errors.MissingColumn(field))
	}
	return column
}
