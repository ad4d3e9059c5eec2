package analysis

import (
	"testing"

	"pulsex/domain/survey"
)

const testPrefix = "why_no_vaccine_"

var (
	str     = survey.NewStringValue
	num     = survey.NewNumericValue
	boolean = survey.NewBooleanValue
	missing = survey.NewMissingValue
)

var fixtureColumns = []string{
	survey.FieldGender,
	survey.FieldRace,
	survey.FieldEducation,
	survey.FieldAge,
	survey.FieldSexualOrientation,
	survey.FieldMaritalStatus,
	survey.FieldHispanic,
	survey.FieldReceivedVaccine,
	survey.FieldVaccineIntention,
	testPrefix + "A",
	testPrefix + "B",
}

// fixtureTable holds five respondents; row 4 is missing gender, education and age
func fixtureTable(t *testing.T) *survey.Table {
	t.Helper()
	table, err := survey.NewTable(fixtureColumns, [][]survey.Value{
		{str("Male"), str("White"), str("Some college"), num(20), str("Straight"), str("Married"), boolean(false), boolean(true), missing(), missing(), missing()},
		{str("Female"), str("Black"), str("Graduate degree"), num(30), str("Bisexual"), str("Never married"), boolean(true), boolean(false), num(4), num(1), missing()},
		{str("Female"), str("White"), str("Some college"), num(40), str("Straight"), str("Divorced"), boolean(false), boolean(false), num(2), missing(), num(1)},
		{str("Male"), str("Asian"), str("Bachelors degree"), num(50), str("Gay or lesbian"), str("Married"), boolean(false), boolean(true), missing(), missing(), missing()},
		{missing(), str("White"), missing(), missing(), str("Straight"), str("Widowed"), boolean(true), boolean(false), num(5), num(1), num(1)},
	})
	if err != nil {
		t.Fatalf("failed to build fixture table: %v", err)
	}
	return table
}

func newTestTable(t *testing.T, columns []string, rows ...[]survey.Value) *survey.Table {
	t.Helper()
	table, err := survey.NewTable(columns, rows)
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}
	return table
}
