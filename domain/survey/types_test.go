package survey

import (
	"encoding/json"
	"testing"

	"pulsex/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableRejectsRaggedRows(t *testing.T) {
	_, err := NewTable([]string{"a", "b"}, [][]Value{{NewNumericValue(1)}})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestNewTableRejectsDuplicateColumns(t *testing.T) {
	_, err := NewTable([]string{"a", "a"}, nil)
	assert.Error(t, err)
}

func TestTableAccessors(t *testing.T) {
	table, err := NewTable(
		[]string{"gender", "why_no_vaccine_A", "age", "why_no_vaccine_B"},
		[][]Value{
			{NewStringValue("Male"), NewNumericValue(1), NewNumericValue(30), NewMissingValue()},
			{NewStringValue("Female"), NewMissingValue(), NewNumericValue(41), NewNumericValue(1)},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"why_no_vaccine_A", "why_no_vaccine_B"}, table.ColumnsWithPrefix("why_no_vaccine_"))
	assert.Equal(t, "Female", table.Value(1, "gender").AsString())
	assert.True(t, table.Value(0, "nope").IsMissing())

	col, ok := table.Column("age")
	require.True(t, ok)
	assert.Equal(t, 2, col.Len())
	assert.Equal(t, 41.0, col.At(1).NumericVal)

	err = table.RequireColumns("gender", "race")
	require.Error(t, err)
	assert.Equal(t, "race", errors.GetField(err))

	cols := table.Columns()
	cols[0] = "mutated"
	assert.Equal(t, "gender", table.Columns()[0], "Columns returns a copy")
}

func TestMembershipHelpers(t *testing.T) {
	m := Membership{true, false, true, false}

	assert.Equal(t, 2, m.Count())
	assert.Equal(t, Membership{false, true, false, true}, m.Negate())
	assert.Equal(t, []int{0, 2}, m.Indices())
	assert.Equal(t, Membership{true, true, true}, NewMembership(3, true))
	assert.Equal(t, Membership{false, false}, NewMembership(2, false))

	clone := m.Clone()
	clone[1] = true
	assert.False(t, m[1])
}

func TestAgeRangeContains(t *testing.T) {
	r := AgeRange{Min: 25, Max: 45}
	assert.True(t, r.Contains(25))
	assert.True(t, r.Contains(45))
	assert.False(t, r.Contains(24.9))
	assert.False(t, AgeRange{Min: 50, Max: 40}.Contains(45))
}

func TestCriteriaCanonicalIgnoresOrder(t *testing.T) {
	a := Criteria{Genders: []string{"Male", "Female"}, Age: &AgeRange{Min: 18, Max: 30}}
	b := Criteria{Genders: []string{"Female", "Male"}, Age: &AgeRange{Min: 18, Max: 30}}
	c := Criteria{Genders: []string{"Female", "Male"}}

	assert.Equal(t, a.Canonical(), b.Canonical())
	assert.NotEqual(t, a.Canonical(), c.Canonical())
	assert.True(t, Criteria{}.IsEmpty())
	assert.False(t, c.IsEmpty())
}

func TestCriteriaCanonicalIsUnambiguous(t *testing.T) {
	cases := []struct {
		name string
		a, b Criteria
	}{
		{"separator inside value", Criteria{Genders: []string{"a\x1fb"}}, Criteria{Genders: []string{"a", "b"}}},
		{"field terminator inside value", Criteria{Genders: []string{"a;race=b"}}, Criteria{Genders: []string{"a"}, Races: []string{"b"}}},
		{"empty value", Criteria{Races: []string{""}}, Criteria{}},
		{"length digits", Criteria{Educations: []string{"1:a"}}, Criteria{Educations: []string{"a", "a"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEqual(t, tc.a.Canonical(), tc.b.Canonical())
		})
	}
}

func TestSumByReasonKeepsColumnOrderAndZeros(t *testing.T) {
	lt := LongTable{
		Reasons: []string{"Cost", "Side effects", "Distrust"},
		Rows: []ReasonRow{
			{ID: 0, Reason: "Distrust", Agree: 1},
			{ID: 1, Reason: "Cost", Agree: 1},
			{ID: 2, Reason: "Distrust", Agree: 1},
		},
	}

	assert.Equal(t, []ReasonCount{
		{Reason: "Cost", Count: 1},
		{Reason: "Side effects", Count: 0},
		{Reason: "Distrust", Count: 2},
	}, lt.SumByReason())
	assert.Equal(t, []string{"id", "reason", "agree"}, lt.Columns())
}

func TestValueJSONAndTruthiness(t *testing.T) {
	data, err := json.Marshal([]Value{
		NewStringValue("x"), NewNumericValue(2.5), NewBooleanValue(true), NewMissingValue(),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `["x", 2.5, true, null]`, string(data))

	assert.True(t, NewStringValue("").IsMissing())
	assert.True(t, NewNumericValue(1).Truthy())
	assert.False(t, NewNumericValue(0).Truthy())
	assert.False(t, NewMissingValue().Truthy())

	f, ok := NewBooleanValue(true).Float()
	assert.True(t, ok)
	assert.Equal(t, 1.0, f)
	_, ok = NewStringValue("a").Float()
	assert.False(t, ok)
}
