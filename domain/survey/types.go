// Package survey holds the in-memory model of the Household Pulse survey:
// the immutable record table, filter criteria, membership vectors and the
// long-form reason table derived from the indicator columns.
package survey

import (
	"fmt"
	"sort"
	"strings"
)

// Field names of the pulse dataset
const (
	FieldGender            = "gender"
	FieldRace              = "race"
	FieldEducation         = "education"
	FieldAge               = "age"
	FieldSexualOrientation = "sexual_orientation"
	FieldMaritalStatus     = "marital_status"
	FieldHispanic          = "hispanic"
	FieldReceivedVaccine   = "received_vaccine"
	FieldVaccineIntention  = "vaccine_intention"
)

// RequiredFields lists the columns every pulse table must carry
var RequiredFields = []string{
	FieldGender,
	FieldRace,
	FieldEducation,
	FieldAge,
	FieldSexualOrientation,
	FieldMaritalStatus,
	FieldHispanic,
	FieldReceivedVaccine,
	FieldVaccineIntention,
}

// CategoricalFields are filterable through value sets
var CategoricalFields = []string{FieldGender, FieldEducation, FieldRace}

// NumericFields are coerced to numbers on load
var NumericFields = []string{FieldAge, FieldVaccineIntention}

// BooleanFields are coerced to booleans on load
var BooleanFields = []string{FieldHispanic, FieldReceivedVaccine}

// AgeRange is an inclusive numeric range on age
type AgeRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether age lies within the range, both ends inclusive.
// A range with Min > Max contains nothing.
func (r AgeRange) Contains(age float64) bool {
	return age >= r.Min && age <= r.Max
}

// Criteria is the set of user-selected filters defining a slice.
// An empty value set places no restriction on its field; a nil Age
// leaves age unconstrained.
type Criteria struct {
	Genders    []string  `json:"genders"`
	Races      []string  `json:"races"`
	Educations []string  `json:"educations"`
	Age        *AgeRange `json:"age,omitempty"`
}

// IsEmpty reports whether the criteria select every row
func (c Criteria) IsEmpty() bool {
	return len(c.Genders) == 0 && len(c.Races) == 0 && len(c.Educations) == 0 && c.Age == nil
}

// Canonical returns a stable textual form, independent of selection order.
// Each set carries its size and every value its byte length, so distinct
// criteria never share a form whatever characters the values contain.
func (c Criteria) Canonical() string {
	var b strings.Builder
	writeSet := func(name string, values []string) {
		sorted := append([]string(nil), values...)
		sort.Strings(sorted)
		fmt.Fprintf(&b, "%s[%d]", name, len(sorted))
		for _, v := range sorted {
			fmt.Fprintf(&b, "%d:%s", len(v), v)
		}
		b.WriteString(";")
	}
	writeSet(FieldGender, c.Genders)
	writeSet(FieldRace, c.Races)
	writeSet(FieldEducation, c.Educations)
	if c.Age != nil {
		fmt.Fprintf(&b, "%s=[%g,%g]", FieldAge, c.Age.Min, c.Age.Max)
	} else {
		b.WriteString(FieldAge + "=*")
	}
	return b.String()
}

// Membership is a boolean vector aligned 1:1 with the rows of a table
type Membership []bool

// NewMembership returns a vector of n entries all set to value
func NewMembership(n int, value bool) Membership {
	m := make(Membership, n)
	if value {
		for i := range m {
			m[i] = true
		}
	}
	return m
}

// Count returns the number of rows in the slice
func (m Membership) Count() int {
	count := 0
	for _, in := range m {
		if in {
			count++
		}
	}
	return count
}

// Negate returns the complement vector
func (m Membership) Negate() Membership {
	out := make(Membership, len(m))
	for i, in := range m {
		out[i] = !in
	}
	return out
}

// Indices returns the row ids in the slice, ascending
func (m Membership) Indices() []int {
	indices := make([]int, 0, len(m))
	for i, in := range m {
		if in {
			indices = append(indices, i)
		}
	}
	return indices
}

// Clone returns an independent copy
func (m Membership) Clone() Membership {
	return append(Membership(nil), m...)
}

// Long-form reason table column names
const (
	ColumnID     = "id"
	ColumnReason = "reason"
	ColumnAgree  = "agree"
)

// ReasonRow is one (row id, reason category) pair with a present indicator
type ReasonRow struct {
	ID     int    `json:"id"`
	Reason string `json:"reason"`
	Agree  int    `json:"agree"`
}

// ReasonCount is the number of agreeing rows per reason category
type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// LongTable is the wide-to-long reshape of an indicator family
type LongTable struct {
	// Reasons lists the categories of the melted columns in column order
	Reasons []string    `json:"reasons"`
	Rows    []ReasonRow `json:"rows"`
}

// Columns returns the schema of the long-form table
func (lt *LongTable) Columns() []string {
	return []string{ColumnID, ColumnReason, ColumnAgree}
}

// Len returns the number of rows
func (lt *LongTable) Len() int {
	return len(lt.Rows)
}

// SumByReason sums the agree column per category. Every melted category is
// reported, including those with zero agreeing rows.
func (lt *LongTable) SumByReason() []ReasonCount {
	position := make(map[string]int, len(lt.Reasons))
	counts := make([]ReasonCount, 0, len(lt.Reasons))
	for _, reason := range lt.Reasons {
		if _, seen := position[reason]; seen {
			continue
		}
		position[reason] = len(counts)
		counts = append(counts, ReasonCount{Reason: reason})
	}

	for _, row := range lt.Rows {
		idx, ok := position[row.Reason]
		if !ok {
			idx = len(counts)
			position[row.Reason] = idx
			counts = append(counts, ReasonCount{Reason: row.Reason})
		}
		counts[idx].Count += row.Agree
	}
	return counts
}
