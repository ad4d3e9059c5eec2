package analysis

import (
	"fmt"
	"math/rand"
	"strings"

	"pulsex/domain/survey"
	"pulsex/internal/errors"
)

// PersonDescription is a sampled respondent rendered for display
type PersonDescription struct {
	Row        int      `json:"row"`
	Profile    string   `json:"profile"`
	Vaccinated bool     `json:"vaccinated"`
	Status     string   `json:"status"`
	Intention  string   `json:"intention,omitempty"`
	Reasons    []string `json:"reasons,omitempty"`
	Sentences  []string `json:"sentences"`
}

// SamplePerson picks a random row. With onlyUnvaccinated the pool is limited
// to rows whose received_vaccine is present and false.
func SamplePerson(table *survey.Table, rng *rand.Rand, onlyUnvaccinated bool) (int, error) {
	pool := survey.NewMembership(table.Len(), true)
	if onlyUnvaccinated {
		received := mustColumn(table, survey.FieldReceivedVaccine)
		for i := range pool {
			v := received.At(i)
			pool[i] = !v.IsMissing() && !v.Truthy()
		}
	}

	candidates := pool.Indices()
	if len(candidates) == 0 {
		if onlyUnvaccinated {
			return -1, errors.NotFound("unvaccinated respondent")
		}
		return -1, errors.NotFound("respondent")
	}
	return candidates[rng.Intn(len(candidates))], nil
}

// DescribePerson renders one row as a short narrative. Reasons are the
// indicator columns under prefix whose value is greater than zero.
func DescribePerson(table *survey.Table, row int, reasonPrefix string) (*PersonDescription, error) {
	if row < 0 || row >= table.Len() {
		return nil, errors.InvalidInput(fmt.Sprintf("row %d out of range [0, %d)", row, table.Len()))
	}

	get := func(field string) survey.Value {
		return table.Value(row, field)
	}

	hispanic := "non-Hispanic"
	if get(survey.FieldHispanic).Truthy() {
		hispanic = "Hispanic"
	}

	desc := &PersonDescription{
		Row: row,
		Profile: fmt.Sprintf("This person is a %s-year-old %s, %s %s, of %s race (%s).",
			display(get(survey.FieldAge)),
			display(get(survey.FieldSexualOrientation)),
			strings.ToLower(display(get(survey.FieldMaritalStatus))),
			strings.ToLower(display(get(survey.FieldGender))),
			display(get(survey.FieldRace)),
			hispanic,
		),
		Vaccinated: get(survey.FieldReceivedVaccine).Truthy(),
	}
	desc.Sentences = append(desc.Sentences, desc.Profile)

	if desc.Vaccinated {
		desc.Status = "They have received the vaccine."
		desc.Sentences = append(desc.Sentences, desc.Status)
		return desc, nil
	}

	desc.Intention = display(get(survey.FieldVaccineIntention))
	desc.Status = fmt.Sprintf("They have not received the vaccine and their intention to not get the vaccine is %s.", desc.Intention)
	desc.Sentences = append(desc.Sentences, desc.Status)

	for _, name := range table.ColumnsWithPrefix(reasonPrefix) {
		if v, ok := get(name).Float(); ok && v > 0 {
			desc.Reasons = append(desc.Reasons, strings.TrimPrefix(name, reasonPrefix))
		}
	}
	if len(desc.Reasons) > 0 {
		desc.Sentences = append(desc.Sentences,
			"Their reasons for not getting the vaccine include: "+strings.Join(desc.Reasons, ", ")+".")
	}
	return desc, nil
}

func display(v survey.Value) string {
	if v.IsMissing() {
		return "unknown"
	}
	return v.String()
}
