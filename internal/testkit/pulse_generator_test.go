package testkit

import (
	"bytes"
	"encoding/csv"
	"testing"

	"pulsex/domain/survey"
)

func TestPulseDataGenerator_Basic(t *testing.T) {
	config := DefaultPulseConfig()
	config.Respondents = 200

	data := NewPulseDataGenerator(config).Generate()

	if len(data.Rows) != 200 {
		t.Fatalf("Expected 200 rows, got %d", len(data.Rows))
	}
	for i, row := range data.Rows {
		if len(row) != len(data.Headers) {
			t.Fatalf("Row %d has %d cells, expected %d", i, len(row), len(data.Headers))
		}
	}
	for i, field := range survey.RequiredFields {
		if data.Headers[i] != field {
			t.Errorf("Expected header %d to be %s, got %s", i, field, data.Headers[i])
		}
	}
}

func TestPulseDataGenerator_Deterministic(t *testing.T) {
	config := DefaultPulseConfig()
	config.Respondents = 50

	a := NewPulseDataGenerator(config).Generate()
	b := NewPulseDataGenerator(config).Generate()

	for i := range a.Rows {
		for j := range a.Rows[i] {
			if a.Rows[i][j] != b.Rows[i][j] {
				t.Fatalf("Same seed produced different cell at (%d,%d): %q vs %q", i, j, a.Rows[i][j], b.Rows[i][j])
			}
		}
	}
}

func TestPulseDataGenerator_ReasonsOnlyForUnvaccinated(t *testing.T) {
	config := DefaultPulseConfig()
	config.Respondents = 300

	data := NewPulseDataGenerator(config).Generate()
	reasonStart := len(survey.RequiredFields)
	received := 7

	for i, row := range data.Rows {
		ticked := 0
		for _, cell := range row[reasonStart:] {
			if cell != "" {
				ticked++
			}
		}
		if row[received] == "true" && ticked != 0 {
			t.Errorf("Vaccinated respondent %d has %d reasons", i, ticked)
		}
		if row[received] == "false" && ticked == 0 {
			t.Errorf("Unvaccinated respondent %d has no reasons", i)
		}
	}
}

func TestPulseDataGenerator_WriteCSV(t *testing.T) {
	config := DefaultPulseConfig()
	config.Respondents = 10

	var buf bytes.Buffer
	if err := NewPulseDataGenerator(config).WriteCSV(&buf); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse written CSV: %v", err)
	}
	if len(records) != 11 {
		t.Errorf("Expected header plus 10 rows, got %d records", len(records))
	}
}
