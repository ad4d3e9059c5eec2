package testkit

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"pulsex/adapters/excel"
	"pulsex/domain/survey"
)

// PulseGeneratorConfig configures the synthetic survey generator
type PulseGeneratorConfig struct {
	Respondents  int     `json:"respondents"`
	ReasonPrefix string  `json:"reason_prefix"`
	VaccineRate  float64 `json:"vaccine_rate"`
	MissingRate  float64 `json:"missing_rate"` // Probability a demographic cell is blank
	Seed         int64   `json:"seed"`
}

// DefaultPulseConfig returns sensible defaults for pulse data generation
func DefaultPulseConfig() PulseGeneratorConfig {
	return PulseGeneratorConfig{
		Respondents:  2000,
		ReasonPrefix: "why_no_vaccine_",
		VaccineRate:  0.78,
		MissingRate:  0.01,
		Seed:         42,
	}
}

// Category values used by the generator
var (
	Genders            = []string{"Male", "Female", "Transgender", "None of these"}
	Races              = []string{"White", "Black", "Asian", "Any other race alone, or race in combination"}
	Educations         = []string{"Less than high school", "Some high school", "High school graduate or equivalent", "Some college", "Associates degree", "Bachelors degree", "Graduate degree"}
	SexualOrientations = []string{"Straight", "Gay or lesbian", "Bisexual", "Something else", "I don't know"}
	MaritalStatuses    = []string{"Married", "Widowed", "Divorced", "Separated", "Never married"}
	HesitancyReasons   = []string{"Concerned about side effects", "Don't know if vaccine will work", "Plan to wait and see", "Don't believe I need it", "Don't trust the vaccine", "Don't trust the government", "Doctor has not recommended it", "Cost", "Other"}
	genderWeights      = []float64{0.47, 0.51, 0.01, 0.01}
	raceWeights        = []float64{0.80, 0.09, 0.06, 0.05}
	educationWeights   = []float64{0.02, 0.04, 0.17, 0.21, 0.10, 0.26, 0.20}
	orientationWeights = []float64{0.91, 0.03, 0.03, 0.01, 0.02}
	maritalWeights     = []float64{0.56, 0.06, 0.14, 0.02, 0.22}
)

// PulseDataGenerator generates pulse-like survey rows
type PulseDataGenerator struct {
	config PulseGeneratorConfig
	rng    *rand.Rand
}

// NewPulseDataGenerator creates a new pulse data generator
func NewPulseDataGenerator(config PulseGeneratorConfig) *PulseDataGenerator {
	if config.ReasonPrefix == "" {
		config.ReasonPrefix = DefaultPulseConfig().ReasonPrefix
	}
	return &PulseDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Headers returns the column layout of generated data
func (g *PulseDataGenerator) Headers() []string {
	headers := append([]string(nil), survey.RequiredFields...)
	for _, reason := range HesitancyReasons {
		headers = append(headers, g.config.ReasonPrefix+reason)
	}
	return headers
}

// Generate produces raw rows in the same shape the file readers return
func (g *PulseDataGenerator) Generate() *excel.RawData {
	data := &excel.RawData{
		Headers: g.Headers(),
		Rows:    make([][]string, 0, g.config.Respondents),
	}
	for i := 0; i < g.config.Respondents; i++ {
		data.Rows = append(data.Rows, g.generateRespondent())
	}
	return data
}

// WriteCSV writes generated data as CSV
func (g *PulseDataGenerator) WriteCSV(w io.Writer) error {
	data := g.Generate()
	writer := csv.NewWriter(w)
	if err := writer.Write(data.Headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(data.Rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

func (g *PulseDataGenerator) generateRespondent() []string {
	age := 18 + int(math.Abs(g.rng.NormFloat64()*16+30))
	if age > 88 {
		age = 88
	}
	education := g.pick(Educations, educationWeights)

	// Older and more educated respondents are more likely to be vaccinated
	rate := g.config.VaccineRate + float64(age-50)*0.004
	if education == "Bachelors degree" || education == "Graduate degree" {
		rate += 0.08
	}
	vaccinated := g.rng.Float64() < rate

	row := []string{
		g.maybeMissing(g.pick(Genders, genderWeights)),
		g.maybeMissing(g.pick(Races, raceWeights)),
		g.maybeMissing(education),
		strconv.Itoa(age),
		g.maybeMissing(g.pick(SexualOrientations, orientationWeights)),
		g.maybeMissing(g.pick(MaritalStatuses, maritalWeights)),
		strconv.FormatBool(g.rng.Float64() < 0.14),
		strconv.FormatBool(vaccinated),
	}

	if vaccinated {
		row = append(row, "")
		for range HesitancyReasons {
			row = append(row, "")
		}
		return row
	}

	intention := 1 + g.rng.Intn(5)
	row = append(row, strconv.Itoa(intention))

	// Unticked reasons stay blank; every unvaccinated respondent ticks at least one
	ticked := false
	for i := range HesitancyReasons {
		if g.rng.Float64() < 0.25+0.05*float64(intention)-0.02*float64(i) {
			row = append(row, "1.0")
			ticked = true
		} else {
			row = append(row, "")
		}
	}
	if !ticked {
		row[len(row)-1] = "1.0"
	}
	return row
}

func (g *PulseDataGenerator) pick(values []string, weights []float64) string {
	r := g.rng.Float64()
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r < cumulative {
			return values[i]
		}
	}
	return values[len(values)-1]
}

func (g *PulseDataGenerator) maybeMissing(value string) string {
	if g.rng.Float64() < g.config.MissingRate {
		return ""
	}
	return value
}
