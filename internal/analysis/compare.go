package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"pulsex/domain/survey"
)

// TTest is the outcome of Welch's t-test between the slice and the rest
type TTest struct {
	Computed   bool    `json:"computed"`
	Reason     string  `json:"reason,omitempty"`
	TStatistic float64 `json:"t_statistic"`
	DF         float64 `json:"df"`
	PValue     float64 `json:"p_value"`
	MeanDiff   float64 `json:"mean_diff"`
}

// Comparison holds the tests for both outcome fields
type Comparison struct {
	ReceivedVaccine  TTest `json:"received_vaccine"`
	VaccineIntention TTest `json:"vaccine_intention"`
}

// Compare tests whether the slice differs from the non-slice on each outcome
func Compare(table *survey.Table, mask survey.Membership) Comparison {
	complement := mask.Negate()
	return Comparison{
		ReceivedVaccine: WelchTTest(
			OutcomeValues(table, survey.FieldReceivedVaccine, mask),
			OutcomeValues(table, survey.FieldReceivedVaccine, complement),
		),
		VaccineIntention: WelchTTest(
			OutcomeValues(table, survey.FieldVaccineIntention, mask),
			OutcomeValues(table, survey.FieldVaccineIntention, complement),
		),
	}
}

// WelchTTest compares two samples with unequal variances (two-sided)
func WelchTTest(group1, group2 []float64) TTest {
	n1, n2 := float64(len(group1)), float64(len(group2))
	if len(group1) < 2 || len(group2) < 2 {
		return TTest{Reason: "need at least two observations on each side"}
	}

	mean1, _ := stats.Mean(group1)
	mean2, _ := stats.Mean(group2)
	var1, _ := stats.SampleVariance(group1)
	var2, _ := stats.SampleVariance(group2)

	se1, se2 := var1/n1, var2/n2
	se := math.Sqrt(se1 + se2)
	if se == 0 {
		return TTest{Reason: "both samples have zero variance", MeanDiff: mean1 - mean2}
	}

	t := (mean1 - mean2) / se

	// Welch–Satterthwaite degrees of freedom
	df := (se1 + se2) * (se1 + se2) / (se1*se1/(n1-1) + se2*se2/(n2-1))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * (1 - dist.CDF(math.Abs(t)))
	if p > 1 {
		p = 1
	}

	return TTest{
		Computed:   true,
		TStatistic: t,
		DF:         df,
		PValue:     p,
		MeanDiff:   mean1 - mean2,
	}
}
