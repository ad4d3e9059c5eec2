package coercer

import (
	"testing"

	"pulsex/domain/survey"

	"github.com/stretchr/testify/assert"
)

func TestCoerceNumeric(t *testing.T) {
	c := NewTypeCoercer(DefaultCoercionConfig())

	tests := []struct {
		raw     string
		missing bool
		want    float64
		ok      bool
	}{
		{"42", false, 42, true},
		{" 3.5 ", false, 3.5, true},
		{"1,200", false, 1200, true},
		{"True", false, 1, true},
		{"", true, 0, true},
		{"NaN", true, 0, true},
		{"NA", true, 0, true},
		{"forty", true, 0, false},
	}

	for _, tt := range tests {
		v, ok := c.CoerceNumeric(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw %q", tt.raw)
		assert.Equal(t, tt.missing, v.IsMissing(), "raw %q", tt.raw)
		if !tt.missing {
			assert.Equal(t, tt.want, v.NumericVal, "raw %q", tt.raw)
		}
	}
}

func TestCoerceBoolean(t *testing.T) {
	c := NewTypeCoercer(DefaultCoercionConfig())

	for raw, want := range map[string]bool{"True": true, "false": false, "1.0": true, "0": false, "yes": true, "2": true} {
		v, ok := c.CoerceBoolean(raw)
		assert.True(t, ok, "raw %q", raw)
		assert.Equal(t, survey.ValueTypeBoolean, v.Type, "raw %q", raw)
		assert.Equal(t, want, v.BooleanVal, "raw %q", raw)
	}

	v, ok := c.CoerceBoolean("null")
	assert.True(t, ok)
	assert.True(t, v.IsMissing())

	_, ok = c.CoerceBoolean("maybe")
	assert.False(t, ok)
}

func TestCoerceString(t *testing.T) {
	c := NewTypeCoercer(DefaultCoercionConfig())

	assert.Equal(t, "Bachelors degree", c.CoerceString("  Bachelors degree ").AsString())
	assert.True(t, c.CoerceString("   ").IsMissing())
	assert.True(t, c.CoerceString("n/a").IsMissing())
}

func TestAnalyzeTypeDistribution(t *testing.T) {
	c := NewTypeCoercer(DefaultCoercionConfig())

	assert.Equal(t, survey.ValueTypeBoolean, c.AnalyzeTypeDistribution([]string{"True", "False", "", "True"}).RecommendedType)
	assert.Equal(t, survey.ValueTypeNumeric, c.AnalyzeTypeDistribution([]string{"1", "2", "3", "5", "4"}).RecommendedType)
	assert.Equal(t, survey.ValueTypeString, c.AnalyzeTypeDistribution([]string{"Male", "Female", "1"}).RecommendedType)
	assert.Equal(t, survey.ValueTypeMissing, c.AnalyzeTypeDistribution([]string{"", "NA"}).RecommendedType)

	analysis := c.AnalyzeTypeDistribution([]string{"1", "", "x"})
	assert.Equal(t, 3, analysis.TotalCount)
	assert.Equal(t, 2, analysis.ValidCount)
	assert.InDelta(t, 0.5, analysis.NumericRatio, 1e-9)
}
