package survey

import (
	"math"
	"testing"

	"pulsex/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAgeBounds(t *testing.T) {
	tests := []struct {
		name     string
		min      string
		hasMin   bool
		max      string
		hasMax   bool
		expected *AgeRange
	}{
		{name: "absent", expected: nil},
		{name: "both", min: "25", hasMin: true, max: " 45 ", hasMax: true, expected: &AgeRange{Min: 25, Max: 45}},
		{name: "min only", min: "30.5", hasMin: true, expected: &AgeRange{Min: 30.5, Max: math.MaxFloat64}},
		{name: "max only", max: "60", hasMax: true, expected: &AgeRange{Min: -math.MaxFloat64, Max: 60}},
		{name: "inverted", min: "45", hasMin: true, max: "25", hasMax: true, expected: &AgeRange{Min: 45, Max: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAgeBounds(tt.min, tt.hasMin, tt.max, tt.hasMax)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseAgeBoundsMalformed(t *testing.T) {
	for _, raw := range []string{"abc", "", "NaN", "Inf", "12years"} {
		_, err := ParseAgeBounds("18", true, raw, true)
		require.Error(t, err, raw)
		assert.Equal(t, errors.CodeInvalidRange, errors.GetCode(err), raw)
		assert.Equal(t, "age_max", errors.GetField(err), raw)
	}
}
