package coercer

import (
	"math"
	"strconv"
	"strings"

	"pulsex/domain/survey"
)

// TypeCoercer handles deterministic conversion of raw cells into typed values
type TypeCoercer struct {
	config CoercionConfig
}

// CoercionConfig defines the coercion rules
type CoercionConfig struct {
	MissingTokens    []string `json:"missing_tokens"`    // Cells equal to one of these (case-insensitive) are missing
	NumericThreshold float64  `json:"numeric_threshold"` // % of present values that must parse as numbers
	BooleanThreshold float64  `json:"boolean_threshold"` // % of present values that must parse as booleans
	TrimStrings      bool     `json:"trim_strings"`
}

// DefaultCoercionConfig returns sensible defaults
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		MissingTokens:    []string{"", "na", "n/a", "nan", "null", "none"},
		NumericThreshold: 0.8,
		BooleanThreshold: 0.9,
		TrimStrings:      true,
	}
}

// NewTypeCoercer creates a coercer with the given config
func NewTypeCoercer(config CoercionConfig) *TypeCoercer {
	return &TypeCoercer{config: config}
}

// IsMissing reports whether a raw cell denotes an absent value
func (c *TypeCoercer) IsMissing(raw string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	for _, token := range c.config.MissingTokens {
		if trimmed == token {
			return true
		}
	}
	return false
}

// CoerceString keeps the cell as categorical text
func (c *TypeCoercer) CoerceString(raw string) survey.Value {
	if c.IsMissing(raw) {
		return survey.NewMissingValue()
	}
	if c.config.TrimStrings {
		raw = strings.TrimSpace(raw)
	}
	return survey.NewStringValue(raw)
}

// CoerceNumeric parses the cell as a number. The second result is false
// when a present cell does not parse.
func (c *TypeCoercer) CoerceNumeric(raw string) (survey.Value, bool) {
	if c.IsMissing(raw) {
		return survey.NewMissingValue(), true
	}
	if n, ok := parseNumber(raw); ok {
		return survey.NewNumericValue(n), true
	}
	if b, ok := parseBoolean(raw); ok {
		if b {
			return survey.NewNumericValue(1), true
		}
		return survey.NewNumericValue(0), true
	}
	return survey.NewMissingValue(), false
}

// CoerceBoolean parses the cell as a boolean. Numeric cells map non-zero to true.
func (c *TypeCoercer) CoerceBoolean(raw string) (survey.Value, bool) {
	if c.IsMissing(raw) {
		return survey.NewMissingValue(), true
	}
	if b, ok := parseBoolean(raw); ok {
		return survey.NewBooleanValue(b), true
	}
	if n, ok := parseNumber(raw); ok {
		return survey.NewBooleanValue(n != 0), true
	}
	return survey.NewMissingValue(), false
}

// AnalyzeTypeDistribution inspects a column sample to recommend a storage type
func (c *TypeCoercer) AnalyzeTypeDistribution(values []string) TypeAnalysis {
	analysis := TypeAnalysis{TotalCount: len(values)}

	for _, raw := range values {
		if c.IsMissing(raw) {
			continue
		}
		analysis.ValidCount++
		if _, ok := parseNumber(raw); ok {
			analysis.NumericCount++
		}
		if _, ok := parseBoolean(raw); ok {
			analysis.BooleanCount++
		}
	}

	if analysis.ValidCount > 0 {
		analysis.NumericRatio = float64(analysis.NumericCount) / float64(analysis.ValidCount)
		analysis.BooleanRatio = float64(analysis.BooleanCount) / float64(analysis.ValidCount)
	}
	analysis.RecommendedType = c.determineRecommendedType(analysis)
	return analysis
}

// determineRecommendedType chooses the best type based on analysis
func (c *TypeCoercer) determineRecommendedType(analysis TypeAnalysis) survey.ValueType {
	if analysis.ValidCount == 0 {
		return survey.ValueTypeMissing
	}
	if analysis.BooleanRatio >= c.config.BooleanThreshold {
		return survey.ValueTypeBoolean
	}
	if analysis.NumericRatio >= c.config.NumericThreshold {
		return survey.ValueTypeNumeric
	}
	return survey.ValueTypeString
}

// TypeAnalysis contains the results of type distribution analysis
type TypeAnalysis struct {
	TotalCount      int              `json:"total_count"`
	ValidCount      int              `json:"valid_count"`
	NumericCount    int              `json:"numeric_count"`
	BooleanCount    int              `json:"boolean_count"`
	NumericRatio    float64          `json:"numeric_ratio"`
	BooleanRatio    float64          `json:"boolean_ratio"`
	RecommendedType survey.ValueType `json:"recommended_type"`
}

func parseNumber(raw string) (float64, bool) {
	clean := strings.TrimSpace(raw)
	clean = strings.ReplaceAll(clean, ",", "")
	val, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, false
	}
	return val, true
}

func parseBoolean(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "t", "yes", "y", "1", "1.0":
		return true, true
	case "false", "f", "no", "n", "0", "0.0":
		return false, true
	}
	return false, false
}
