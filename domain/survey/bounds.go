package survey

import (
	"math"
	"strconv"
	"strings"

	"pulsex/internal/errors"
)

// ParseAgeBounds builds an age range from optional textual bounds. A bound
// left out is open on its side; with neither present the result is nil.
// Non-numeric bounds fail with INVALID_RANGE. Min > Max is accepted.
func ParseAgeBounds(minRaw string, hasMin bool, maxRaw string, hasMax bool) (*AgeRange, error) {
	if !hasMin && !hasMax {
		return nil, nil
	}

	ageRange := &AgeRange{Min: -math.MaxFloat64, Max: math.MaxFloat64}
	if hasMin {
		v, err := parseBound("age_min", minRaw)
		if err != nil {
			return nil, err
		}
		ageRange.Min = v
	}
	if hasMax {
		v, err := parseBound("age_max", maxRaw)
		if err != nil {
			return nil, err
		}
		ageRange.Max = v
	}
	return ageRange, nil
}

func parseBound(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.InvalidRange(name, "bound "+strconv.Quote(raw)+" is not a number")
	}
	return v, nil
}
