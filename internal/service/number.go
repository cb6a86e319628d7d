package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a non-negative amount decoded leniently from form input. JSON
// numbers and numeric strings are accepted; anything else decodes to 0 and
// negative values are clamped to 0.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = clampAmount(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = clampAmount(parsed)
			return nil
		}
	}

	*n = 0
	return nil
}

func (n Number) Float64() float64 { return float64(n) }

func clampAmount(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return Number(f)
}
