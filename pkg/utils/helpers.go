package utils

import (
	"strconv"
	"strings"
)

// ParseValue coerces a raw CSV cell: values that parse fully as a number
// become float64, everything else stays a string.
func ParseValue(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// Numeric converts a loosely-typed field to float64. Non-numeric values
// coerce to 0 so bad rows contribute nothing to sums instead of failing the
// whole aggregation.
func Numeric(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}

// Text returns the string form of a loosely-typed field, trimmed. Numbers
// are formatted without an exponent so numeric-looking IDs survive.
func Text(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}
