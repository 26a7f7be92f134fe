package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Setting is a single key of the flat settings store.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// StringifyValue renders a decoded JSON value as text: numbers without
// trailing zeros, arrays joined by commas, objects as "[object Object]"
// and null as "null".
func StringifyValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return FormatNumber(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case []any:
		parts := make([]string, len(val))
		for i, el := range val {
			if el == nil {
				continue
			}
			parts[i] = StringifyValue(el)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		return "[object Object]"
	}
}

// FormatNumber prints f the shortest way that round-trips, switching to
// exponent form outside [1e-6, 1e21).
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if f == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	s = strings.Replace(s, "e+0", "e+", 1)
	s = strings.Replace(s, "e-0", "e-", 1)
	return s
}
