package trip

import (
	"math"
	"strconv"
	"strings"
)

// Fields are the raw, unvalidated form values.
type Fields struct {
	Destination string
	Days        string
	Travelers   string
	Budget      string
	Preferences string
}

// BuildRequest turns raw form values into a PlanRequest. It never fails.
//
// Integer fields that are empty, non-numeric, fractional or non-finite become 0.
// A non-numeric budget becomes NaN and is sent as null. Both are left for the
// planning service to reject.
func BuildRequest(f Fields) PlanRequest {
	return PlanRequest{
		Destination: strings.TrimSpace(f.Destination),
		Days:        coerceInt(f.Days),
		Travelers:   coerceInt(f.Travelers),
		BudgetCNY:   coerceNumber(f.Budget),
		Preferences: ParsePreferences(f.Preferences),
	}
}

// ParsePreferences splits comma-separated free text into trimmed, non-empty
// entries, preserving order. The result is never nil.
func ParsePreferences(raw string) []string {
	prefs := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			prefs = append(prefs, p)
		}
	}
	return prefs
}

// coerceNumber parses s like a form number input: blank is 0, garbage is NaN.
func coerceNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func coerceInt(s string) int {
	v := coerceNumber(s)
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0
	}
	return int(v)
}
