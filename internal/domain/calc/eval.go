// Package calc computes receipt totals from raw game rows. Everything here
// is pure: the same rows and adjustments always produce the same totals, and
// malformed input degrades to zero instead of failing.
package calc

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PaesslerAG/gval"
)

var (
	invalidRunes = regexp.MustCompile(`[^0-9+\-*/.]`)
	trailingOps  = regexp.MustCompile(`[+\-*/.]+$`)
)

// Evaluate resolves a shorthand arithmetic expression like "10+20+5" into a
// number. Input comes straight from entry fields and is often mid-keystroke,
// so the rules are forgiving: anything outside digits, operators and dots is
// stripped, a trailing operator run is dropped ("10+" means 10), and any
// expression that still fails to evaluate, or evaluates to NaN or infinity
// ("10/0"), counts as 0. Evaluate never returns an error.
func Evaluate(expr string) float64 {
	sanitized := invalidRunes.ReplaceAllString(expr, "")
	sanitized = trailingOps.ReplaceAllString(sanitized, "")
	if sanitized == "" {
		return 0
	}

	v, err := gval.Evaluate(sanitized, nil)
	if err != nil {
		return 0
	}
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Number parses a plain numeric field. Blank or non-numeric input counts
// as 0; no expression syntax is allowed here.
func Number(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
