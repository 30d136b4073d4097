package aci

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// normalizeHeader collapses runs of whitespace to single spaces, trims, and
// lowercases, so "Total   Passengers " and "total passengers" resolve alike.
func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " ")))
}

// upper trims and upper-cases a cell value.
func upper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// lastToken returns the final whitespace-separated token of s, or "" when
// the field is empty. Used to pull the state code off a "City ST" field.
func lastToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// parseFloat parses a numeric cell, tolerating thousands separators and
// surrounding whitespace. Non-numeric values report ok=false rather than an
// error; row-level defects are recoverable.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// round3 rounds to 3 decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
