// Package earnings turns the fields of a work day into the money earned for it.
//
// Input is handled permissively: a missing, unparsable, negative or
// non-finite number counts as zero, so Calculate never fails.
package earnings

import (
	"math"
	"strconv"
	"strings"

	"github.com/yevmiyelerim/yev/internal/model"
)

const (
	// HoursPerDay is the number of hours the daily rate is assumed to cover.
	HoursPerDay = 8
	// DefaultOvertimeMultiplier applies when an entry carries no usable multiplier.
	DefaultOvertimeMultiplier = 1.5
	// HalfDayFactor scales the whole day total, overtime included.
	HalfDayFactor = 0.5
)

// Calculate returns the total pay for one work day. e.TotalEarnings is ignored.
//
// Overtime is paid at (daily rate / 8) per hour times the multiplier and is
// added before the half-day factor, so a half day also halves overtime pay.
// The result is not rounded.
func Calculate(e model.WorkEntry) float64 {
	rate := sanitize(e.DailyRate)
	total := rate

	hours := sanitize(e.OvertimeHours)
	if e.IsOvertime && hours > 0 {
		total += rate / HoursPerDay * hours * Multiplier(e.OvertimeMultiplier)
	}

	if e.IsHalfDay {
		total *= HalfDayFactor
	}
	return total
}

// Apply returns e with TotalEarnings regenerated from its other fields.
func Apply(e model.WorkEntry) model.WorkEntry {
	e.TotalEarnings = Calculate(e)
	return e
}

// Multiplier returns m, or DefaultOvertimeMultiplier when m is not a
// positive finite number.
func Multiplier(m float64) float64 {
	if v := sanitize(m); v > 0 {
		return v
	}
	return DefaultOvertimeMultiplier
}

// ParseAmount parses user input such as "500", "187.5", "187,5" or "1,500".
// With a dot present, commas are thousands separators. Without one, a comma
// followed by groups of exactly three digits is a thousands separator and any
// other single comma is the decimal mark.
// Anything that does not parse to a non-negative finite number yields 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") || thousandsGrouped(s) {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return sanitize(v)
}

// thousandsGrouped reports whether s looks like "1,500" or "12,000,000".
func thousandsGrouped(s string) bool {
	groups := strings.Split(s, ",")
	if len(groups) < 2 {
		return false
	}
	if lead := groups[0]; lead == "" || len(lead) > 3 || lead == "0" || !allDigits(lead) {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 || !allDigits(g) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
