package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yevmiyelerim/yev/internal/datekey"
)

// resolveDay turns a command-line date into a key. Empty or "today" mean the
// current day, "yesterday" the day before.
func resolveDay(arg string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "today":
		return datekey.FromTime(now), nil
	case "yesterday":
		return datekey.FromTime(now.AddDate(0, 0, -1)), nil
	}
	t, err := datekey.Parse(arg)
	if err != nil {
		return "", err
	}
	return datekey.FromTime(t), nil
}

// resolveMonth parses YYYY-MM (empty = the month of now) and shifts it by
// shift months. The returned month is 0-based.
func resolveMonth(arg string, shift int, now time.Time) (int, int, error) {
	year, month := now.Year(), int(now.Month())-1
	if arg = strings.TrimSpace(arg); arg != "" {
		t, err := time.Parse("2006-01", arg)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid month %q (want YYYY-MM): %w", arg, err)
		}
		year, month = t.Year(), int(t.Month())-1
	}
	y, m := datekey.Shift(year, month, shift)
	return y, m, nil
}

// monthLabel renders a 0-based month as e.g. "March 2025".
func monthLabel(year, month int) string {
	return fmt.Sprintf("%s %d", time.Month(month+1), year)
}

// formatAmount rounds for display only; stored values keep full precision.
func formatAmount(v float64, currency string) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		s = "0.00"
	}
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// formatNumber prints hours and multipliers without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
