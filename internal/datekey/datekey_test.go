package datekey_test

import (
	"testing"
	"time"

	"github.com/yevmiyelerim/yev/internal/datekey"
)

func TestMake(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             string
	}{
		{2025, 0, 1, "2025-01-01"},
		{2025, 2, 5, "2025-03-05"},
		{2025, 11, 31, "2025-12-31"},
		{999, 8, 9, "0999-09-09"},
	}
	for _, tt := range tests {
		got := datekey.Make(tt.year, tt.month, tt.day)
		if got != tt.want {
			t.Errorf("Make(%d, %d, %d) = %q, want %q", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestMonthPrefix(t *testing.T) {
	if got := datekey.MonthPrefix(2025, 0); got != "2025-01" {
		t.Errorf("MonthPrefix(2025, 0) = %q, want %q", got, "2025-01")
	}
	if got := datekey.MonthPrefix(2025, 9); got != "2025-10" {
		t.Errorf("MonthPrefix(2025, 9) = %q, want %q", got, "2025-10")
	}
}

func TestInMonth(t *testing.T) {
	tests := []struct {
		key         string
		year, month int
		want        bool
	}{
		{"2025-01-15", 2025, 0, true},
		{"2025-01-15", 2025, 1, false},
		{"2025-10-01", 2025, 0, false},
		{"2024-01-15", 2025, 0, false},
		{"2025-12-31", 2025, 11, true},
	}
	for _, tt := range tests {
		got := datekey.InMonth(tt.key, tt.year, tt.month)
		if got != tt.want {
			t.Errorf("InMonth(%q, %d, %d) = %v, want %v", tt.key, tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFromTimeAndParse(t *testing.T) {
	ts := time.Date(2026, 2, 27, 23, 59, 0, 0, time.UTC)
	key := datekey.FromTime(ts)
	if key != "2026-02-27" {
		t.Fatalf("FromTime = %q, want %q", key, "2026-02-27")
	}
	parsed, err := datekey.Parse(key)
	if err != nil {
		t.Fatalf("Parse(%q): %v", key, err)
	}
	if datekey.FromTime(parsed) != key {
		t.Errorf("Parse round trip = %q, want %q", datekey.FromTime(parsed), key)
	}
	if _, err := datekey.Parse("2026-2-27"); err == nil {
		t.Error("Parse: expected error for unpadded key")
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		year, month, delta int
		wantY, wantM       int
	}{
		{2025, 0, -1, 2024, 11},
		{2025, 11, 1, 2026, 0},
		{2025, 5, 0, 2025, 5},
		{2025, 3, 14, 2026, 5},
		{2025, 3, -16, 2023, 11},
	}
	for _, tt := range tests {
		y, m := datekey.Shift(tt.year, tt.month, tt.delta)
		if y != tt.wantY || m != tt.wantM {
			t.Errorf("Shift(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.year, tt.month, tt.delta, y, m, tt.wantY, tt.wantM)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2025, 0, 31},
		{2025, 1, 28},
		{2024, 1, 29},
		{2025, 3, 30},
		{2025, 11, 31},
	}
	for _, tt := range tests {
		if got := datekey.DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	// 1 March 2025 was a Saturday.
	if got := datekey.FirstWeekday(2025, 2); got != time.Saturday {
		t.Errorf("FirstWeekday(2025, 2) = %v, want Saturday", got)
	}
}
