package cmd

import (
	"testing"
	"time"
)

func TestResolveDay(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{"", "2025-03-01", false},
		{"today", "2025-03-01", false},
		{"Yesterday", "2025-02-28", false},
		{"2025-01-15", "2025-01-15", false},
		{"2025-1-15", "", true},
		{"2025-02-30", "", true},
	}
	for _, tt := range tests {
		got, err := resolveDay(tt.arg, now)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveDay(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveDay(%q) = %q, want %q", tt.arg, got, tt.want)
		}
	}
}

func TestResolveMonth(t *testing.T) {
	now := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		arg          string
		shift        int
		wantY, wantM int
		wantErr      bool
	}{
		{"", 0, 2025, 0, false},
		{"", -1, 2024, 11, false},
		{"2025-03", 0, 2025, 2, false},
		{"2025-12", 1, 2026, 0, false},
		{"2025-13", 0, 0, 0, true},
		{"March", 0, 0, 0, true},
	}
	for _, tt := range tests {
		y, m, err := resolveMonth(tt.arg, tt.shift, now)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveMonth(%q, %d) error = %v, wantErr %v", tt.arg, tt.shift, err, tt.wantErr)
			continue
		}
		if y != tt.wantY || m != tt.wantM {
			t.Errorf("resolveMonth(%q, %d) = (%d, %d), want (%d, %d)", tt.arg, tt.shift, y, m, tt.wantY, tt.wantM)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		v        float64
		currency string
		want     string
	}{
		{687.5, "₺", "687.50 ₺"},
		{343.75, "", "343.75"},
		{-600, "TL", "-600.00 TL"},
		{-0.001, "", "0.00"},
		{1.005, "", "1.00"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.v, tt.currency); got != tt.want {
			t.Errorf("formatAmount(%v, %q) = %q, want %q", tt.v, tt.currency, got, tt.want)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	if got := monthLabel(2025, 2); got != "March 2025" {
		t.Errorf("monthLabel = %q, want %q", got, "March 2025")
	}
}
