package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yevmiyelerim/yev/internal/ledger"
	"github.com/yevmiyelerim/yev/internal/model"
	"github.com/yevmiyelerim/yev/internal/summary"
)

func TestPrintCalendar(t *testing.T) {
	s := ledger.SaveWork(model.NewStore(), "2025-03-03", model.WorkEntry{DailyRate: 500})
	s = ledger.SaveWork(s, "2025-03-04", model.WorkEntry{DailyRate: 500, IsOvertime: true, OvertimeHours: 1})
	s = ledger.SaveWork(s, "2025-03-05", model.WorkEntry{DailyRate: 500, IsOvertime: true, OvertimeHours: 1})
	s = ledger.SavePayment(s, "2025-03-05", model.PaymentEntry{Amount: 100})

	var buf bytes.Buffer
	printCalendar(&buf, summary.MonthCalendar(s, 2025, 2))
	lines := strings.Split(buf.String(), "\n")

	if lines[0] != "March 2025" {
		t.Errorf("header = %q", lines[0])
	}
	// March 2025 starts on Saturday.
	if got := strings.TrimSpace(lines[2]); got != "1" {
		t.Errorf("first week = %q, want just day 1", lines[2])
	}
	if !strings.Contains(lines[3], " 3* ") || !strings.Contains(lines[3], " 4+ ") || !strings.Contains(lines[3], " 5$ ") {
		t.Errorf("second week = %q, want 3* 4+ 5$", lines[3])
	}
	if !strings.Contains(buf.String(), "31") {
		t.Error("day 31 missing")
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, summary.Totals{
		Year: 2025, Month: 2,
		TotalEarnings: 500, TotalPayments: 200, RemainingAmount: 300,
		WorkDays: 1, OvertimeDays: 1,
	}, "₺")
	out := buf.String()
	for _, want := range []string{"March 2025", "500.00 ₺", "200.00 ₺", "300.00 ₺", "1 (1 overtime)"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSummaryJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printSummaryJSON(&buf, summary.Totals{Year: 2025, Month: 2, TotalEarnings: 687.5, RemainingAmount: 687.5, WorkDays: 1}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"totalEarnings": 687.5`) {
		t.Errorf("json = %s", buf.String())
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if got := confirm(strings.NewReader(tt.input), &out, "Sure?"); got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Sure? [y/N]") {
			t.Errorf("prompt = %q", out.String())
		}
	}
}
