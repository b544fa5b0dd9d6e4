package summary_test

import (
	"testing"

	"github.com/yevmiyelerim/yev/internal/ledger"
	"github.com/yevmiyelerim/yev/internal/model"
	"github.com/yevmiyelerim/yev/internal/summary"
)

func TestMonthExample(t *testing.T) {
	s := ledger.SaveWork(model.NewStore(), "2025-03-05", model.WorkEntry{DailyRate: 500})
	s = ledger.SavePayment(s, "2025-03-05", model.PaymentEntry{Amount: 200})

	got := summary.Month(s, 2025, 2)
	want := summary.Totals{
		Year:            2025,
		Month:           2,
		TotalEarnings:   500,
		TotalPayments:   200,
		RemainingAmount: 300,
		WorkDays:        1,
	}
	if got != want {
		t.Errorf("Month = %+v, want %+v", got, want)
	}
}

func TestMonthIsolation(t *testing.T) {
	s := ledger.SaveWork(model.NewStore(), "2025-01-15", model.WorkEntry{DailyRate: 500, IsOvertime: true})
	s = ledger.SavePayment(s, "2025-01-20", model.PaymentEntry{Amount: 100})
	s = ledger.SaveWork(s, "2024-02-10", model.WorkEntry{DailyRate: 500})

	got := summary.Month(s, 2025, 1)
	if got.TotalEarnings != 0 || got.TotalPayments != 0 || got.WorkDays != 0 || got.OvertimeDays != 0 {
		t.Errorf("February 2025 picked up other months: %+v", got)
	}
	jan := summary.Month(s, 2025, 0)
	if jan.WorkDays != 1 || jan.OvertimeDays != 1 || jan.TotalPayments != 100 {
		t.Errorf("January 2025 = %+v", jan)
	}
}

func TestMonthOvertimeFlagWithoutHours(t *testing.T) {
	s := ledger.SaveWork(model.NewStore(), "2025-03-01", model.WorkEntry{DailyRate: 400, IsOvertime: true})
	got := summary.Month(s, 2025, 2)
	if got.OvertimeDays != 1 {
		t.Errorf("OvertimeDays = %d, want 1", got.OvertimeDays)
	}
	if got.TotalEarnings != 400 {
		t.Errorf("TotalEarnings = %v, want 400", got.TotalEarnings)
	}
}

func TestMonthOverpaid(t *testing.T) {
	s := ledger.SaveWork(model.NewStore(), "2025-03-01", model.WorkEntry{DailyRate: 400})
	s = ledger.SavePayment(s, "2025-03-02", model.PaymentEntry{Amount: 1000})
	if got := summary.Month(s, 2025, 2).RemainingAmount; got != -600 {
		t.Errorf("RemainingAmount = %v, want -600", got)
	}
}

func TestMonthAdditive(t *testing.T) {
	a := model.WorkEntry{DailyRate: 500, IsOvertime: true, OvertimeHours: 2, OvertimeMultiplier: 2}
	b := model.WorkEntry{DailyRate: 400, IsHalfDay: true}

	onlyA := ledger.SaveWork(model.NewStore(), "2025-03-03", a)
	onlyA = ledger.SavePayment(onlyA, "2025-03-03", model.PaymentEntry{Amount: 150})
	onlyB := ledger.SaveWork(model.NewStore(), "2025-03-04", b)
	onlyB = ledger.SavePayment(onlyB, "2025-03-09", model.PaymentEntry{Amount: 75})

	both := ledger.SaveWork(onlyA, "2025-03-04", b)
	both = ledger.SavePayment(both, "2025-03-09", model.PaymentEntry{Amount: 75})

	ta, tb, tab := summary.Month(onlyA, 2025, 2), summary.Month(onlyB, 2025, 2), summary.Month(both, 2025, 2)
	if tab.TotalEarnings != ta.TotalEarnings+tb.TotalEarnings {
		t.Errorf("TotalEarnings %v != %v + %v", tab.TotalEarnings, ta.TotalEarnings, tb.TotalEarnings)
	}
	if tab.TotalPayments != ta.TotalPayments+tb.TotalPayments {
		t.Errorf("TotalPayments %v != %v + %v", tab.TotalPayments, ta.TotalPayments, tb.TotalPayments)
	}
	if tab.WorkDays != ta.WorkDays+tb.WorkDays {
		t.Errorf("WorkDays %d != %d + %d", tab.WorkDays, ta.WorkDays, tb.WorkDays)
	}
	if tab.OvertimeDays != ta.OvertimeDays+tb.OvertimeDays {
		t.Errorf("OvertimeDays %d != %d + %d", tab.OvertimeDays, ta.OvertimeDays, tb.OvertimeDays)
	}
}

func TestDayState(t *testing.T) {
	s := ledger.SaveWork(model.NewStore(), "2025-03-01", model.WorkEntry{DailyRate: 400})
	s = ledger.SaveWork(s, "2025-03-02", model.WorkEntry{DailyRate: 400, IsOvertime: true, OvertimeHours: 2})
	s = ledger.SaveWork(s, "2025-03-03", model.WorkEntry{DailyRate: 400, IsOvertime: true, OvertimeHours: 2})
	s = ledger.SavePayment(s, "2025-03-03", model.PaymentEntry{Amount: 100})
	s = ledger.SavePayment(s, "2025-03-04", model.PaymentEntry{Amount: 100})

	tests := []struct {
		key  string
		want model.CalendarState
	}{
		{"2025-03-01", model.StateWorked},
		{"2025-03-02", model.StateOvertime},
		{"2025-03-03", model.StatePaid},
		{"2025-03-04", model.StatePaid},
		{"2025-03-05", model.StateEmpty},
	}
	for _, tt := range tests {
		if got := summary.DayState(s, tt.key); got != tt.want {
			t.Errorf("DayState(%s) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestMonthCalendar(t *testing.T) {
	s := ledger.SaveWork(model.NewStore(), "2025-03-05", model.WorkEntry{DailyRate: 500})
	cal := summary.MonthCalendar(s, 2025, 2)

	// March 2025 starts on a Saturday: six blank cells, then 31 days.
	if len(cal.Cells) != 6+31 {
		t.Fatalf("cells = %d, want 37", len(cal.Cells))
	}
	for i := 0; i < 6; i++ {
		if cal.Cells[i].Day != 0 {
			t.Errorf("cell %d = %+v, want blank", i, cal.Cells[i])
		}
	}
	first := cal.Cells[6]
	if first.Day != 1 || first.Key != "2025-03-01" || first.State != model.StateEmpty {
		t.Errorf("first day cell = %+v", first)
	}
	if got := cal.Cells[6+4].State; got != model.StateWorked {
		t.Errorf("5 March state = %q, want worked", got)
	}

	weeks := cal.Weeks()
	if len(weeks) != 6 {
		t.Fatalf("weeks = %d, want 6", len(weeks))
	}
	if last := weeks[5]; last[1].Day != 31 || last[2].Day != 0 {
		t.Errorf("last week = %+v", last)
	}
}
