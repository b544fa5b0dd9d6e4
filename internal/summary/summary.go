// Package summary derives display data from a record store: monthly totals
// and the state of each calendar day.
package summary

import (
	"github.com/yevmiyelerim/yev/internal/datekey"
	"github.com/yevmiyelerim/yev/internal/model"
)

// Totals is the aggregate for one month.
type Totals struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"` // 0-based
	TotalEarnings   float64 `json:"totalEarnings"`
	TotalPayments   float64 `json:"totalPayments"`
	RemainingAmount float64 `json:"remainingAmount"` // negative means overpaid
	WorkDays        int     `json:"workDays"`
	OvertimeDays    int     `json:"overtimeDays"`
}

// Month aggregates the work and payments recorded in the given 0-based month.
// A day flagged as overtime counts as an overtime day even with zero hours.
func Month(s model.Store, year, month int) Totals {
	t := Totals{Year: year, Month: month}
	for key, w := range s.Work {
		if !datekey.InMonth(key, year, month) {
			continue
		}
		t.TotalEarnings += w.TotalEarnings
		t.WorkDays++
		if w.IsOvertime {
			t.OvertimeDays++
		}
	}
	for key, p := range s.Payments {
		if datekey.InMonth(key, year, month) {
			t.TotalPayments += p.Amount
		}
	}
	t.RemainingAmount = t.TotalEarnings - t.TotalPayments
	return t
}

// DayState classifies a day. A payment wins over any work recorded the same
// day; otherwise overtime wins over a plain work day.
func DayState(s model.Store, key string) model.CalendarState {
	if _, ok := s.Payments[key]; ok {
		return model.StatePaid
	}
	if w, ok := s.Work[key]; ok {
		if w.IsOvertime {
			return model.StateOvertime
		}
		return model.StateWorked
	}
	return model.StateEmpty
}
