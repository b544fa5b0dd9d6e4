package summary

import (
	"github.com/yevmiyelerim/yev/internal/datekey"
	"github.com/yevmiyelerim/yev/internal/model"
)

// Cell is one slot of a month grid. Day is 0 for the padding before the 1st.
type Cell struct {
	Day   int                 `json:"day"`
	Key   string              `json:"key,omitempty"`
	State model.CalendarState `json:"state,omitempty"`
}

// Calendar is a Sunday-first month grid.
type Calendar struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Cells []Cell `json:"cells"`
}

// Weeks splits the grid into rows of seven, padding the last row.
func (c Calendar) Weeks() [][]Cell {
	var weeks [][]Cell
	for i := 0; i < len(c.Cells); i += 7 {
		end := i + 7
		row := make([]Cell, 7)
		if end > len(c.Cells) {
			end = len(c.Cells)
		}
		copy(row, c.Cells[i:end])
		weeks = append(weeks, row)
	}
	return weeks
}

// MonthCalendar lays out the given 0-based month with the state of every day.
func MonthCalendar(s model.Store, year, month int) Calendar {
	lead := int(datekey.FirstWeekday(year, month))
	days := datekey.DaysInMonth(year, month)

	cells := make([]Cell, lead, lead+days)
	for d := 1; d <= days; d++ {
		key := datekey.Make(year, month, d)
		cells = append(cells, Cell{Day: d, Key: key, State: DayState(s, key)})
	}
	return Calendar{Year: year, Month: month, Cells: cells}
}
