package model

// Job is a catalog entry a work day can be booked against.
type Job struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	DailyRate float64 `json:"dailyRate"`
}

// WorkEntry is a single worked day. TotalEarnings is derived from the other
// fields when the entry is saved and is never edited on its own.
type WorkEntry struct {
	JobName            string  `json:"job"`
	BaseHours          float64 `json:"hours"`
	IsOvertime         bool    `json:"isOvertime"`
	OvertimeHours      float64 `json:"overtimeHours"`
	OvertimeMultiplier float64 `json:"overtimeRate"`
	DailyRate          float64 `json:"dailyRate"`
	IsHalfDay          bool    `json:"isHalfDay"`
	TotalEarnings      float64 `json:"totalEarnings"`
}

// PaymentEntry is money received on a given day.
type PaymentEntry struct {
	Amount  float64 `json:"amount"`
	Note    string  `json:"note"`
	DateKey string  `json:"date"`
}

// Store holds the two date-keyed record sets. Keys are YYYY-MM-DD.
type Store struct {
	Work     map[string]WorkEntry    `json:"work"`
	Payments map[string]PaymentEntry `json:"payments"`
}

// NewStore returns a store with both mappings initialised and empty.
func NewStore() Store {
	return Store{
		Work:     map[string]WorkEntry{},
		Payments: map[string]PaymentEntry{},
	}
}

// Snapshot is everything that gets persisted between runs.
type Snapshot struct {
	Store Store
	Jobs  []Job
}

// CalendarState classifies a single calendar day.
type CalendarState string

const (
	StateEmpty    CalendarState = "empty"
	StateWorked   CalendarState = "worked"
	StateOvertime CalendarState = "overtime"
	StatePaid     CalendarState = "paid"
)
