package models

import "time"

// ArchivedMonth is the immutable snapshot written when a month is closed.
type ArchivedMonth struct {
	ID         string     `json:"id"`
	MonthDate  time.Time  `json:"monthDate"`
	Expenses   []Expense  `json:"expenses"`
	Settlement Settlement `json:"settlement"`
}

// MonthDateString returns MonthDate in DateLayout.
func (a ArchivedMonth) MonthDateString() string { return a.MonthDate.Format(DateLayout) }
