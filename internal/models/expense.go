package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date wire and storage format.
const DateLayout = "2006-01-02"

// Expense is a single dated spending record attributed to one roommate.
// ReceiptRef is the blob store reference of an attached image, empty when
// there is none.
type Expense struct {
	ID          string          `json:"id"`
	Roommate    string          `json:"roommate"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	ReceiptRef  string          `json:"receiptRef,omitempty"`
}

// HasReceipt reports whether a receipt is attached.
func (e Expense) HasReceipt() bool { return e.ReceiptRef != "" }

// DateString returns the expense date in DateLayout.
func (e Expense) DateString() string { return e.Date.Format(DateLayout) }

// ParseAmount parses user input such as "12.5", "12,50" or " 7 " into a
// non-negative amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: %w", common.ErrValidation, common.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w: %q", common.ErrValidation, common.ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %w", common.ErrValidation, common.ErrNegativeAmount)
	}
	return d, nil
}

// ParseDate parses a calendar date in DateLayout.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w: %q", common.ErrValidation, common.ErrInvalidDate, s)
	}
	return d, nil
}

// DateOf drops the time of day, keeping the calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
