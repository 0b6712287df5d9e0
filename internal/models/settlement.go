package models

import "github.com/shopspring/decimal"

// Transfer is a directed payment from a roommate who spent less than the
// per-person share to one who spent more.
type Transfer struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// RoommateAmount pairs a roommate with a money value.
type RoommateAmount struct {
	Roommate string          `json:"roommate"`
	Amount   decimal.Decimal `json:"amount"`
}

// Settlement is the result of netting a period's expenses.
// Spent lists every roster member in canonical order.
type Settlement struct {
	Total     decimal.Decimal  `json:"total"`
	PerPerson decimal.Decimal  `json:"perPerson"`
	Spent     []RoommateAmount `json:"spent"`
	Transfers []Transfer       `json:"transfers"`
}

// SpentBy returns the recorded spend of name, zero if absent.
func (s Settlement) SpentBy(name string) decimal.Decimal {
	for _, ra := range s.Spent {
		if ra.Roommate == name {
			return ra.Amount
		}
	}
	return decimal.Zero
}
