// Package settlement turns a period's expenses into the transfers that
// equalize spending across a roster.
//
// Compute is pure: it reads only its arguments and always returns the same
// Settlement for the same input multiset and roster order.
//
// Netting is greedy. Debtors (spent below the per-person share) are visited in
// roster order, and each one pays creditors (spent above the share), also in
// roster order, until its deficit is covered. Each creditor's remaining
// surplus shrinks as it is paid, so no creditor receives more than it is owed.
// Transfers are recorded as the difference between the rounded running
// total after and before each payment, so every roommate's paid or received
// sum stays within a cent of the exact amount whatever the roster size.
// Transfers that round to zero are dropped.
package settlement

import (
	"fmt"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/shopspring/decimal"
)

// Places is the number of decimal places transfers are rounded to.
const Places = 2

// Compute builds the Settlement for expenses over roster.
//
// Expenses naming a roommate outside the roster, or carrying a negative
// amount, are rejected rather than silently counted.
func Compute(expenses []models.Expense, roster *models.Roster) (models.Settlement, error) {
	names := roster.Names()

	spent := make(map[string]decimal.Decimal, len(names))
	for _, n := range names {
		spent[n] = decimal.Zero
	}

	total := decimal.Zero
	for _, e := range expenses {
		if !roster.Contains(e.Roommate) {
			return models.Settlement{}, fmt.Errorf("expense %s: %w: %q", e.ID, common.ErrUnknownRoommate, e.Roommate)
		}
		if e.Amount.IsNegative() {
			return models.Settlement{}, fmt.Errorf("expense %s: %w", e.ID, common.ErrNegativeAmount)
		}
		spent[e.Roommate] = spent[e.Roommate].Add(e.Amount)
		total = total.Add(e.Amount)
	}

	perPerson := total.Div(decimal.NewFromInt(int64(len(names))))

	s := models.Settlement{
		Total:     total,
		PerPerson: perPerson,
		Spent:     make([]models.RoommateAmount, 0, len(names)),
		Transfers: []models.Transfer{},
	}
	for _, n := range names {
		s.Spent = append(s.Spent, models.RoommateAmount{Roommate: n, Amount: spent[n]})
	}

	surplus := make(map[string]decimal.Decimal, len(names))
	for _, n := range names {
		if spent[n].GreaterThan(perPerson) {
			surplus[n] = spent[n].Sub(perPerson)
		}
	}

	// paid and its rounded value follow the payments in netting order
	paid, recorded := decimal.Zero, decimal.Zero

	for _, debtor := range names {
		deficit := perPerson.Sub(spent[debtor])
		if !deficit.IsPositive() {
			continue
		}

		for _, creditor := range names {
			if !deficit.IsPositive() {
				break
			}
			left, ok := surplus[creditor]
			if !ok || !left.IsPositive() {
				continue
			}

			pay := decimal.Min(deficit, left)
			deficit = deficit.Sub(pay)
			surplus[creditor] = left.Sub(pay)

			paid = paid.Add(pay)
			next := paid.Round(Places)
			amount := next.Sub(recorded)
			recorded = next
			if amount.IsZero() {
				continue
			}
			s.Transfers = append(s.Transfers, models.Transfer{From: debtor, To: creditor, Amount: amount})
		}
	}

	return s, nil
}
