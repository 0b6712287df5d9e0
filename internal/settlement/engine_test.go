package settlement

import (
	"math/rand"
	"testing"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func exp(roommate, amount string) models.Expense {
	return models.Expense{ID: roommate + amount, Roommate: roommate, Amount: d(amount)}
}

func requireTransfers(t *testing.T, want []models.Transfer, got []models.Transfer) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].From, got[i].From, "transfer %d from", i)
		assert.Equal(t, want[i].To, got[i].To, "transfer %d to", i)
		assert.True(t, want[i].Amount.Equal(got[i].Amount), "transfer %d amount: want %s got %s", i, want[i].Amount, got[i].Amount)
	}
}

func TestCompute_Examples(t *testing.T) {
	roster := models.MustRoster("A", "B", "C")

	tests := []struct {
		name          string
		expenses      []models.Expense
		wantTotal     string
		wantPerPerson string
		wantTransfers []models.Transfer
	}{
		{
			name:          "one payer",
			expenses:      []models.Expense{exp("A", "90"), exp("B", "0"), exp("C", "0")},
			wantTotal:     "90",
			wantPerPerson: "30",
			wantTransfers: []models.Transfer{
				{From: "B", To: "A", Amount: d("30")},
				{From: "C", To: "A", Amount: d("30")},
			},
		},
		{
			name:          "empty",
			wantTotal:     "0",
			wantPerPerson: "0",
			wantTransfers: []models.Transfer{},
		},
		{
			name:          "already even",
			expenses:      []models.Expense{exp("A", "50"), exp("B", "50"), exp("C", "50")},
			wantTotal:     "150",
			wantPerPerson: "50",
			wantTransfers: []models.Transfer{},
		},
		{
			name:          "debtor pays two creditors",
			expenses:      []models.Expense{exp("A", "40"), exp("B", "50")},
			wantTotal:     "90",
			wantPerPerson: "30",
			wantTransfers: []models.Transfer{
				{From: "C", To: "A", Amount: d("10")},
				{From: "C", To: "B", Amount: d("20")},
			},
		},
		{
			name:          "rounded at record time",
			expenses:      []models.Expense{exp("A", "100")},
			wantTotal:     "100",
			wantPerPerson: "33.3333333333333333",
			wantTransfers: []models.Transfer{
				{From: "B", To: "A", Amount: d("33.33")},
				{From: "C", To: "A", Amount: d("33.34")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Compute(tt.expenses, roster)
			require.NoError(t, err)
			assert.True(t, d(tt.wantTotal).Equal(s.Total), s.Total.String())
			assert.True(t, d(tt.wantPerPerson).Equal(s.PerPerson), s.PerPerson.String())
			requireTransfers(t, tt.wantTransfers, s.Transfers)
		})
	}
}

func TestCompute_CreditorIsNotOverAllocated(t *testing.T) {
	// B and C both owe; A's surplus of 60 must be shared, not paid twice.
	roster := models.MustRoster("A", "B", "C", "D")
	s, err := Compute([]models.Expense{exp("A", "90"), exp("D", "30")}, roster)
	require.NoError(t, err)

	requireTransfers(t, []models.Transfer{
		{From: "B", To: "A", Amount: d("30")},
		{From: "C", To: "A", Amount: d("30")},
	}, s.Transfers)
}

func TestCompute_SpentListsWholeRosterInOrder(t *testing.T) {
	roster := models.MustRoster("C", "A", "B")
	s, err := Compute([]models.Expense{exp("A", "10"), exp("A", "5.5")}, roster)
	require.NoError(t, err)

	require.Len(t, s.Spent, 3)
	assert.Equal(t, "C", s.Spent[0].Roommate)
	assert.True(t, s.Spent[0].Amount.IsZero())
	assert.True(t, d("15.5").Equal(s.SpentBy("A")))
}

func TestCompute_RejectsMalformedInput(t *testing.T) {
	roster := models.MustRoster("A", "B")

	_, err := Compute([]models.Expense{exp("Z", "1")}, roster)
	assert.ErrorIs(t, err, common.ErrUnknownRoommate)

	_, err = Compute([]models.Expense{{Roommate: "A", Amount: d("-1")}}, roster)
	assert.ErrorIs(t, err, common.ErrNegativeAmount)
}

func TestCompute_Properties(t *testing.T) {
	all := []string{"A", "B", "C", "D", "E", "F", "G"}
	tolerance := d("0.01")

	for size := 3; size <= len(all); size++ {
		rnd := rand.New(rand.NewSource(int64(size)))
		roster := models.MustRoster(all[:size]...)
		names := roster.Names()

		for i := 0; i < 2000; i++ {
			n := rnd.Intn(12)
			expenses := make([]models.Expense, 0, n)
			for j := 0; j < n; j++ {
				cents := rnd.Int63n(50000)
				expenses = append(expenses, models.Expense{
					Roommate: names[rnd.Intn(len(names))],
					Amount:   decimal.New(cents, -2),
				})
			}

			s, err := Compute(expenses, roster)
			require.NoError(t, err)

			sum := decimal.Zero
			for _, ra := range s.Spent {
				sum = sum.Add(ra.Amount)
			}
			require.True(t, s.Total.Equal(sum), "total == sum(spent)")

			for _, name := range names {
				paid, received := decimal.Zero, decimal.Zero
				for _, tr := range s.Transfers {
					require.True(t, tr.Amount.IsPositive())
					if tr.From == name {
						paid = paid.Add(tr.Amount)
					}
					if tr.To == name {
						received = received.Add(tr.Amount)
					}
				}
				want := s.PerPerson.Sub(s.SpentBy(name))
				diff := paid.Sub(received).Sub(want).Abs()
				require.True(t, diff.LessThanOrEqual(tolerance), "roster of %d: roommate %s off by %s", size, name, diff)
			}

			again, err := Compute(expenses, roster)
			require.NoError(t, err)
			require.Equal(t, s, again)
		}
	}
}

func TestCompute_RoundingDoesNotAccumulate(t *testing.T) {
	// six debtors cover one creditor; per-transfer rounding would leave A 3 cents short
	roster := models.MustRoster("A", "B", "C", "D", "E", "F", "G")
	s, err := Compute([]models.Expense{exp("A", "10")}, roster)
	require.NoError(t, err)

	require.Len(t, s.Transfers, 6)
	received := decimal.Zero
	for _, tr := range s.Transfers {
		assert.Equal(t, "A", tr.To)
		received = received.Add(tr.Amount)
	}
	// surplus is 10 - 10/7 = 8.571428...
	assert.True(t, d("8.57").Equal(received), received.String())
}
