package expenses

import (
	"context"

	"github.com/dmitrijs2005/roomsplit/internal/models"
)

// Repository defines storage operations for current expenses.
type Repository interface {
	// List returns all current expenses ordered by date, newest first.
	List(ctx context.Context) ([]models.Expense, error)

	// Get returns one expense or common.ErrNotFound.
	Get(ctx context.Context, id string) (models.Expense, error)

	// Create stores e under a freshly assigned id with no receipt and
	// returns the stored record.
	Create(ctx context.Context, e models.Expense) (models.Expense, error)

	// UpdateReceipt replaces the receipt reference; an empty ref clears it.
	UpdateReceipt(ctx context.Context, id string, ref string) error

	// Delete removes the expense or returns common.ErrNotFound.
	Delete(ctx context.Context, id string) error
}
