// Package archives persists closed months. Each archived month is written
// once, as a document holding its expense snapshot and settlement, and is
// never modified afterwards.
package archives

import (
	"context"

	"github.com/dmitrijs2005/roomsplit/internal/models"
)

// Repository defines storage operations for archived months.
type Repository interface {
	// List returns all archived months, most recent month date first.
	List(ctx context.Context) ([]models.ArchivedMonth, error)

	// Get returns one archived month or common.ErrNotFound.
	Get(ctx context.Context, id string) (models.ArchivedMonth, error)

	// Create stores a under a freshly assigned id and returns it.
	Create(ctx context.Context, a models.ArchivedMonth) (models.ArchivedMonth, error)
}

// snapshot is the stored document body.
type snapshot struct {
	Expenses   []models.Expense  `json:"expenses"`
	Settlement models.Settlement `json:"settlement"`
}
