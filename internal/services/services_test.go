package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/dbx"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/expenses"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testRoster = models.MustRoster("Görkem", "Yiğit", "Sertaç")

func fixedClock(y int, m time.Month, d int) Clock {
	return func() time.Time { return time.Date(y, m, d, 18, 30, 0, 0, time.UTC) }
}

func newTestDB(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	db, m, err := repomanager.Open(context.Background(), repomanager.DriverSQLite,
		"file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, m
}

type countingRecorder struct {
	mu                        sync.Mutex
	added, archived, receipts int
}

func (r *countingRecorder) ExpenseAdded()    { r.mu.Lock(); r.added++; r.mu.Unlock() }
func (r *countingRecorder) MonthArchived()   { r.mu.Lock(); r.archived++; r.mu.Unlock() }
func (r *countingRecorder) ReceiptUploaded() { r.mu.Lock(); r.receipts++; r.mu.Unlock() }

// failingManager makes expense deletes fail after the first n succeed.
type failingManager struct {
	repomanager.RepositoryManager
	okDeletes int
}

func (m *failingManager) Expenses(db dbx.DBTX) expenses.Repository {
	return &failingDeletes{Repository: m.RepositoryManager.Expenses(db), m: m}
}

type failingDeletes struct {
	expenses.Repository
	m *failingManager
}

func (r *failingDeletes) Delete(ctx context.Context, id string) error {
	if r.m.okDeletes == 0 {
		return errors.New("disk full")
	}
	r.m.okDeletes--
	return r.Repository.Delete(ctx, id)
}

func mustAdd(t *testing.T, s *ExpenseService, roommate, amount, desc, date string) models.Expense {
	t.Helper()
	e, err := s.Add(context.Background(), NewExpense{Roommate: roommate, Amount: amount, Description: desc, Date: date})
	require.NoError(t, err)
	return e
}
