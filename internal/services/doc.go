// Package services implements the expense lifecycle: recording and removing
// expenses, computing the live settlement, closing a month into the archive,
// analytics, and receipt attachment.
//
// Services work on a *sql.DB through a repomanager.RepositoryManager, so the
// same code runs on SQLite and Postgres. Operations that touch several
// tables use dbx.WithTx.
package services

import "time"

// Recorder receives lifecycle events, typically for metrics. A nil Recorder
// is allowed.
type Recorder interface {
	ExpenseAdded()
	MonthArchived()
	ReceiptUploaded()
}

type nopRecorder struct{}

func (nopRecorder) ExpenseAdded()    {}
func (nopRecorder) MonthArchived()   {}
func (nopRecorder) ReceiptUploaded() {}

// Clock returns the current time.
type Clock func() time.Time
