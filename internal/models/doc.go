// Package models defines the domain types shared by the settlement engine,
// the analytics aggregator, the repositories and the presentation layers:
// the roommate Roster, Expense, ArchivedMonth, Settlement and Transfer.
//
// Money is represented with shopspring/decimal so sums and divisions are
// exact until a value is rounded for display or recorded as a transfer.
package models
