// Package expenses persists the current month's expense records.
//
// Records are listed newest first by expense date, ties broken by insertion
// order (latest first). Apart from deletion, the only mutation is replacing
// the receipt reference.
package expenses
