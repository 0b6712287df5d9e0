// Package report serializes a period's expenses and settlement as a CSV
// download. Output is deterministic for a given input and language, and
// fields containing delimiters, quotes or newlines are quoted.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dmitrijs2005/roomsplit/internal/i18n"
	"github.com/dmitrijs2005/roomsplit/internal/models"
)

const (
	CurrentFilename = "current-month-expenses.csv"
	ContentType     = "text/csv; charset=utf-8"
)

// ArchiveFilename names the export of an archived month.
func ArchiveFilename(a models.ArchivedMonth) string {
	return fmt.Sprintf("expenses-%s.csv", a.MonthDateString())
}

// WriteCSV writes the expense rows followed by the settlement section.
func WriteCSV(w io.Writer, expenses []models.Expense, s models.Settlement, tr i18n.Translator) error {
	cw := csv.NewWriter(w)

	rows := make([][]string, 0, len(expenses)+len(s.Transfers)+3)
	rows = append(rows, []string{tr.T("date"), tr.T("roommateColumn"), tr.T("description"), tr.T("amount")})
	for _, e := range expenses {
		rows = append(rows, []string{
			tr.FormatDate(e.Date),
			e.Roommate,
			e.Description,
			e.Amount.StringFixed(2),
		})
	}

	rows = append(rows, []string{})
	rows = append(rows, []string{tr.T("settlement")})
	for _, t := range s.Transfers {
		rows = append(rows, []string{tr.TransferLine(t.From, t.To), t.Amount.StringFixed(2)})
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
