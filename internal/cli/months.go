package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/dmitrijs2005/roomsplit/internal/report"
)

func (a *App) Settle(ctx context.Context) error {
	s, err := a.expenses.Settlement(ctx)
	if err != nil {
		return a.fail(ctx, "errorLoading", err)
	}
	a.printSettlement(s)
	return nil
}

func (a *App) printSettlement(s models.Settlement) {
	tr := a.tr()
	a.println(tr.T("settlement") + ":")
	a.printf("  %s: %s\n", tr.T("total"), s.Total.StringFixed(2))
	a.printf("  %s: %s\n", tr.T("perPerson"), s.PerPerson.StringFixed(2))
	for _, sp := range s.Spent {
		a.printf("  %s: %s\n", sp.Roommate, sp.Amount.StringFixed(2))
	}
	for _, t := range s.Transfers {
		a.printf("  %s: %s\n", tr.TransferLine(t.From, t.To), t.Amount.StringFixed(2))
	}
}

func (a *App) EndMonth(ctx context.Context) error {
	m, err := a.expenses.EndMonth(ctx)
	if err != nil {
		return a.fail(ctx, "errorArchiving", err)
	}
	a.println(a.tr().T("monthArchived") + ": " + m.ID)
	a.printSettlement(m.Settlement)
	return nil
}

func (a *App) Months(ctx context.Context) error {
	list, err := a.expenses.Archives(ctx)
	if err != nil {
		return a.fail(ctx, "errorLoading", err)
	}

	tr := a.tr()
	a.println(tr.T("previousMonths"))
	if len(list) == 0 {
		a.println(tr.T("noArchived"))
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\t%s\n", tr.T("date"), tr.T("total"))
	for _, m := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, tr.FormatDate(m.MonthDate), m.Settlement.Total.StringFixed(2))
	}
	_ = w.Flush()
	return nil
}

func (a *App) Month(ctx context.Context, id string) error {
	if id == "" {
		return a.fail(ctx, "errorLoading", fmt.Errorf("%w: usage: month <id>", common.ErrValidation))
	}
	m, err := a.expenses.Archive(ctx, id)
	if err != nil {
		return a.fail(ctx, "errorLoading", err)
	}

	a.println(a.tr().FormatDate(m.MonthDate))
	a.printExpenses(m.Expenses)
	a.printSettlement(m.Settlement)
	return nil
}

func (a *App) Analytics(ctx context.Context) error {
	rep, err := a.expenses.Analytics(ctx)
	if err != nil {
		return a.fail(ctx, "errorLoading", err)
	}

	tr := a.tr()
	a.println(tr.T("analytics"))
	a.println(tr.T("monthlyTotals") + ":")
	for _, m := range rep.Months {
		a.printf("  %s: %s\n", tr.MonthLabel(m.Year, m.Month), m.Total.StringFixed(2))
	}

	a.println(tr.T("roommateStats") + ":")
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", tr.T("roommateColumn"), tr.T("currentSpend"), tr.T("lifetimeTotal"), tr.T("average"))
	for _, r := range rep.Roommates {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", r.Roommate, r.Current.StringFixed(2), r.Total.StringFixed(2), r.Average.StringFixed(2))
	}
	_ = w.Flush()
	return nil
}

// Export writes the current month as CSV to path, or to the default file
// name when path is empty.
func (a *App) Export(ctx context.Context, path string) error {
	list, err := a.expenses.List(ctx)
	if err != nil {
		return a.fail(ctx, "errorLoading", err)
	}
	s, err := a.expenses.Settlement(ctx)
	if err != nil {
		return a.fail(ctx, "errorLoading", err)
	}
	if path == "" {
		path = report.CurrentFilename
	}
	return a.writeCSV(ctx, path, list, s)
}

func (a *App) ExportMonth(ctx context.Context, id, path string) error {
	if id == "" {
		return a.fail(ctx, "errorLoading", fmt.Errorf("%w: usage: export-month <id> [file]", common.ErrValidation))
	}
	m, err := a.expenses.Archive(ctx, id)
	if err != nil {
		return a.fail(ctx, "errorLoading", err)
	}
	if path == "" {
		path = report.ArchiveFilename(m)
	}
	return a.writeCSV(ctx, path, m.Expenses, m.Settlement)
}

func (a *App) writeCSV(ctx context.Context, path string, list []models.Expense, s models.Settlement) error {
	f, err := os.Create(path)
	if err != nil {
		return a.fail(ctx, "export", err)
	}
	defer f.Close()

	if err := report.WriteCSV(f, list, s, a.tr()); err != nil {
		return a.fail(ctx, "export", err)
	}
	a.println(a.tr().T("export") + ": " + path)
	return nil
}
