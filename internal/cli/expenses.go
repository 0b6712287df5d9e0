package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/dmitrijs2005/roomsplit/internal/services"
)

func (a *App) Help(ctx context.Context) error {
	a.println("Available commands: add, (l)ist, show <id>, delete <id>, settle, endmonth, months, month <id>,")
	a.println("  analytics, export [file], export-month <id> [file], receipt <id> <path>, unreceipt <id>,")
	a.println("  lang <en|tr>, theme <light|dark>, exit")
	return nil
}

// Add records an expense. With arguments the form is
// "add <roommate> <amount> <description...>" dated today; without, each
// field is prompted for.
func (a *App) Add(ctx context.Context, args []string) error {
	var in services.NewExpense
	if len(args) > 0 {
		if len(args) < 3 {
			return a.fail(ctx, "errorAdding", fmt.Errorf("%w: usage: add <roommate> <amount> <description>", common.ErrValidation))
		}
		in = services.NewExpense{Roommate: args[0], Amount: args[1], Description: strings.Join(args[2:], " ")}
	} else {
		var err error
		if in, err = a.promptExpense(); err != nil {
			return a.fail(ctx, "errorAdding", err)
		}
	}

	e, err := a.expenses.Add(ctx, in)
	if err != nil {
		return a.fail(ctx, "errorAdding", err)
	}
	a.println(a.tr().T("expenseAdded") + ": " + e.ID)
	return nil
}

func (a *App) promptExpense() (services.NewExpense, error) {
	tr := a.tr()
	names := a.expenses.Roster().Names()

	var b strings.Builder
	b.WriteString(tr.T("selectRoommate"))
	for i, n := range names {
		fmt.Fprintf(&b, "\n  %d) %s", i+1, n)
	}
	who, err := GetSimpleText(a.reader, b.String(), a.out)
	if err != nil {
		return services.NewExpense{}, err
	}
	if n, err := strconv.Atoi(who); err == nil && n >= 1 && n <= len(names) {
		who = names[n-1]
	}

	amount, err := GetSimpleText(a.reader, tr.T("amount"), a.out)
	if err != nil {
		return services.NewExpense{}, err
	}
	desc, err := GetSimpleText(a.reader, tr.T("description"), a.out)
	if err != nil {
		return services.NewExpense{}, err
	}
	date, err := GetSimpleText(a.reader, tr.T("date")+" (YYYY-MM-DD, empty = today)", a.out)
	if err != nil {
		return services.NewExpense{}, err
	}

	return services.NewExpense{Roommate: who, Amount: amount, Description: desc, Date: date}, nil
}

func (a *App) List(ctx context.Context) error {
	list, err := a.expenses.List(ctx)
	if err != nil {
		return a.fail(ctx, "errorLoading", err)
	}

	tr := a.tr()
	a.println(tr.T("currentMonth"))
	if len(list) == 0 {
		a.println(tr.T("noExpenses"))
		return nil
	}
	a.printExpenses(list)
	return nil
}

func (a *App) printExpenses(list []models.Expense) {
	tr := a.tr()
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\t%s\t%s\t%s\t%s\n", tr.T("date"), tr.T("roommateColumn"), tr.T("description"), tr.T("amount"), tr.T("receipt"))
	for _, e := range list {
		mark := ""
		if e.HasReceipt() {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", e.ID, tr.FormatDate(e.Date), e.Roommate, e.Description, e.Amount.StringFixed(2), mark)
	}
	_ = w.Flush()
}

func (a *App) Show(ctx context.Context, id string) error {
	if id == "" {
		return a.fail(ctx, "errorLoading", fmt.Errorf("%w: usage: show <id>", common.ErrValidation))
	}
	e, err := a.expenses.Get(ctx, id)
	if err != nil {
		return a.fail(ctx, "errorLoading", err)
	}

	tr := a.tr()
	a.println(tr.T("expenseDetails"))
	a.printf("  %s: %s\n", tr.T("roommateColumn"), e.Roommate)
	a.printf("  %s: %s\n", tr.T("amount"), e.Amount.StringFixed(2))
	a.printf("  %s: %s\n", tr.T("description"), e.Description)
	a.printf("  %s: %s\n", tr.T("date"), tr.FormatDate(e.Date))
	if e.HasReceipt() {
		if u, err := a.receipts.URL(ctx, id); err == nil {
			a.printf("  %s: %s\n", tr.T("receipt"), u)
		} else {
			a.logger.Warn(ctx, "resolve receipt", "id", id, "error", err)
		}
	}
	return nil
}

// Delete asks for confirmation before removing the expense.
func (a *App) Delete(ctx context.Context, id string) error {
	if id == "" {
		return a.fail(ctx, "errorDeleting", fmt.Errorf("%w: usage: delete <id>", common.ErrValidation))
	}

	tr := a.tr()
	err := a.expenses.Delete(ctx, id, func(e models.Expense) bool {
		a.printf("%s  %s  %s  %s\n", tr.FormatDate(e.Date), e.Roommate, e.Description, e.Amount.StringFixed(2))
		return Confirm(a.reader, tr.T("deleteConfirm")+" "+tr.T("cannotUndo"), a.out)
	})
	if errors.Is(err, common.ErrNotConfirmed) {
		a.println(tr.T("cancelled"))
		return err
	}
	if err != nil {
		return a.fail(ctx, "errorDeleting", err)
	}
	a.println(tr.T("expenseDeleted"))
	return nil
}
