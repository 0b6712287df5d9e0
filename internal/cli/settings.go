package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/roomsplit/internal/common"
)

func (a *App) Receipt(ctx context.Context, id, path string) error {
	if id == "" || path == "" {
		return a.fail(ctx, "errorReceipt", fmt.Errorf("%w: usage: receipt <id> <path>", common.ErrValidation))
	}
	data, err := readFile(path)
	if err != nil {
		return a.fail(ctx, "errorReceipt", err)
	}

	if _, err := a.receipts.Attach(ctx, id, filepath.Base(path), data); err != nil {
		return a.fail(ctx, "errorReceipt", err)
	}
	a.println(a.tr().T("receiptUploaded"))
	return nil
}

func (a *App) Unreceipt(ctx context.Context, id string) error {
	if id == "" {
		return a.fail(ctx, "errorReceiptDel", fmt.Errorf("%w: usage: unreceipt <id>", common.ErrValidation))
	}
	if err := a.receipts.Detach(ctx, id); err != nil {
		return a.fail(ctx, "errorReceiptDel", err)
	}
	a.println(a.tr().T("receiptDeleted"))
	return nil
}

func (a *App) Lang(ctx context.Context, lang string) error {
	if _, err := a.prefs.SetLanguage(ctx, lang); err != nil {
		return a.fail(ctx, "language", err)
	}
	a.println(a.tr().T("language") + ": " + string(a.prefs.Current().Language))
	return nil
}

func (a *App) Theme(ctx context.Context, theme string) error {
	if _, err := a.prefs.SetTheme(ctx, theme); err != nil {
		return a.fail(ctx, "theme", err)
	}
	tr := a.tr()
	a.println(tr.T("theme") + ": " + tr.T(string(a.prefs.Current().Theme)))
	return nil
}
