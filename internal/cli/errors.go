package cli

import (
	"errors"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/dmitrijs2005/roomsplit/internal/i18n"
)

// describe renders err for the user in the current language.
func describe(tr i18n.Translator, err error) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return tr.T("invalidInput") + " (" + err.Error() + ")"
	case errors.Is(err, common.ErrNoReceipt):
		return err.Error()
	case errors.Is(err, common.ErrNotFound):
		return tr.T("notFound")
	case errors.Is(err, common.ErrNotConfirmed):
		return tr.T("cancelled")
	case errors.Is(err, common.ErrNothingToArchive):
		return tr.T("nothingToExport")
	case errors.Is(err, common.ErrReceiptTooLarge):
		return tr.T("receiptTooLarge")
	case errors.Is(err, common.ErrReceiptNotImage):
		return tr.T("receiptNotImage")
	case errors.Is(err, common.ErrUnsupportedLanguage), errors.Is(err, common.ErrUnsupportedTheme):
		return err.Error()
	}
	return tr.T("tryAgain")
}
