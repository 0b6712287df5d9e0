package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// writeError maps err onto a status code and a localized message. fallback
// is the message key used for unexpected failures.
func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	tr := translator(c)

	status, key := http.StatusInternalServerError, fallback
	switch {
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrUnsupportedLanguage),
		errors.Is(err, common.ErrUnsupportedTheme):
		status, key = http.StatusBadRequest, "invalidInput"
	case errors.Is(err, common.ErrNoReceipt):
		status, key = http.StatusNotFound, "receipt"
	case errors.Is(err, common.ErrNotFound):
		status, key = http.StatusNotFound, "notFound"
	case errors.Is(err, common.ErrNotConfirmed):
		status, key = http.StatusPreconditionRequired, "deleteConfirm"
	case errors.Is(err, common.ErrNothingToArchive):
		status, key = http.StatusConflict, "nothingToExport"
	case errors.Is(err, common.ErrReceiptTooLarge):
		status, key = http.StatusRequestEntityTooLarge, "receiptTooLarge"
	case errors.Is(err, common.ErrReceiptNotImage), errors.Is(err, common.ErrReceiptRejected):
		status, key = http.StatusUnsupportedMediaType, "receiptNotImage"
	}

	resp := errorResponse{Error: tr.T(key)}
	if status == http.StatusInternalServerError {
		h.log.Error(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err)
		resp.Detail = tr.T("tryAgain")
	} else {
		resp.Detail = err.Error()
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, resp)
}
