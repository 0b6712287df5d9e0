package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/gin-gonic/gin"
)

// AttachReceipt accepts a multipart upload in the "file" field.
func (h *Handler) AttachReceipt(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		h.writeError(c, fmt.Errorf("%w: %s", common.ErrValidation, err.Error()), "errorReceipt")
		return
	}

	limit := h.receipts.MaxSize()
	if fh.Size > limit {
		h.writeError(c, fmt.Errorf("%w: %w", common.ErrReceiptRejected, common.ErrReceiptTooLarge), "errorReceipt")
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.writeError(c, err, "errorReceipt")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		h.writeError(c, err, "errorReceipt")
		return
	}

	e, err := h.receipts.Attach(c.Request.Context(), c.Param("id"), fh.Filename, data)
	if err != nil {
		h.writeError(c, err, "errorReceipt")
		return
	}

	c.JSON(http.StatusOK, expenseResponse{Message: translator(c).T("receiptUploaded"), Expense: e})
}

func (h *Handler) DetachReceipt(c *gin.Context) {
	if err := h.receipts.Detach(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err, "errorReceiptDel")
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: translator(c).T("receiptDeleted")})
}

// GetReceipt redirects to the stored object. Local files without a public
// URL are served directly.
func (h *Handler) GetReceipt(c *gin.Context) {
	u, err := h.receipts.URL(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "errorLoading")
		return
	}

	if parsed, err := url.Parse(u); err == nil && parsed.Scheme == "file" {
		c.File(parsed.Path)
		return
	}
	c.Redirect(http.StatusFound, u)
}
