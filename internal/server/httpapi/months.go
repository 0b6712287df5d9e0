package httpapi

import (
	"bytes"
	"net/http"

	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/dmitrijs2005/roomsplit/internal/report"
	"github.com/gin-gonic/gin"
)

func (h *Handler) EndMonth(c *gin.Context) {
	a, err := h.expenses.EndMonth(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "errorArchiving")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": translator(c).T("monthArchived"), "month": a})
}

func (h *Handler) ListMonths(c *gin.Context) {
	list, err := h.expenses.Archives(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "errorLoading")
		return
	}
	c.JSON(http.StatusOK, gin.H{"months": list})
}

func (h *Handler) GetMonth(c *gin.Context) {
	a, err := h.expenses.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "errorLoading")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) ExportCurrent(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.expenses.List(ctx)
	if err != nil {
		h.writeError(c, err, "errorLoading")
		return
	}
	s, err := h.expenses.Settlement(ctx)
	if err != nil {
		h.writeError(c, err, "errorLoading")
		return
	}
	h.sendCSV(c, report.CurrentFilename, list, s)
}

func (h *Handler) ExportMonth(c *gin.Context) {
	a, err := h.expenses.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "errorLoading")
		return
	}
	h.sendCSV(c, report.ArchiveFilename(a), a.Expenses, a.Settlement)
}

func (h *Handler) sendCSV(c *gin.Context, filename string, list []models.Expense, s models.Settlement) {
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, list, s, translator(c)); err != nil {
		h.writeError(c, err, "errorLoading")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, report.ContentType, buf.Bytes())
}
