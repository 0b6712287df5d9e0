package httpapi

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/roomsplit/internal/analytics"
	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/gin-gonic/gin"
)

type monthView struct {
	analytics.MonthTotal
	Label string `json:"label"`
}

type analyticsResponse struct {
	Title       string                    `json:"title"`
	Months      []monthView               `json:"months"`
	Roommates   []analytics.RoommateStats `json:"roommates"`
	TotalMonths int                       `json:"totalMonths"`
}

func (h *Handler) Analytics(c *gin.Context) {
	rep, err := h.expenses.Analytics(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "errorLoading")
		return
	}

	tr := translator(c)
	resp := analyticsResponse{
		Title:       tr.T("analytics"),
		Months:      make([]monthView, 0, len(rep.Months)),
		Roommates:   rep.Roommates,
		TotalMonths: rep.TotalMonths,
	}
	for _, m := range rep.Months {
		resp.Months = append(resp.Months, monthView{MonthTotal: m, Label: tr.MonthLabel(m.Year, m.Month)})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.prefs.Current())
}

func (h *Handler) UpdatePreferences(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, fmt.Errorf("%w: %s", common.ErrValidation, err.Error()), "tryAgain")
		return
	}
	if err := validateStruct(req); err != nil {
		h.writeError(c, err, "tryAgain")
		return
	}

	ctx := c.Request.Context()
	if req.Language != "" {
		if _, err := h.prefs.SetLanguage(ctx, req.Language); err != nil {
			h.writeError(c, err, "tryAgain")
			return
		}
	}
	if req.Theme != "" {
		if _, err := h.prefs.SetTheme(ctx, req.Theme); err != nil {
			h.writeError(c, err, "tryAgain")
			return
		}
	}

	c.JSON(http.StatusOK, h.prefs.Current())
}
