package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/dmitrijs2005/roomsplit/internal/services"
	"github.com/gin-gonic/gin"
)

type messageResponse struct {
	Message string `json:"message"`
}

type expenseResponse struct {
	Message string         `json:"message,omitempty"`
	Expense models.Expense `json:"expense"`
}

// Roommates lists the roster in display order.
func (h *Handler) Roommates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roommates": h.expenses.Roster().Names()})
}

func (h *Handler) ListExpenses(c *gin.Context) {
	list, err := h.expenses.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "errorLoading")
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": list})
}

func (h *Handler) GetExpense(c *gin.Context) {
	e, err := h.expenses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, "errorLoading")
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) AddExpense(c *gin.Context) {
	var req addExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, fmt.Errorf("%w: %s", common.ErrValidation, err.Error()), "errorAdding")
		return
	}
	if err := validateStruct(req); err != nil {
		h.writeError(c, err, "errorAdding")
		return
	}

	e, err := h.expenses.Add(c.Request.Context(), services.NewExpense{
		Roommate:    req.Roommate,
		Amount:      string(req.Amount),
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		h.writeError(c, err, "errorAdding")
		return
	}

	c.JSON(http.StatusCreated, expenseResponse{Message: translator(c).T("expenseAdded"), Expense: e})
}

// DeleteExpense requires ?confirm=true; without it the expense is kept and
// 428 is returned.
func (h *Handler) DeleteExpense(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	err := h.expenses.Delete(c.Request.Context(), c.Param("id"), func(models.Expense) bool {
		return confirmed
	})
	if err != nil {
		h.writeError(c, err, "errorDeleting")
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: translator(c).T("expenseDeleted")})
}

func (h *Handler) Settlement(c *gin.Context) {
	s, err := h.expenses.Settlement(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "errorLoading")
		return
	}

	tr := translator(c)
	lines := make([]string, 0, len(s.Transfers))
	for _, t := range s.Transfers {
		lines = append(lines, fmt.Sprintf("%s: %s", tr.TransferLine(t.From, t.To), t.Amount.StringFixed(2)))
	}
	c.JSON(http.StatusOK, gin.H{"settlement": s, "lines": lines})
}
