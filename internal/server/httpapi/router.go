// Package httpapi exposes the expense lifecycle over a JSON HTTP API built
// on gin. Messages are localized per request: ?lang= wins over
// Accept-Language, which wins over the saved preference.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/analytics"
	"github.com/dmitrijs2005/roomsplit/internal/i18n"
	"github.com/dmitrijs2005/roomsplit/internal/logging"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/dmitrijs2005/roomsplit/internal/preferences"
	"github.com/dmitrijs2005/roomsplit/internal/services"
	"github.com/gin-gonic/gin"
)

type ExpenseService interface {
	List(ctx context.Context) ([]models.Expense, error)
	Get(ctx context.Context, id string) (models.Expense, error)
	Add(ctx context.Context, in services.NewExpense) (models.Expense, error)
	Delete(ctx context.Context, id string, confirm services.ConfirmFunc) error
	Settlement(ctx context.Context) (models.Settlement, error)
	EndMonth(ctx context.Context) (models.ArchivedMonth, error)
	Archives(ctx context.Context) ([]models.ArchivedMonth, error)
	Archive(ctx context.Context, id string) (models.ArchivedMonth, error)
	Analytics(ctx context.Context) (analytics.Report, error)
	Roster() *models.Roster
}

type ReceiptService interface {
	Attach(ctx context.Context, id, filename string, data []byte) (models.Expense, error)
	Detach(ctx context.Context, id string) error
	URL(ctx context.Context, id string) (string, error)
	MaxSize() int64
}

type PreferenceStore interface {
	Current() preferences.Preferences
	SetLanguage(ctx context.Context, lang string) (bool, error)
	SetTheme(ctx context.Context, theme string) (bool, error)
}

// RequestObserver records per-request metrics.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

type Deps struct {
	Expenses    ExpenseService
	Receipts    ReceiptService
	Preferences PreferenceStore
	Logger      logging.Logger
	Metrics     RequestObserver
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
}

type Handler struct {
	expenses ExpenseService
	receipts ReceiptService
	prefs    PreferenceStore
	log      logging.Logger
}

// NewRouter wires middleware and routes.
func NewRouter(d Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	log := d.Logger
	if log == nil {
		log = logging.Nop()
	}
	h := &Handler{expenses: d.Expenses, receipts: d.Receipts, prefs: d.Preferences, log: log}

	r := gin.New()
	if d.Receipts != nil {
		r.MaxMultipartMemory = d.Receipts.MaxSize() + 1<<20
	}
	r.Use(gin.Recovery(), requestLogger(log), observe(d.Metrics), h.language())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(d.MetricsHandler))
	}

	v1 := r.Group("/api/v1")
	{
		v1.GET("/roommates", h.Roommates)

		v1.GET("/expenses", h.ListExpenses)
		v1.POST("/expenses", h.AddExpense)
		v1.GET("/expenses/:id", h.GetExpense)
		v1.DELETE("/expenses/:id", h.DeleteExpense)

		v1.PUT("/expenses/:id/receipt", h.AttachReceipt)
		v1.DELETE("/expenses/:id/receipt", h.DetachReceipt)
		v1.GET("/expenses/:id/receipt", h.GetReceipt)

		v1.GET("/settlement", h.Settlement)
		v1.GET("/export", h.ExportCurrent)

		v1.POST("/months", h.EndMonth)
		v1.GET("/months", h.ListMonths)
		v1.GET("/months/:id", h.GetMonth)
		v1.GET("/months/:id/export", h.ExportMonth)

		v1.GET("/analytics", h.Analytics)

		v1.GET("/preferences", h.GetPreferences)
		v1.PUT("/preferences", h.UpdatePreferences)
	}

	return r
}

const translatorKey = "translator"

func translator(c *gin.Context) i18n.Translator {
	if v, ok := c.Get(translatorKey); ok {
		if tr, ok := v.(i18n.Translator); ok {
			return tr
		}
	}
	return i18n.New(i18n.Default)
}
