package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/roomsplit/internal/analytics"
	"github.com/dmitrijs2005/roomsplit/internal/blob"
	"github.com/dmitrijs2005/roomsplit/internal/config"
	"github.com/dmitrijs2005/roomsplit/internal/i18n"
	"github.com/dmitrijs2005/roomsplit/internal/logging"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/dmitrijs2005/roomsplit/internal/preferences"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/repomanager"
	"github.com/dmitrijs2005/roomsplit/internal/services"
	"golang.org/x/term"
)

type expenseService interface {
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

type receiptService interface {
	Attach(ctx context.Context, id, filename string, data []byte) (models.Expense, error)
	Detach(ctx context.Context, id string) error
	URL(ctx context.Context, id string) (string, error)
}

type preferenceStore interface {
	Current() preferences.Preferences
	SetLanguage(ctx context.Context, lang string) (bool, error)
	SetTheme(ctx context.Context, theme string) (bool, error)
	Translator() i18n.Translator
}

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

type App struct {
	expenses expenseService
	receipts receiptService
	prefs    preferenceStore
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	db       *sql.DB
}

// NewApp opens the local database and receipt storage described by cfg.
// Diagnostics go to stderr through tint, colored when stderr is a terminal.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	color := term.IsTerminal(int(os.Stderr.Fd()))
	logger := logging.NewTintLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel), color)

	roster, err := cfg.Roster()
	if err != nil {
		return nil, err
	}

	db, rm, err := repomanager.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store, err := blob.Open(ctx, cfg.BlobOptions())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error initializing receipt storage: %w", err)
	}

	prefs := preferences.NewManager(rm.Metadata(db), cfg.Language())
	if err := prefs.Load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	es := services.NewExpenseService(db, rm, roster, services.WithLogger(logger))
	rs := services.NewReceiptService(db, rm, store, cfg.MaxReceiptSize, logger, nil)

	a := newApp(es, rs, prefs, logger, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(es expenseService, rs receiptService, prefs preferenceStore, logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		expenses: es,
		receipts: rs,
		prefs:    prefs,
		logger:   logger,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run shows the current month and starts the REPL. It returns when the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}

	tr := a.tr()
	fmt.Fprintln(a.out, tr.T("title"))
	_ = a.List(ctx)

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) tr() i18n.Translator { return a.prefs.Translator() }

func (a *App) status() string {
	p := a.prefs.Current()
	return fmt.Sprintf("%s|%s", p.Language, p.Theme)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// fail reports err to the user under the localized title key and logs it.
func (a *App) fail(ctx context.Context, key string, err error) error {
	tr := a.tr()
	a.println(tr.T(key) + ": " + describe(tr, err))
	a.logger.Warn(ctx, tr.T(key), "error", err)
	return err
}
