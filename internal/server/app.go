// Package server assembles the roomsplit HTTP server: it opens the database
// and receipt storage, builds the services, and runs the API until a
// shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/roomsplit/internal/blob"
	"github.com/dmitrijs2005/roomsplit/internal/config"
	"github.com/dmitrijs2005/roomsplit/internal/logging"
	"github.com/dmitrijs2005/roomsplit/internal/metrics"
	"github.com/dmitrijs2005/roomsplit/internal/preferences"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/repomanager"
	"github.com/dmitrijs2005/roomsplit/internal/server/httpapi"
	"github.com/dmitrijs2005/roomsplit/internal/services"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	router *gin.Engine
}

// NewApp validates cfg and wires every dependency of the HTTP server.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))

	roster, err := cfg.Roster()
	if err != nil {
		return nil, err
	}

	db, rm, err := repomanager.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	store, err := blob.Open(ctx, cfg.BlobOptions())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("blob init error: %w", err)
	}

	prefs := preferences.NewManager(rm.Metadata(db), cfg.Language())
	if err := prefs.Load(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("preferences: %w", err)
	}

	m := metrics.New()

	es := services.NewExpenseService(db, rm, roster,
		services.WithLogger(logger.With("module", "expenses")),
		services.WithRecorder(m))
	rs := services.NewReceiptService(db, rm, store, cfg.MaxReceiptSize, logger.With("module", "receipts"), m)

	router := httpapi.NewRouter(httpapi.Deps{
		Expenses:       es,
		Receipts:       rs,
		Preferences:    prefs,
		Logger:         logger.With("module", "http"),
		Metrics:        m,
		MetricsHandler: m.Handler(),
	})

	return &App{config: cfg, logger: logger, db: db, router: router}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := NewHTTPServer(app.config.HTTPAddr, app.router, app.config.ShutdownTimeout, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a shutdown signal arrives, then
// closes the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.DatabaseDriver, "blob", app.config.BlobBackend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
