// Package repomanager selects the repository implementations for the
// configured database driver, opens the connection pool and applies the
// embedded migrations.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/roomsplit/internal/dbx"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/archives"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/expenses"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/metadata"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// RepositoryManager builds repositories bound to a DBTX, so the same code
// path works on a pool or inside a transaction.
type RepositoryManager interface {
	Driver() string
	RunMigrations(ctx context.Context, db *sql.DB) error
	Expenses(db dbx.DBTX) expenses.Repository
	Archives(db dbx.DBTX) archives.Repository
	Metadata(db dbx.DBTX) metadata.Repository
}

// New returns the manager for driver.
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case DriverSQLite:
		return &SQLiteRepositoryManager{}, nil
	case DriverPostgres:
		return &PostgresRepositoryManager{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects to dsn with the driver's database/sql driver, verifies the
// connection and runs migrations.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	m, err := New(driver)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(sqlDriverName(driver), dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// one writer at a time; also keeps in-memory databases alive
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate %s: %w", driver, err)
	}

	return db, m, nil
}

func sqlDriverName(driver string) string {
	if driver == DriverPostgres {
		return "pgx"
	}
	return "sqlite"
}
