package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/roomsplit/internal/dbx"
	"github.com/dmitrijs2005/roomsplit/internal/migrations"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/archives"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/expenses"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/metadata"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Driver() string { return DriverSQLite }

func (m *SQLiteRepositoryManager) Expenses(db dbx.DBTX) expenses.Repository {
	return expenses.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Archives(db dbx.DBTX) archives.Repository {
	return archives.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Metadata(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations.SQLite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "sqlite")
}
