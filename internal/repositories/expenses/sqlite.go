package expenses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/dmitrijs2005/roomsplit/internal/dbx"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const sqliteSelect = `SELECT id, roommate, amount, description, expense_date, receipt_ref FROM expenses`

func scanSQLite(sc interface{ Scan(...any) error }) (models.Expense, error) {
	var (
		e       models.Expense
		amount  string
		date    string
		receipt sql.NullString
	)
	if err := sc.Scan(&e.ID, &e.Roommate, &amount, &e.Description, &date, &receipt); err != nil {
		return models.Expense{}, err
	}

	var err error
	if e.Amount, err = decimal.NewFromString(amount); err != nil {
		return models.Expense{}, fmt.Errorf("bad amount %q for expense %s: %w", amount, e.ID, err)
	}
	if e.Date, err = models.ParseDate(date); err != nil {
		return models.Expense{}, fmt.Errorf("bad date for expense %s: %w", e.ID, err)
	}
	e.ReceiptRef = receipt.String
	return e, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Expense, error) {
	rows, err := r.db.QueryContext(ctx, sqliteSelect+` ORDER BY expense_date DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	result := make([]models.Expense, 0)
	for rows.Next() {
		e, err := scanSQLite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		result = append(result, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (models.Expense, error) {
	e, err := scanSQLite(r.db.QueryRowContext(ctx, sqliteSelect+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Expense{}, fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return models.Expense{}, fmt.Errorf("failed to get expense %s: %w", id, err)
	}
	return e, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, e models.Expense) (models.Expense, error) {
	e.ID = uuid.NewString()
	e.ReceiptRef = ""

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses (id, roommate, amount, description, expense_date, receipt_ref)
		VALUES (?, ?, ?, ?, ?, NULL)
	`, e.ID, e.Roommate, e.Amount.String(), e.Description, e.DateString())
	if err != nil {
		return models.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}
	return e, nil
}

func (r *SQLiteRepository) UpdateReceipt(ctx context.Context, id string, ref string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE expenses SET receipt_ref = ? WHERE id = ?`, nullable(ref), id)
	if err != nil {
		return fmt.Errorf("failed to update receipt of expense %s: %w", id, err)
	}
	return expectOne(res, id)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", id, err)
	}
	return expectOne(res, id)
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func expectOne(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
	}
	return nil
}
