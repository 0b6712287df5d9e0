package expenses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/dmitrijs2005/roomsplit/internal/dbx"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const postgresSelect = `SELECT id, roommate, amount, description, expense_date, receipt_ref FROM expenses`

func scanPostgres(sc interface{ Scan(...any) error }) (models.Expense, error) {
	var (
		e       models.Expense
		date    time.Time
		receipt sql.NullString
	)
	if err := sc.Scan(&e.ID, &e.Roommate, &e.Amount, &e.Description, &date, &receipt); err != nil {
		return models.Expense{}, err
	}
	e.Date = models.DateOf(date)
	e.ReceiptRef = receipt.String
	return e, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Expense, error) {
	rows, err := r.db.QueryContext(ctx, postgresSelect+` ORDER BY expense_date DESC, seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Expense, 0)
	for rows.Next() {
		e, err := scanPostgres(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

// notFoundIfBadID short-circuits ids that cannot be stored UUIDs, which
// Postgres would otherwise reject with a syntax error.
func notFoundIfBadID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (models.Expense, error) {
	if err := notFoundIfBadID(id); err != nil {
		return models.Expense{}, err
	}
	e, err := scanPostgres(r.db.QueryRowContext(ctx, postgresSelect+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Expense{}, fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return models.Expense{}, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, e models.Expense) (models.Expense, error) {
	e.ID = uuid.NewString()
	e.ReceiptRef = ""

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses (id, roommate, amount, description, expense_date, receipt_ref)
		VALUES ($1, $2, $3, $4, $5, NULL);
	`, e.ID, e.Roommate, e.Amount.String(), e.Description, e.DateString())
	if err != nil {
		return models.Expense{}, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) UpdateReceipt(ctx context.Context, id string, ref string) error {
	if err := notFoundIfBadID(id); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `UPDATE expenses SET receipt_ref = $1 WHERE id = $2;`, nullable(ref), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if err := notFoundIfBadID(id); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res, id)
}
