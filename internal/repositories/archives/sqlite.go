package archives

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/dmitrijs2005/roomsplit/internal/dbx"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/google/uuid"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func decode(id, monthDate string, body []byte) (models.ArchivedMonth, error) {
	d, err := models.ParseDate(monthDate)
	if err != nil {
		return models.ArchivedMonth{}, fmt.Errorf("bad month date for archive %s: %w", id, err)
	}
	var s snapshot
	if err := json.Unmarshal(body, &s); err != nil {
		return models.ArchivedMonth{}, fmt.Errorf("bad snapshot for archive %s: %w", id, err)
	}
	if s.Expenses == nil {
		s.Expenses = []models.Expense{}
	}
	return models.ArchivedMonth{ID: id, MonthDate: d, Expenses: s.Expenses, Settlement: s.Settlement}, nil
}

func encode(a models.ArchivedMonth) ([]byte, error) {
	b, err := json.Marshal(snapshot{Expenses: a.Expenses, Settlement: a.Settlement})
	if err != nil {
		return nil, fmt.Errorf("failed to encode archive snapshot: %w", err)
	}
	return b, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.ArchivedMonth, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, month_date, snapshot FROM archived_months ORDER BY month_date DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived months: %w", err)
	}
	defer rows.Close()

	result := make([]models.ArchivedMonth, 0)
	for rows.Next() {
		var id, monthDate string
		var body []byte
		if err := rows.Scan(&id, &monthDate, &body); err != nil {
			return nil, fmt.Errorf("failed to scan archived month row: %w", err)
		}
		a, err := decode(id, monthDate, body)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate archived month rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (models.ArchivedMonth, error) {
	var monthDate string
	var body []byte
	err := r.db.QueryRowContext(ctx, `SELECT month_date, snapshot FROM archived_months WHERE id = ?`, id).Scan(&monthDate, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ArchivedMonth{}, fmt.Errorf("archived month %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return models.ArchivedMonth{}, fmt.Errorf("failed to get archived month %s: %w", id, err)
	}
	return decode(id, monthDate, body)
}

func (r *SQLiteRepository) Create(ctx context.Context, a models.ArchivedMonth) (models.ArchivedMonth, error) {
	body, err := encode(a)
	if err != nil {
		return models.ArchivedMonth{}, err
	}
	a.ID = uuid.NewString()

	_, err = r.db.ExecContext(ctx, `INSERT INTO archived_months (id, month_date, snapshot) VALUES (?, ?, ?)`,
		a.ID, a.MonthDateString(), string(body))
	if err != nil {
		return models.ArchivedMonth{}, fmt.Errorf("failed to create archived month: %w", err)
	}
	return a, nil
}
