package archives

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

func (r *PostgresRepository) List(ctx context.Context) ([]models.ArchivedMonth, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, month_date, snapshot FROM archived_months ORDER BY month_date DESC, seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.ArchivedMonth, 0)
	for rows.Next() {
		var id string
		var monthDate time.Time
		var body []byte
		if err := rows.Scan(&id, &monthDate, &body); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		a, err := decode(id, monthDate.Format(models.DateLayout), body)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (models.ArchivedMonth, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.ArchivedMonth{}, fmt.Errorf("archived month %s: %w", id, common.ErrNotFound)
	}

	var monthDate time.Time
	var body []byte
	err := r.db.QueryRowContext(ctx, `SELECT month_date, snapshot FROM archived_months WHERE id = $1`, id).Scan(&monthDate, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ArchivedMonth{}, fmt.Errorf("archived month %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return models.ArchivedMonth{}, fmt.Errorf("db error: %w", err)
	}
	return decode(id, monthDate.Format(models.DateLayout), body)
}

func (r *PostgresRepository) Create(ctx context.Context, a models.ArchivedMonth) (models.ArchivedMonth, error) {
	body, err := encode(a)
	if err != nil {
		return models.ArchivedMonth{}, err
	}
	a.ID = uuid.NewString()

	_, err = r.db.ExecContext(ctx, `INSERT INTO archived_months (id, month_date, snapshot) VALUES ($1, $2, $3);`,
		a.ID, a.MonthDateString(), body)
	if err != nil {
		return models.ArchivedMonth{}, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}
