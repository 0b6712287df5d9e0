package archives

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/roomsplit/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestPostgres_CreateAndList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	in := sampleMonth(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	body, err := encode(in)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO archived_months \(id, month_date, snapshot\) VALUES \(\$1, \$2, \$3\);`).
		WithArgs(sqlmock.AnyArg(), "2024-01-31", body).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), in)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT id, month_date, snapshot FROM archived_months ORDER BY month_date DESC, seq DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "month_date", "snapshot"}).
			AddRow(created.ID, in.MonthDate, body))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "2024-01-31", list[0].MonthDateString())
	assert.Len(t, list[0].Expenses, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Get(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM archived_months WHERE id = \$1`).WithArgs(testID).WillReturnError(sql.ErrNoRows)
	_, err := repo.Get(context.Background(), testID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	mock.ExpectQuery(`FROM archived_months WHERE id = \$1`).WithArgs(testID).
		WillReturnRows(sqlmock.NewRows([]string{"month_date", "snapshot"}).AddRow(time.Now(), []byte("{broken")))
	_, err = repo.Get(context.Background(), testID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad snapshot")

	_, err = repo.Get(context.Background(), "x")
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM archived_months`).WillReturnError(errors.New("down"))
	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "db error: down")
}
