package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:metadata_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS metadata (key TEXT PRIMARY KEY, value BLOB)`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM metadata`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(ctx, "language")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Set(ctx, "language", []byte("tr")))
	require.NoError(t, r.Set(ctx, "theme", []byte("dark")))
	require.NoError(t, r.Set(ctx, "language", []byte("en")))

	v, err = r.Get(ctx, "language")
	require.NoError(t, err)
	require.Equal(t, []byte("en"), v)

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string][]byte{"language": []byte("en"), "theme": []byte("dark")}, all)

	require.NoError(t, r.Delete(ctx, "theme"))
	v, err = r.Get(ctx, "theme")
	require.NoError(t, err)
	require.Nil(t, v)
}
