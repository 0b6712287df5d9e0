package blob

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/roomsplit/internal/filex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_UploadResolveDelete(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	st, err := NewLocalStore(root, "")
	require.NoError(t, err)

	ref, err := st.Upload(ctx, "receipts/e1/a.png", []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "receipts/e1/a.png", ref)

	b, err := os.ReadFile(filepath.Join(root, "receipts", "e1", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), b)

	u, err := st.Resolve(ctx, ref)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "file://"), u)
	assert.True(t, strings.HasSuffix(u, "/receipts/e1/a.png"), u)

	require.NoError(t, st.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(root, "receipts", "e1", "a.png"))
	assert.True(t, os.IsNotExist(err))

	// second delete is a no-op
	assert.NoError(t, st.Delete(ctx, ref))
}

func TestLocalStore_BaseURL(t *testing.T) {
	st, err := NewLocalStore(t.TempDir(), "http://files.local/")
	require.NoError(t, err)

	u, err := st.Resolve(context.Background(), "receipts/e1/a.png")
	require.NoError(t, err)
	assert.Equal(t, "http://files.local/receipts/e1/a.png", u)
}

func TestLocalStore_RejectsEscape(t *testing.T) {
	st, err := NewLocalStore(t.TempDir(), "")
	require.NoError(t, err)

	_, err = st.Upload(context.Background(), "../outside.png", []byte("x"), "image/png")
	assert.True(t, errors.Is(err, filex.ErrOutsideRoot))
}

func TestLocalStore_CancelledContext(t *testing.T) {
	st, err := NewLocalStore(t.TempDir(), "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = st.Upload(ctx, "receipts/e1/a.png", []byte("x"), "image/png")
	assert.ErrorIs(t, err, context.Canceled)
}
