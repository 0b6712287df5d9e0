package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("ROOMSPLIT_HTTP_ADDR", ":9999")
	t.Setenv("ROOMSPLIT_DB_DRIVER", "postgres")
	t.Setenv("ROOMSPLIT_DATABASE_DSN", "postgres://u:p@db/roomsplit")
	t.Setenv("ROOMSPLIT_BLOB_BACKEND", "s3")
	t.Setenv("ROOMSPLIT_S3_BUCKET", "receipts")
	t.Setenv("ROOMSPLIT_ROOMMATES", "Ann, Bob ,,Cid")
	t.Setenv("ROOMSPLIT_MAX_RECEIPT_SIZE", "1024")
	t.Setenv("ROOMSPLIT_PRESIGN_EXPIRY", "5m")
	t.Setenv("ROOMSPLIT_LANGUAGE", "tr")

	c := defaults()
	parseEnv(c)

	assert.Equal(t, ":9999", c.HTTPAddr)
	assert.Equal(t, "postgres", c.DatabaseDriver)
	assert.Equal(t, "postgres://u:p@db/roomsplit", c.DatabaseDSN)
	assert.Equal(t, "s3", c.BlobBackend)
	assert.Equal(t, "receipts", c.S3Bucket)
	assert.Equal(t, []string{"Ann", "Bob", "Cid"}, c.Roommates)
	assert.Equal(t, int64(1024), c.MaxReceiptSize)
	assert.Equal(t, 5*time.Minute, c.PresignExpiry)
	assert.Equal(t, "tr", c.DefaultLanguage)
	assert.Equal(t, "vault", defaults().S3Bucket)
}

func TestParseEnv_Malformed(t *testing.T) {
	t.Setenv("ROOMSPLIT_MAX_RECEIPT_SIZE", "big")
	require.Panics(t, func() { parseEnv(defaults()) })
}
