package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/blob"
	"github.com/dmitrijs2005/roomsplit/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Equal(t, "roomsplit.db", c.DatabaseDSN)
	assert.Equal(t, "local", c.BlobBackend)
	assert.Equal(t, "receipts-data", c.BlobDir)
	assert.Equal(t, "admin", c.S3RootUser)
	assert.Equal(t, "secretpassword", c.S3RootPassword)
	assert.Equal(t, "vault", c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Equal(t, "http://127.0.0.1:9000/", c.S3BaseEndpoint)
	assert.Equal(t, 15*time.Minute, c.PresignExpiry)
	assert.Equal(t, []string{"Görkem", "Yiğit", "Sertaç"}, c.Roommates)
	assert.Equal(t, int64(5<<20), c.MaxReceiptSize)
	assert.Equal(t, "en", c.DefaultLanguage)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()
	require.NotNil(t, c)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, "roomsplit.db", c.DatabaseDSN)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty roster", func(c *Config) { c.Roommates = nil }},
		{"duplicate roommate", func(c *Config) { c.Roommates = []string{"A", "A"} }},
		{"bad driver", func(c *Config) { c.DatabaseDriver = "mysql" }},
		{"bad backend", func(c *Config) { c.BlobBackend = "ftp" }},
		{"bad language", func(c *Config) { c.DefaultLanguage = "xx" }},
		{"bad size", func(c *Config) { c.MaxReceiptSize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestHelpers(t *testing.T) {
	c := defaults()

	r, err := c.Roster()
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())

	assert.Equal(t, i18n.English, c.Language())
	c.DefaultLanguage = "tr-TR"
	assert.Equal(t, i18n.Turkish, c.Language())
	c.DefaultLanguage = "??"
	assert.Equal(t, i18n.English, c.Language())

	opts := c.BlobOptions()
	assert.Equal(t, blob.BackendLocal, opts.Backend)
	assert.Equal(t, "receipts-data", opts.Dir)
	assert.Equal(t, "vault", opts.S3.Bucket)
	assert.Equal(t, "admin", opts.S3.AccessKey)
	assert.Equal(t, 15*time.Minute, opts.S3.PresignExpiry)
}
