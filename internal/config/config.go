// Package config holds the runtime settings shared by the roomsplit server
// and CLI. Values are layered: built-in defaults, then ROOMSPLIT_*
// environment variables, then an optional JSON file (-c/-config), then
// command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/blob"
	"github.com/dmitrijs2005/roomsplit/internal/i18n"
	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/dmitrijs2005/roomsplit/internal/repositories/repomanager"
)

// Config holds runtime settings.
//
// Fields:
//   - HTTPAddr: bind address of the HTTP API.
//   - DatabaseDriver / DatabaseDSN: "sqlite" (file path or URI) or "postgres" (pgx DSN).
//   - BlobBackend: "local" (files under BlobDir) or "s3".
//   - BlobBaseURL: optional public prefix for local receipts.
//   - S3RootUser / S3RootPassword / S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
//   - PresignExpiry: lifetime of presigned receipt URLs.
//   - Roommates: the fixed roster, in display order.
//   - MaxReceiptSize: upload limit in bytes.
//   - DefaultLanguage: used until a language preference is saved.
type Config struct {
	HTTPAddr        string
	DatabaseDriver  string
	DatabaseDSN     string
	BlobBackend     string
	BlobDir         string
	BlobBaseURL     string
	S3RootUser      string
	S3RootPassword  string
	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
	PresignExpiry   time.Duration
	Roommates       []string
	MaxReceiptSize  int64
	DefaultLanguage string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.DatabaseDriver = repomanager.DriverSQLite
	c.DatabaseDSN = "roomsplit.db"
	c.BlobBackend = blob.BackendLocal
	c.BlobDir = "receipts-data"
	c.BlobBaseURL = ""
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "vault"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.PresignExpiry = 15 * time.Minute
	c.Roommates = []string{"Görkem", "Yiğit", "Sertaç"}
	c.MaxReceiptSize = 5 << 20
	c.DefaultLanguage = string(i18n.English)
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
}

// LoadConfig builds a Config from defaults, environment, JSON file and flags.
// It panics on unreadable input, like the flag package does on bad flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate checks cross-field constraints after loading.
func (c *Config) Validate() error {
	if _, err := models.NewRoster(c.Roommates); err != nil {
		return fmt.Errorf("roommates: %w", err)
	}
	if _, err := repomanager.New(c.DatabaseDriver); err != nil {
		return err
	}
	switch c.BlobBackend {
	case blob.BackendLocal, blob.BackendS3:
	default:
		return fmt.Errorf("unsupported blob backend %q", c.BlobBackend)
	}
	if _, err := i18n.ParseLanguage(c.DefaultLanguage); err != nil {
		return err
	}
	if c.MaxReceiptSize <= 0 {
		return fmt.Errorf("max receipt size must be positive, got %d", c.MaxReceiptSize)
	}
	return nil
}

// Roster builds the roommate roster.
func (c *Config) Roster() (*models.Roster, error) {
	return models.NewRoster(c.Roommates)
}

// Language returns DefaultLanguage, falling back to English when invalid.
func (c *Config) Language() i18n.Language {
	l, err := i18n.ParseLanguage(c.DefaultLanguage)
	if err != nil {
		return i18n.Default
	}
	return l
}

// BlobOptions maps the storage settings onto blob.Options.
func (c *Config) BlobOptions() blob.Options {
	return blob.Options{
		Backend: c.BlobBackend,
		Dir:     c.BlobDir,
		BaseURL: c.BlobBaseURL,
		S3: blob.S3Config{
			Region:        c.S3Region,
			AccessKey:     c.S3RootUser,
			SecretKey:     c.S3RootPassword,
			Bucket:        c.S3Bucket,
			BaseEndpoint:  c.S3BaseEndpoint,
			PresignExpiry: c.PresignExpiry,
		},
	}
}
