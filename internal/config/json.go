package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/flagx"
	"github.com/dmitrijs2005/roomsplit/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// strings such as "15m" or integer nanoseconds.
type JsonConfig struct {
	HTTPAddr        string         `json:"http_addr"`
	DatabaseDriver  string         `json:"database_driver"`
	DatabaseDSN     string         `json:"database_dsn"`
	BlobBackend     string         `json:"blob_backend"`
	BlobDir         string         `json:"blob_dir"`
	BlobBaseURL     string         `json:"blob_base_url"`
	S3RootUser      string         `json:"s3_root_user"`
	S3RootPassword  string         `json:"s3_root_password"`
	S3Bucket        string         `json:"s3_bucket"`
	S3Region        string         `json:"s3_region"`
	S3BaseEndpoint  string         `json:"s3_base_endpoint"`
	PresignExpiry   timex.Duration `json:"presign_expiry"`
	Roommates       []string       `json:"roommates"`
	MaxReceiptSize  int64          `json:"max_receipt_size"`
	DefaultLanguage string         `json:"language"`
	LogLevel        string         `json:"log_level"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads the file named by -c/-config, if any, and copies every
// field present in it into config. Unreadable files and invalid JSON panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setDur := func(dst *time.Duration, v timex.Duration) {
		if v.Duration != 0 {
			*dst = v.Duration
		}
	}

	set(&config.HTTPAddr, c.HTTPAddr)
	set(&config.DatabaseDriver, c.DatabaseDriver)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.BlobBackend, c.BlobBackend)
	set(&config.BlobDir, c.BlobDir)
	set(&config.BlobBaseURL, c.BlobBaseURL)
	set(&config.S3RootUser, c.S3RootUser)
	set(&config.S3RootPassword, c.S3RootPassword)
	set(&config.S3Bucket, c.S3Bucket)
	set(&config.S3Region, c.S3Region)
	set(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	set(&config.DefaultLanguage, c.DefaultLanguage)
	set(&config.LogLevel, c.LogLevel)
	setDur(&config.PresignExpiry, c.PresignExpiry)
	setDur(&config.ShutdownTimeout, c.ShutdownTimeout)

	if len(c.Roommates) > 0 {
		config.Roommates = c.Roommates
	}
	if c.MaxReceiptSize != 0 {
		config.MaxReceiptSize = c.MaxReceiptSize
	}
}
