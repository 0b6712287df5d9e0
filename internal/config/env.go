package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/flagx"
)

const envPrefix = "ROOMSPLIT_"

// parseEnv overlays ROOMSPLIT_* environment variables. A .env file, if the
// caller loaded one with godotenv, is visible here as ordinary environment.
// Malformed numeric or duration values panic.
func parseEnv(config *Config) {
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}
	dur := func(name string, dst *time.Duration) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				panic(err)
			}
			*dst = d
		}
	}

	str("HTTP_ADDR", &config.HTTPAddr)
	str("DB_DRIVER", &config.DatabaseDriver)
	str("DATABASE_DSN", &config.DatabaseDSN)
	str("BLOB_BACKEND", &config.BlobBackend)
	str("BLOB_DIR", &config.BlobDir)
	str("BLOB_BASE_URL", &config.BlobBaseURL)
	str("S3_ROOT_USER", &config.S3RootUser)
	str("S3_ROOT_PASSWORD", &config.S3RootPassword)
	str("S3_BUCKET", &config.S3Bucket)
	str("S3_REGION", &config.S3Region)
	str("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
	str("LANGUAGE", &config.DefaultLanguage)
	str("LOG_LEVEL", &config.LogLevel)
	dur("PRESIGN_EXPIRY", &config.PresignExpiry)
	dur("SHUTDOWN_TIMEOUT", &config.ShutdownTimeout)

	if v, ok := os.LookupEnv(envPrefix + "ROOMMATES"); ok {
		config.Roommates = flagx.SplitList(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "MAX_RECEIPT_SIZE"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			panic(err)
		}
		config.MaxReceiptSize = n
	}
}
