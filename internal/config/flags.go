package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/roomsplit/internal/flagx"
)

var knownFlags = []string{
	"-a", "-driver", "-d", "-blob", "-blob-dir", "-blob-url",
	"-u", "-p", "-b", "-g", "-e", "-m", "-l", "-log-level",
}

// parseFlags populates Config fields from command-line flags.
//
//	-a string          HTTP bind address (e.g. ":8080")
//	-driver string     database driver: sqlite or postgres
//	-d string          database DSN
//	-blob string       receipt storage: local or s3
//	-blob-dir string   directory for local receipts
//	-blob-url string   public URL prefix for local receipts
//	-u, -p string      S3 user and password
//	-b string          S3 bucket
//	-g string          S3 region
//	-e string          S3 base endpoint
//	-m list            comma separated roommates
//	-l string          default language (en, tr)
//	-log-level string  debug, info, warn or error
//
// Only these flags are taken from os.Args, so -c/-config and flags of other
// components do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "driver", config.DatabaseDriver, "database driver (sqlite|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.BlobBackend, "blob", config.BlobBackend, "receipt storage backend (local|s3)")
	fs.StringVar(&config.BlobDir, "blob-dir", config.BlobDir, "local receipt directory")
	fs.StringVar(&config.BlobBaseURL, "blob-url", config.BlobBaseURL, "public URL prefix for local receipts")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.DefaultLanguage, "l", config.DefaultLanguage, "default language")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")

	roommates := flagx.StringList(config.Roommates)
	fs.Var(&roommates, "m", "comma separated roommates")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.Roommates = []string(roommates)
}
