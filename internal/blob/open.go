package blob

import (
	"context"
	"fmt"
)

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// Options selects and configures a Store.
type Options struct {
	Backend string
	Dir     string
	BaseURL string
	S3      S3Config
}

// Open returns the Store for opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendLocal, "":
		return NewLocalStore(opts.Dir, opts.BaseURL)
	case BackendS3:
		return NewS3Store(ctx, opts.S3)
	default:
		return nil, fmt.Errorf("unsupported blob backend %q", opts.Backend)
	}
}
