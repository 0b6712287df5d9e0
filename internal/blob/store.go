// Package blob stores receipt images outside the database. A stored object
// is identified by its reference (the object key); URLs are produced on
// demand by Resolve because presigned URLs expire.
package blob

import (
	"context"
	"path"
	"strings"
)

// Store is the object storage used for receipts.
type Store interface {
	// Upload writes data under key and returns the reference to persist.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, ref string) error
	// Resolve returns a URL the object can be fetched from.
	Resolve(ctx context.Context, ref string) (string, error)
}

// ReceiptPath returns the object key for a receipt of the given expense.
// Only the base name of filename is kept.
func ReceiptPath(expenseID, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		name = "receipt"
	}
	return "receipts/" + expenseID + "/" + name
}
