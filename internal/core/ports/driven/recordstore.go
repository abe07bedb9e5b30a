package driven

import "context"

// RecordStore is a small key/value store for serialised records.
// Values are opaque to the store; services own their encoding.
type RecordStore interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the value for key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns every stored key in sorted order.
	Keys(ctx context.Context) ([]string, error)
}
