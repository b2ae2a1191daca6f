// Package store defines the key-value persistence boundary.
package store

// Store is an opaque string-keyed store of string values.
// This abstraction allows swapping storage backends (SQLite, in-memory,
// a flat file) without changing the directory, session, or ledger
// layers. Writers racing on the same key get last-write-wins.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Set writes the value for key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Close releases any resources held by the store.
	Close() error
}
