// Package kv provides the durable key/value stores the tracker persists to.
package kv

import "errors"

// ErrNotFound is returned by Get when a key has never been set.
var ErrNotFound = errors.New("key not found")

// Store is a durable key/value storage.
type Store interface {
	// Get retrieves a value by key, or an error matching ErrNotFound.
	Get(key string) ([]byte, error)

	// Set stores a value by key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes a value by key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases the storage resources.
	Close() error
}
