// Package kvstore provides the durable named-entry storage the storefront
// keeps its cart and session snapshots in. Entries are plain strings keyed by
// name, matching the localStorage contract of the original web client: read
// once at startup, overwritten whole on every mutation, last write wins.
package kvstore

// Entry names shared by the session and cart stores.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyCart  = "cart"
)

// Store is a named string-entry store.
type Store interface {
	// Get returns the entry value and whether it exists.
	Get(key string) (string, bool, error)
	// Set overwrites the entry.
	Set(key, value string) error
	// Delete removes the entry; deleting a missing entry is not an error.
	Delete(key string) error
}
