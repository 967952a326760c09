// Package localstore implements the persistence of the shop: a small
// key-value store holding one JSON document per collection, and the Ledger,
// the in-memory repository over products, sales and debts that persists
// through it.
package localstore

import "errors"

// ErrKeyNotFound reports that nothing has been stored under a key yet.
var ErrKeyNotFound = errors.New("key not found")

// Store durably stores a named JSON-serializable value per key. There is no
// cross-key atomicity; the three collections are three independent keys.
//
// Read decodes the stored value into out and returns ErrKeyNotFound when the
// key has never been written. A decode failure is returned as-is; callers
// decide how corruption degrades. Write replaces any prior value.
type Store interface {
	Read(key string, out any) error
	Write(key string, value any) error
}
