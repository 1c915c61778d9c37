// Package store is the durability adapter behind the cart and wishlist
// engines: JSON blobs under namespaced keys, written synchronously on every
// mutation.
package store

import "context"

type Store interface {
	// Load reads the value at key into value; found is false on a miss.
	Load(ctx context.Context, key string, value any) (found bool, err error)
	// Save writes value at key, replacing whatever was there. Entries do
	// not expire; the visitor owns their cart until they clear it.
	Save(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}
