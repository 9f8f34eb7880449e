package repositories

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when nothing is stored under the key.
var ErrKeyNotFound = errors.New("key not found")

// CartKVStore is the external key-value storage the cart is persisted in.
// Values are opaque JSON text; stores never interpret them.
type CartKVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
