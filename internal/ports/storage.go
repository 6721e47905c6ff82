package ports

import (
	"context"
	"errors"
)

// ErrNotFound is returned by LocalStorage.GetItem for a missing entry.
var ErrNotFound = errors.New("entry not found")

// LocalStorage is a flat string key/value store holding the board's named entries.
type LocalStorage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
}
