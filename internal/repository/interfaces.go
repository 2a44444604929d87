package repository

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// KeyValueStoreInterface is the origin-scoped string key-value storage the
// roster persists into. It mirrors the browser local-storage contract: values
// are opaque strings and a write always overwrites the whole value.
type KeyValueStoreInterface interface {
	// GetItem returns the stored value and ok=false when the key is absent.
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
