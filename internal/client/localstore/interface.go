package localstore

import "context"

// Well-known cache keys.
const (
	// KeyUser holds the JSON-serialized session user.
	KeyUser = "user"
	// KeyFavorites holds the JSON-serialized resolved favorites list.
	KeyFavorites = "favorites"
)

// Repository is a keyed BLOB cache. Get returns (nil, nil) for an absent
// key; Delete and Clear are idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
