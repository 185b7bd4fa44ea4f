package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// unavailableStore is the degraded-mode variant, selected when no store
// is configured. Every operation fails with ErrUnavailable so callers
// can fall back without null-checking a shared handle.
type unavailableStore struct{}

// NewUnavailableStore returns the degraded-mode Store.
func NewUnavailableStore() Store {
	return unavailableStore{}
}

func (unavailableStore) Create(ctx context.Context, collection string, doc bson.M) (string, error) {
	return "", ErrUnavailable
}

func (unavailableStore) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	return nil, ErrUnavailable
}

func (unavailableStore) UpdateOne(ctx context.Context, collection string, filter bson.M, set bson.M) error {
	return ErrUnavailable
}

func (unavailableStore) UpsertOne(ctx context.Context, collection string, filter bson.M, set bson.M, setOnInsert bson.M) (bson.M, error) {
	return nil, ErrUnavailable
}

func (unavailableStore) DeleteOne(ctx context.Context, collection string, filter bson.M) error {
	return ErrUnavailable
}

func (unavailableStore) CollectionNames(ctx context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (unavailableStore) Ping(ctx context.Context) error {
	return ErrUnavailable
}

func (unavailableStore) Available() bool {
	return false
}
