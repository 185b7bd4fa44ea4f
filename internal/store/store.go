package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnavailable is returned by every operation of the unavailable store.
// Callers check it with errors.Is and fall back to degraded behavior
// instead of failing the request.
var ErrUnavailable = errors.New("store not available: check DATABASE_URL and DATABASE_NAME environment variables")

// ErrNotFound is returned when a filter matches no document.
var ErrNotFound = errors.New("document not found")

// Store is the document store used by all repositories.
// Documents are schemaless beyond what the caller provides;
// Create stamps created_at/updated_at, mutating calls refresh updated_at.
type Store interface {

	// Create inserts one document and returns its hex id.
	Create(ctx context.Context, collection string, doc bson.M) (string, error)

	// Find returns documents matching filter. limit <= 0 means no limit.
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)

	// UpdateOne applies a $set patch to the first matching document.
	UpdateOne(ctx context.Context, collection string, filter bson.M, set bson.M) error

	// UpsertOne atomically updates the first matching document or inserts
	// a new one, returning the document after the write. setOnInsert fields
	// are applied only when the document is created.
	UpsertOne(ctx context.Context, collection string, filter bson.M, set bson.M, setOnInsert bson.M) (bson.M, error)

	// DeleteOne removes the first matching document.
	DeleteOne(ctx context.Context, collection string, filter bson.M) error

	// CollectionNames lists the collections currently in the store.
	CollectionNames(ctx context.Context) ([]string, error)

	// Ping probes connectivity.
	Ping(ctx context.Context) error

	// Available reports whether the store is backed by real persistence.
	Available() bool
}
