package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryStore keeps collections in process memory. It backs the test
// suite and behaves like the Mongo variant for the operations the
// repositories use: equality filters on top-level fields and _id.
type memoryStore struct {
	mu          sync.Mutex
	collections map[string][]bson.M
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{collections: make(map[string][]bson.M)}
}

func (s *memoryStore) Create(ctx context.Context, collection string, doc bson.M) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	stored := bson.M{"created_at": now, "updated_at": now}
	for k, v := range doc {
		stored[k] = v
	}

	id := primitive.NewObjectID()
	stored["_id"] = id

	s.collections[collection] = append(s.collections[collection], stored)
	return id.Hex(), nil
}

func (s *memoryStore) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []bson.M
	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		docs = append(docs, clone(doc))
		if limit > 0 && int64(len(docs)) >= limit {
			break
		}
	}
	return docs, nil
}

func (s *memoryStore) UpdateOne(ctx context.Context, collection string, filter bson.M, set bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			for k, v := range set {
				doc[k] = v
			}
			doc["updated_at"] = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

func (s *memoryStore) UpsertOne(ctx context.Context, collection string, filter bson.M, set bson.M, setOnInsert bson.M) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			for k, v := range set {
				doc[k] = v
			}
			doc["updated_at"] = now
			return clone(doc), nil
		}
	}

	doc := bson.M{"created_at": now, "updated_at": now}
	for k, v := range setOnInsert {
		doc[k] = v
	}
	for k, v := range set {
		doc[k] = v
	}
	doc["_id"] = primitive.NewObjectID()

	s.collections[collection] = append(s.collections[collection], doc)
	return clone(doc), nil
}

func (s *memoryStore) DeleteOne(ctx context.Context, collection string, filter bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			s.collections[collection] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *memoryStore) CollectionNames(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names, nil
}

func (s *memoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *memoryStore) Available() bool {
	return true
}

func matches(doc bson.M, filter bson.M) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}

func clone(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
