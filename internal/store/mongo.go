package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps a connected Mongo database as a Store.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{db: db}
}

func (s *mongoStore) Create(ctx context.Context, collection string, doc bson.M) (string, error) {
	now := time.Now().UTC()
	doc["created_at"] = now
	doc["updated_at"] = now

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("store returned a non-ObjectID identifier")
	}
	return oid.Hex(), nil
}

func (s *mongoStore) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *mongoStore) UpdateOne(ctx context.Context, collection string, filter bson.M, set bson.M) error {
	set["updated_at"] = time.Now().UTC()

	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoStore) UpsertOne(ctx context.Context, collection string, filter bson.M, set bson.M, setOnInsert bson.M) (bson.M, error) {
	now := time.Now().UTC()
	set["updated_at"] = now

	if setOnInsert == nil {
		setOnInsert = bson.M{}
	}
	setOnInsert["created_at"] = now

	update := bson.M{
		"$set":         set,
		"$setOnInsert": setOnInsert,
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc bson.M
	if err := s.db.Collection(collection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *mongoStore) DeleteOne(ctx context.Context, collection string, filter bson.M) error {
	_, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	return err
}

func (s *mongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *mongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

func (s *mongoStore) Available() bool {
	return true
}
