package settings

import (
	"context"
	"fmt"

	"coffeeshop/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const collection = "settings"

type storeRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) Repository {
	return &storeRepository{store: s}
}

func (r *storeRepository) GetOrCreate(ctx context.Context) (Settings, error) {
	// One find-and-modify-or-insert call: the default is only written
	// when the singleton does not exist yet.
	doc, err := r.store.UpsertOne(ctx, collection,
		bson.M{},
		bson.M{},
		bson.M{"tax_rate": DefaultTaxRate},
	)
	if err != nil {
		return Settings{}, err
	}
	return decodeSettings(doc)
}

func (r *storeRepository) Upsert(ctx context.Context, taxRate float64) (Settings, error) {
	doc, err := r.store.UpsertOne(ctx, collection,
		bson.M{},
		bson.M{"tax_rate": taxRate},
		nil,
	)
	if err != nil {
		return Settings{}, err
	}
	return decodeSettings(doc)
}

func decodeSettings(doc bson.M) (Settings, error) {
	s := Settings{TaxRate: DefaultTaxRate}

	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		s.ID = oid.Hex()
	}

	switch rate := doc["tax_rate"].(type) {
	case float64:
		s.TaxRate = rate
	case float32:
		s.TaxRate = float64(rate)
	case int32:
		s.TaxRate = float64(rate)
	case int64:
		s.TaxRate = float64(rate)
	case int:
		s.TaxRate = float64(rate)
	case nil:
		// keep the default
	default:
		return Settings{}, fmt.Errorf("stored settings has invalid tax_rate type %T", rate)
	}

	if s.TaxRate < 0 {
		return Settings{}, fmt.Errorf("stored settings has negative tax_rate %v", s.TaxRate)
	}
	return s, nil
}
