package product

import (
	"context"
	"fmt"

	"coffeeshop/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const collection = "product"

// storeRepository persists products through the document store and maps
// the schemaless documents back to typed products, rejecting malformed
// stored data instead of propagating it.
type storeRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) Repository {
	return &storeRepository{store: s}
}

func (r *storeRepository) Create(ctx context.Context, p Product) (Product, error) {
	ingredients := make([]bson.M, 0, len(p.Ingredients))
	for _, line := range p.Ingredients {
		ingredients = append(ingredients, bson.M{
			"name":      line.Name,
			"unit":      line.Unit,
			"unit_cost": line.UnitCost,
			"quantity":  line.Quantity,
		})
	}

	doc := bson.M{
		"name":        p.Name,
		"category":    p.Category,
		"price":       p.Price,
		"ingredients": ingredients,
		// convenience cache; reads recompute from ingredients
		"cost": p.Cost,
	}

	id, err := r.store.Create(ctx, collection, doc)
	if err != nil {
		return Product{}, err
	}

	p.ID = id
	return p, nil
}

func (r *storeRepository) List(ctx context.Context) ([]Product, error) {
	docs, err := r.store.Find(ctx, collection, bson.M{}, 0)
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(docs))
	for _, doc := range docs {
		p, err := decodeProduct(doc)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *storeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return r.store.DeleteOne(ctx, collection, bson.M{"_id": oid})
}

// --------------------------------------------------
// Typed mapping from stored documents
// --------------------------------------------------

func decodeProduct(doc bson.M) (Product, error) {
	name, ok := doc["name"].(string)
	if !ok || name == "" {
		return Product{}, fmt.Errorf("stored product %v has no name", doc["_id"])
	}

	price, err := asFloat(doc["price"])
	if err != nil || price < 0 {
		return Product{}, fmt.Errorf("stored product %q has invalid price", name)
	}

	p := Product{
		ID:    hexID(doc["_id"]),
		Name:  name,
		Price: price,
	}
	if category, ok := doc["category"].(string); ok {
		p.Category = category
	}

	lines, err := decodeIngredients(doc["ingredients"])
	if err != nil {
		return Product{}, fmt.Errorf("stored product %q: %w", name, err)
	}

	if lines != nil {
		p.Ingredients = lines
		Derive(&p)
		return p, nil
	}

	// Legacy document without a breakdown: the stored cost is all we have.
	cost, err := asFloat(doc["cost"])
	if err != nil || cost < 0 {
		return Product{}, fmt.Errorf("stored product %q has invalid cost", name)
	}
	p.Ingredients = []IngredientLine{}
	p.Cost = cost
	p.MarginAmount = p.Price - cost
	if p.Price > 0 {
		p.MarginPercent = p.MarginAmount / p.Price * 100
	}
	return p, nil
}

func decodeIngredients(raw interface{}) ([]IngredientLine, error) {
	if raw == nil {
		return nil, nil
	}

	items, ok := raw.(bson.A)
	if !ok {
		// memory store round-trips the typed slice unchanged
		if typed, ok := raw.([]bson.M); ok {
			items = make(bson.A, len(typed))
			for i, m := range typed {
				items[i] = m
			}
		} else {
			return nil, fmt.Errorf("ingredients field has unexpected type %T", raw)
		}
	}

	lines := make([]IngredientLine, 0, len(items))
	for _, item := range items {
		m, ok := item.(bson.M)
		if !ok {
			if d, ok := item.(bson.D); ok {
				m = d.Map()
			} else {
				return nil, fmt.Errorf("ingredient entry has unexpected type %T", item)
			}
		}

		name, _ := m["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("ingredient entry has no name")
		}

		unitCost, err := asFloat(m["unit_cost"])
		if err != nil || unitCost < 0 {
			return nil, fmt.Errorf("ingredient %q has invalid unit_cost", name)
		}
		quantity, err := asFloat(m["quantity"])
		if err != nil || quantity < 0 {
			return nil, fmt.Errorf("ingredient %q has invalid quantity", name)
		}

		line := IngredientLine{Name: name, UnitCost: unitCost, Quantity: quantity}
		if unit, ok := m["unit"].(string); ok {
			line.Unit = unit
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func asFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("unexpected numeric type %T", v)
	}
}

func hexID(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
