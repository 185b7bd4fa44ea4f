package product

import (
	"context"
	"errors"
)

// ErrInvalidID marks identifiers that cannot be parsed as a store
// reference; handlers turn it into a 400.
var ErrInvalidID = errors.New("invalid product id")

// Repository defines all store operations for products
type Repository interface {
	Create(ctx context.Context, p Product) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Delete(ctx context.Context, id string) error
}
