package settings

import (
	"context"
	"errors"

	"coffeeshop/internal/store"
)

var errNegativeTaxRate = errors.New("tax_rate must be >= 0")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Get settings (default-created on first read)
// --------------------------------------------------
func (s *Service) Get(ctx context.Context) (Settings, error) {
	got, err := s.repo.GetOrCreate(ctx)
	if errors.Is(err, store.ErrUnavailable) {
		return Settings{TaxRate: DefaultTaxRate}, nil
	}
	if err != nil {
		return Settings{}, err
	}
	return got, nil
}

// --------------------------------------------------
// Update settings (upsert)
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, in UpdateInput) (Settings, error) {
	if in.TaxRate < 0 {
		return Settings{}, errNegativeTaxRate
	}

	got, err := s.repo.Upsert(ctx, in.TaxRate)
	if errors.Is(err, store.ErrUnavailable) {
		// Nothing durable to write: echo the input back.
		return Settings{TaxRate: in.TaxRate}, nil
	}
	if err != nil {
		return Settings{}, err
	}
	return got, nil
}
