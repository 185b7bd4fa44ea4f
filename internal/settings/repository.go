package settings

import "context"

// Repository defines all store operations for the settings singleton.
// Both calls are atomic upserts so concurrent first readers cannot
// create the document twice.
type Repository interface {
	// GetOrCreate returns the settings document, inserting the default
	// tax rate if none exists yet.
	GetOrCreate(ctx context.Context) (Settings, error)

	// Upsert sets the tax rate, creating the document if needed.
	Upsert(ctx context.Context, taxRate float64) (Settings, error)
}
