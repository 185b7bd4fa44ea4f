package settings

// DefaultTaxRate is used when the settings document does not exist yet
// and in degraded mode.
const DefaultTaxRate = 0.1

// Settings is the single app-wide settings document. ID is empty in
// degraded mode, where nothing is persisted.
type Settings struct {
	ID      string  `json:"id,omitempty"`
	TaxRate float64 `json:"tax_rate"`
}

// UpdateInput is the PUT /api/settings request body.
type UpdateInput struct {
	TaxRate float64 `json:"tax_rate"`
}
