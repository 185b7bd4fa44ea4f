package product

// IngredientLine is one entry of a product's cost breakdown.
// UnitCost is the cost of a single Unit, Quantity how many units
// one product consumes.
type IngredientLine struct {
	Name     string  `json:"name" bson:"name"`
	Unit     string  `json:"unit,omitempty" bson:"unit,omitempty"`
	UnitCost float64 `json:"unit_cost" bson:"unit_cost"`
	Quantity float64 `json:"quantity" bson:"quantity"`
}

// Product is a menu item. Cost, MarginAmount and MarginPercent are
// derived from Ingredients and Price on every read; the persisted
// cost field is only a convenience cache.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category,omitempty"`
	Price         float64          `json:"price"`
	Ingredients   []IngredientLine `json:"ingredients"`
	Cost          float64          `json:"cost"`
	MarginAmount  float64          `json:"margin_amount"`
	MarginPercent float64          `json:"margin_percent"`
}

// IngredientInput is the create-request form of an ingredient line.
// PackSize/PackCost support the legacy package-based costing input:
// when PackSize is set, unit cost is derived as PackCost / PackSize.
type IngredientInput struct {
	Name     string   `json:"name"`
	Unit     string   `json:"unit"`
	UnitCost float64  `json:"unit_cost"`
	Quantity float64  `json:"quantity"`
	PackSize *float64 `json:"pack_size,omitempty"`
	PackCost *float64 `json:"pack_cost,omitempty"`
}

// CreateInput is the POST /api/products request body.
type CreateInput struct {
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Price       float64           `json:"price"`
	Ingredients []IngredientInput `json:"ingredients"`
}
