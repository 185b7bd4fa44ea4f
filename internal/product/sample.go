package product

// TempID is the identifier of a product created while no store is
// attached. The product is returned fully derived but never persisted.
const TempID = "temp"

// SampleMenu is the fixed fallback menu served when no store is
// configured, with real ingredient breakdowns so the derived fields
// are honestly computed.
func SampleMenu() []Product {
	sample := []Product{
		{
			ID:       "sample-espresso",
			Name:     "Espresso",
			Category: "Coffee",
			Price:    3.0,
			Ingredients: []IngredientLine{
				{Name: "Coffee beans", Unit: "g", UnitCost: 0.02, Quantity: 18},
				{Name: "Paper cup", Unit: "pc", UnitCost: 0.12, Quantity: 1},
			},
		},
		{
			ID:       "sample-latte",
			Name:     "Latte 12oz",
			Category: "Coffee",
			Price:    4.5,
			Ingredients: []IngredientLine{
				{Name: "Coffee beans", Unit: "g", UnitCost: 0.02, Quantity: 18},
				{Name: "Whole milk", Unit: "ml", UnitCost: 0.002, Quantity: 280},
				{Name: "Paper cup", Unit: "pc", UnitCost: 0.14, Quantity: 1},
			},
		},
	}

	for i := range sample {
		Derive(&sample[i])
	}
	return sample
}
