package product

import "errors"

// PURE costing logic (no store, no HTTP).
// Derived fields are always recomputed from the ingredient lines;
// a persisted cost is never trusted when ingredients are present.

// LineCost is the cost contribution of one ingredient line.
func LineCost(line IngredientLine) float64 {
	return line.UnitCost * line.Quantity
}

// TotalCost sums the line costs of a breakdown. Order does not matter
// for the sum; the slice itself keeps insertion order for display.
func TotalCost(lines []IngredientLine) float64 {
	var total float64
	for _, line := range lines {
		total += LineCost(line)
	}
	return total
}

// Derive fills Cost, MarginAmount and MarginPercent from the product's
// ingredients and price. A negative margin is a valid state (loss-making
// item) and is never clamped. MarginPercent is 0 by convention when the
// price is 0.
func Derive(p *Product) {
	p.Cost = TotalCost(p.Ingredients)
	p.MarginAmount = p.Price - p.Cost

	if p.Price > 0 {
		p.MarginPercent = p.MarginAmount / p.Price * 100
	} else {
		p.MarginPercent = 0
	}
}

// --------------------------------------------------
// Input normalization & validation
// --------------------------------------------------

var (
	errNameRequired       = errors.New("name is required")
	errNegativePrice      = errors.New("price must be >= 0")
	errIngredientName     = errors.New("ingredient name is required")
	errNegativeUnitCost   = errors.New("ingredient unit_cost must be >= 0")
	errNegativeQuantity   = errors.New("ingredient quantity must be >= 0")
	errZeroPackSize       = errors.New("ingredient pack_size must be nonzero when pack costing is used")
	errNegativePackValues = errors.New("ingredient pack_size and pack_cost must be >= 0")
)

// NormalizeLine turns a request ingredient into an IngredientLine,
// resolving legacy pack-based costing (unit_cost = pack_cost / pack_size)
// and rejecting out-of-range values before any costing runs.
func NormalizeLine(in IngredientInput) (IngredientLine, error) {
	line := IngredientLine{
		Name:     in.Name,
		Unit:     in.Unit,
		UnitCost: in.UnitCost,
		Quantity: in.Quantity,
	}

	if in.Name == "" {
		return IngredientLine{}, errIngredientName
	}

	if in.PackSize != nil || in.PackCost != nil {
		if in.PackSize == nil || *in.PackSize == 0 {
			return IngredientLine{}, errZeroPackSize
		}
		packCost := 0.0
		if in.PackCost != nil {
			packCost = *in.PackCost
		}
		if *in.PackSize < 0 || packCost < 0 {
			return IngredientLine{}, errNegativePackValues
		}
		line.UnitCost = packCost / *in.PackSize
	}

	if line.UnitCost < 0 {
		return IngredientLine{}, errNegativeUnitCost
	}
	if line.Quantity < 0 {
		return IngredientLine{}, errNegativeQuantity
	}
	return line, nil
}

// NewProduct validates a create request and builds the derived product.
// It never produces a partially-computed Product: any invalid field
// rejects the whole input.
func NewProduct(in CreateInput) (Product, error) {
	if in.Name == "" {
		return Product{}, errNameRequired
	}
	if in.Price < 0 {
		return Product{}, errNegativePrice
	}

	lines := make([]IngredientLine, 0, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		line, err := NormalizeLine(ing)
		if err != nil {
			return Product{}, err
		}
		lines = append(lines, line)
	}

	p := Product{
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Ingredients: lines,
	}
	Derive(&p)
	return p, nil
}
