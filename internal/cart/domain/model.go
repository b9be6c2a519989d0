package domain

import "github.com/shopspring/decimal"

// CartLine is one product's entry in a cart. Name and price are
// snapshotted from the catalog at insertion time so persisted carts stay
// stable even if the catalog changes between deployments.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	PriceMAD  decimal.Decimal `json:"price_mad"`
	Quantity  int             `json:"quantity"`
}

// Cart holds the ordered lines of one browser session. Lines keep
// insertion order for stable display; at most one line exists per
// product id.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

// FindLine returns the index of the line for productID, or -1.
func (c Cart) FindLine(productID string) int {
	for i, line := range c.Lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}
