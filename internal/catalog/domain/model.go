package domain

import "github.com/shopspring/decimal"

// Product is a static catalog entry. The catalog is immutable for the
// process lifetime; prices are canonical MAD amounts.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	PriceMAD  decimal.Decimal `json:"price_mad"`
	ImagePath string          `json:"image_path"`
}
