package pricing

import (
	"github.com/sadiko81-hub/wonderdiina-website/internal/cart/domain"
	"github.com/sadiko81-hub/wonderdiina-website/internal/currency"
	"github.com/shopspring/decimal"
)

// Aggregator derives per-line and cart-wide totals. Per-line unit prices
// are converted (and rounded) first and the cart total sums the already
// rounded line totals, so the displayed total always equals the sum of
// the displayed line amounts.
type Aggregator struct {
	converter *currency.Converter
}

// NewAggregator creates an Aggregator using the given converter.
func NewAggregator(converter *currency.Converter) *Aggregator {
	return &Aggregator{converter: converter}
}

// DisplayPrice converts a canonical MAD amount for display.
func (a *Aggregator) DisplayPrice(amountMAD decimal.Decimal, pref currency.Preference) decimal.Decimal {
	return a.converter.Convert(amountMAD, pref)
}

// UnitPrice returns a line's converted unit price.
func (a *Aggregator) UnitPrice(line domain.CartLine, pref currency.Preference) decimal.Decimal {
	return a.DisplayPrice(line.PriceMAD, pref)
}

// LineTotal returns a line's converted unit price times its quantity.
func (a *Aggregator) LineTotal(line domain.CartLine, pref currency.Preference) decimal.Decimal {
	return a.UnitPrice(line, pref).Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// CartTotal sums LineTotal over all lines. An empty cart yields zero.
func (a *Aggregator) CartTotal(cart domain.Cart, pref currency.Preference) decimal.Decimal {
	total := decimal.Zero
	for _, line := range cart.Lines {
		total = total.Add(a.LineTotal(line, pref))
	}
	return total
}

// ItemCount sums quantities across all lines. This is the cart badge
// number, not the count of distinct lines.
func ItemCount(cart domain.Cart) int {
	count := 0
	for _, line := range cart.Lines {
		count += line.Quantity
	}
	return count
}
