package currency

import "github.com/shopspring/decimal"

// Preference selects the currency used for displayed amounts.
// Catalog prices are always stored in MAD; EUR amounts are derived.
type Preference string

const (
	MAD Preference = "MAD"
	EUR Preference = "EUR"
)

// DefaultRateMADToEUR is the fixed MAD -> EUR conversion rate used when no
// rate is configured.
const DefaultRateMADToEUR = "0.093"

// Converter derives display amounts from canonical MAD amounts.
type Converter struct {
	rate decimal.Decimal
}

// NewConverter creates a Converter with the given MAD -> EUR rate.
func NewConverter(rate decimal.Decimal) *Converter {
	return &Converter{rate: rate}
}

// NewDefaultConverter creates a Converter with the default fixed rate.
func NewDefaultConverter() *Converter {
	return NewConverter(decimal.RequireFromString(DefaultRateMADToEUR))
}

// Convert maps a canonical MAD amount to the preferred display currency.
// MAD amounts pass through unchanged; EUR amounts are rounded half-up to
// the cent. Unrecognized preferences behave like MAD.
func (cv *Converter) Convert(amountMAD decimal.Decimal, pref Preference) decimal.Decimal {
	if pref == EUR {
		return amountMAD.Mul(cv.rate).Round(2)
	}
	return amountMAD
}

// Parse normalizes a stored or user-supplied currency code. Anything that
// is not "EUR" falls back to MAD, so a corrupted preference record can
// never break rendering.
func Parse(code string) Preference {
	if code == string(EUR) {
		return EUR
	}
	return MAD
}

// Valid reports whether code is one of the two supported currencies.
func Valid(code string) bool {
	return code == string(MAD) || code == string(EUR)
}
