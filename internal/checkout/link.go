package checkout

import (
	"fmt"

	"github.com/sadiko81-hub/wonderdiina-website/internal/currency"
	"github.com/shopspring/decimal"
)

// paypalMeBase is the fixed PayPal.me link grammar:
// https://www.paypal.me/{handle}/{amount}?currencyCode={code}
const paypalMeBase = "https://www.paypal.me"

// DefaultMerchantHandle is the shop's PayPal.me handle.
const DefaultMerchantHandle = "incaprint25"

// BuildPaymentLink formats a PayPal.me redirect URL for the given amount.
// The amount is rendered with exactly two decimal places; unrecognized
// currency preferences fall back to MAD.
func BuildPaymentLink(amount decimal.Decimal, pref currency.Preference, merchantHandle string) string {
	code := currency.MAD
	if pref == currency.EUR {
		code = currency.EUR
	}
	return fmt.Sprintf("%s/%s/%s?currencyCode=%s", paypalMeBase, merchantHandle, amount.StringFixed(2), code)
}
