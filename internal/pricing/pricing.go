package pricing

import (
	"github.com/shopspring/decimal"

	"golang-storefront-gateway/internal/models"
)

// Pricing constants. The authoritative charge is computed by the Order
// Service; this package only derives the summary shown in the cart and
// checkout views, so the constants must stay in lockstep with upstream.
var (
	freeShippingThreshold = decimal.RequireFromString("100.00")
	flatShippingFee       = decimal.RequireFromString("10.00")
	taxRate               = decimal.RequireFromString("0.08")
)

// Summary is the derived pricing breakdown for a cart snapshot. Amounts are
// kept exact; call Rounded before serializing for display.
type Summary struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Total       decimal.Decimal `json:"total"`

	// AmountToFreeShipping is set only while the subtotal is below the
	// free-shipping threshold.
	AmountToFreeShipping *decimal.Decimal `json:"amount_to_free_shipping,omitempty"`
}

// Compute derives the pricing summary from cart lines. It is a total function:
// quantities and prices are taken as-is, validation is owned by the Cart
// Service. An empty cart yields an all-zero summary.
func Compute(lines []models.CartLine) Summary {
	if len(lines) == 0 {
		return Summary{
			Subtotal:    decimal.Zero,
			ShippingFee: decimal.Zero,
			TaxAmount:   decimal.Zero,
			Total:       decimal.Zero,
		}
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	// Free shipping applies strictly above the threshold: 100.00 still pays.
	shippingFee := flatShippingFee
	if subtotal.GreaterThan(freeShippingThreshold) {
		shippingFee = decimal.Zero
	}

	taxAmount := subtotal.Mul(taxRate)

	summary := Summary{
		Subtotal:    subtotal,
		ShippingFee: shippingFee,
		TaxAmount:   taxAmount,
		Total:       subtotal.Add(shippingFee).Add(taxAmount),
	}

	if subtotal.LessThan(freeShippingThreshold) {
		remaining := freeShippingThreshold.Sub(subtotal)
		summary.AmountToFreeShipping = &remaining
	}

	return summary
}

// Rounded returns the summary with every amount rounded half-up to two
// decimal places. Rounding happens only here, at display time, so repeated
// computation never compounds rounding error.
func (s Summary) Rounded() Summary {
	rounded := Summary{
		Subtotal:    s.Subtotal.Round(2),
		ShippingFee: s.ShippingFee.Round(2),
		TaxAmount:   s.TaxAmount.Round(2),
		Total:       s.Total.Round(2),
	}
	if s.AmountToFreeShipping != nil {
		remaining := s.AmountToFreeShipping.Round(2)
		rounded.AmountToFreeShipping = &remaining
	}
	return rounded
}
