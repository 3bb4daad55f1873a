package pricing

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"golang-storefront-gateway/internal/models"
)

func line(price string, qty int) models.CartLine {
	return models.CartLine{
		ProductID: "p",
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestComputeEmptyCart(t *testing.T) {
	s := Compute(nil)

	require.True(t, s.Subtotal.IsZero())
	require.True(t, s.ShippingFee.IsZero())
	require.True(t, s.TaxAmount.IsZero())
	require.True(t, s.Total.IsZero())
}

func TestComputeTwoLineScenario(t *testing.T) {
	// 29.99 * 2 + 15.00 = 74.98, below threshold
	s := Compute([]models.CartLine{
		line("29.99", 2),
		line("15.00", 1),
	}).Rounded()

	require.Equal(t, "74.98", s.Subtotal.String())
	require.Equal(t, "10.00", s.ShippingFee.StringFixed(2))
	require.Equal(t, "6.00", s.TaxAmount.StringFixed(2))
	require.Equal(t, "90.98", s.Total.StringFixed(2))
	require.NotNil(t, s.AmountToFreeShipping)
	require.Equal(t, "25.02", s.AmountToFreeShipping.StringFixed(2))
}

func TestComputeFreeShippingScenario(t *testing.T) {
	s := Compute([]models.CartLine{line("120.00", 1)}).Rounded()

	require.Equal(t, "120.00", s.Subtotal.StringFixed(2))
	require.True(t, s.ShippingFee.IsZero())
	require.Equal(t, "9.60", s.TaxAmount.StringFixed(2))
	require.Equal(t, "129.60", s.Total.StringFixed(2))
	require.Nil(t, s.AmountToFreeShipping)
}

func TestComputeFreeShippingBoundary(t *testing.T) {
	// Exactly 100.00 still pays shipping: the threshold is strictly greater-than.
	at := Compute([]models.CartLine{line("50.00", 2)})
	require.Equal(t, "10.00", at.ShippingFee.StringFixed(2))
	require.Nil(t, at.AmountToFreeShipping, "messaging is omitted from 100.00 up")

	above := Compute([]models.CartLine{line("100.01", 1)})
	require.True(t, above.ShippingFee.IsZero())
	require.Nil(t, above.AmountToFreeShipping)
}

func TestComputeSubtotalOrderIndependent(t *testing.T) {
	lines := []models.CartLine{
		line("3.33", 3),
		line("19.99", 1),
		line("0.05", 40),
		line("7.77", 7),
		line("120.00", 2),
	}
	want := Compute(lines)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]models.CartLine, len(lines))
		copy(shuffled, lines)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Compute(shuffled)
		require.True(t, want.Subtotal.Equal(got.Subtotal))
		require.True(t, want.Total.Equal(got.Total))
	}
}

func TestComputeTaxAndTotalIdentities(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	taxRate := decimal.RequireFromString("0.08")

	for i := 0; i < 100; i++ {
		n := 1 + rng.Intn(6)
		lines := make([]models.CartLine, 0, n)
		expected := decimal.Zero
		for j := 0; j < n; j++ {
			price := decimal.NewFromInt(int64(rng.Intn(10000))).Div(decimal.NewFromInt(100))
			qty := 1 + rng.Intn(5)
			lines = append(lines, models.CartLine{UnitPrice: price, Quantity: qty})
			expected = expected.Add(price.Mul(decimal.NewFromInt(int64(qty))))
		}

		s := Compute(lines)
		require.True(t, s.Subtotal.Equal(expected), "subtotal is the exact sum of line products")
		require.True(t, s.TaxAmount.Equal(s.Subtotal.Mul(taxRate)))
		require.True(t, s.Total.Equal(s.Subtotal.Add(s.ShippingFee).Add(s.TaxAmount)))
	}
}

func TestRoundedHalfUp(t *testing.T) {
	// 0.375 * 1 => tax 0.03, subtotal rounds to 0.38 (half-up, not banker's)
	s := Compute([]models.CartLine{line("0.375", 1)}).Rounded()
	require.Equal(t, "0.38", s.Subtotal.StringFixed(2))
}
