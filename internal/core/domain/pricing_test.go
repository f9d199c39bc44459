package domain_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDiscountedPrice(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		got := domain.DiscountedPrice(dec("100"), dec("20"))
		assert.True(t, got.Equal(dec("80")), got.String())
	})

	t.Run("NotRounded", func(t *testing.T) {
		got := domain.DiscountedPrice(dec("549"), dec("12.96"))
		assert.True(t, got.Equal(dec("477.8496")), got.String())
	})

	t.Run("ZeroDiscountKeepsPrice", func(t *testing.T) {
		got := domain.DiscountedPrice(dec("9.99"), decimal.Zero)
		assert.True(t, got.Equal(dec("9.99")), got.String())
	})

	t.Run("NeverAboveListPrice", func(t *testing.T) {
		prices := []string{"0.01", "1", "9.99", "100", "1749", "123456.78"}
		discounts := []string{"0", "0.01", "1", "12.5", "50", "99.99"}

		for _, p := range prices {
			for _, d := range discounts {
				price, discount := dec(p), dec(d)
				got := domain.DiscountedPrice(price, discount)

				assert.True(t, got.LessThanOrEqual(price), "price=%s discount=%s", p, d)
				if discount.IsZero() {
					assert.True(t, got.Equal(price), "price=%s discount=%s", p, d)
				} else {
					assert.True(t, got.LessThan(price), "price=%s discount=%s", p, d)
				}
			}
		}
	})

	t.Run("NegativePricePropagates", func(t *testing.T) {
		got := domain.DiscountedPrice(dec("-10"), dec("10"))
		assert.True(t, got.Equal(dec("-9")), got.String())
	})
}

func TestDisplayPrice(t *testing.T) {
	tests := []struct {
		price string
		want  int64
	}{
		{"80", 80},
		{"477.8496", 478},
		{"12.49", 12},
		{"12.5", 13},
		{"0.4", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.DisplayPrice(dec(tt.price)), tt.price)
	}
}

func TestDiscountLabel(t *testing.T) {
	assert.Equal(t, "20% Off", domain.DiscountLabel(dec("20")))
	assert.Equal(t, "13% Off", domain.DiscountLabel(dec("12.96")))
	assert.Equal(t, "17% Off", domain.DiscountLabel(dec("17.49")))
	assert.Equal(t, "0% Off", domain.DiscountLabel(decimal.Zero))
}
