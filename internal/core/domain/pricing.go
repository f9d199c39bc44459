package domain

import "github.com/shopspring/decimal"

// DiscountedPrice returns price - price*discountPercentage/100.
//
// The result is exact and not rounded, use [DisplayPrice] for rendering.
// Inputs are not validated.
func DiscountedPrice(price, discountPercentage decimal.Decimal) decimal.Decimal {
	discount := price.Mul(discountPercentage).Shift(-2)
	return price.Sub(discount)
}

// DisplayPrice rounds half away from zero to a whole amount.
func DisplayPrice(price decimal.Decimal) int64 {
	return price.Round(0).IntPart()
}

// DiscountLabel renders the badge text shown over a product, e.g. "20% Off".
func DiscountLabel(discountPercentage decimal.Decimal) string {
	return discountPercentage.Round(0).String() + "% Off"
}
