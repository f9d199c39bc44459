package domain

import "github.com/shopspring/decimal"

type (
	Product struct {
		ID                 int
		Title              string
		Brand              string
		Category           string
		Description        string
		Price              decimal.Decimal
		DiscountPercentage decimal.Decimal
		Stock              int
		Rating             float64
		Images             []string
		Thumbnail          string
	}

	// ProductCollection is the upstream list payload. Limit is passed
	// through to the views as is.
	ProductCollection struct {
		Products []Product
		Limit    int
	}
)
