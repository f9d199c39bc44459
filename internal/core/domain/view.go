package domain

import "github.com/shopspring/decimal"

type (
	LandingView struct {
		Title       string
		LogoURL     string
		ActionLabel string
	}

	ProductCard struct {
		ID              int
		Brand           string
		Title           string
		Thumbnail       string
		Price           decimal.Decimal
		DiscountedPrice int64
		DiscountLabel   string
		Availability    Availability
	}

	ProductListView struct {
		Categories []CategoryOption
		Filter     CategoryFilter
		Products   []ProductCard
		Limit      int
	}

	ProductDetailView struct {
		ID              int
		Title           string
		Brand           string
		Category        string
		Description     string
		Images          []string
		Price           decimal.Decimal
		DiscountedPrice int64
		DiscountLabel   string
		Rating          float64
		Stock           int
		Availability    Availability
	}
)

func NewProductCard(p Product) ProductCard {
	return ProductCard{
		ID:              p.ID,
		Brand:           p.Brand,
		Title:           p.Title,
		Thumbnail:       p.Thumbnail,
		Price:           p.Price,
		DiscountedPrice: DisplayPrice(DiscountedPrice(p.Price, p.DiscountPercentage)),
		DiscountLabel:   DiscountLabel(p.DiscountPercentage),
		Availability:    ClassifyAvailability(p.Stock),
	}
}

// NewProductListView derives the dropdown from the whole collection and the
// cards from the filtered subset.
func NewProductListView(c ProductCollection, f CategoryFilter) ProductListView {
	filtered := FilterByCategory(c.Products, f)
	cards := make([]ProductCard, len(filtered))
	for i, p := range filtered {
		cards[i] = NewProductCard(p)
	}
	return ProductListView{
		Categories: CategoryOptions(c.Products),
		Filter:     f,
		Products:   cards,
		Limit:      c.Limit,
	}
}

func NewProductDetailView(p Product) ProductDetailView {
	return ProductDetailView{
		ID:              p.ID,
		Title:           p.Title,
		Brand:           p.Brand,
		Category:        p.Category,
		Description:     p.Description,
		Images:          p.Images,
		Price:           p.Price,
		DiscountedPrice: DisplayPrice(DiscountedPrice(p.Price, p.DiscountPercentage)),
		DiscountLabel:   DiscountLabel(p.DiscountPercentage),
		Rating:          p.Rating,
		Stock:           p.Stock,
		Availability:    ClassifyAvailability(p.Stock),
	}
}
