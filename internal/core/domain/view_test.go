package domain_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductCard(t *testing.T) {
	t.Run("SoldOutDiscounted", func(t *testing.T) {
		p := domain.Product{
			ID:                 1,
			Title:              "iPhone 9",
			Brand:              "Apple",
			Price:              dec("100"),
			DiscountPercentage: dec("20"),
			Stock:              0,
			Thumbnail:          "https://cdn.dummyjson.com/thumbnail.jpg",
		}

		card := domain.NewProductCard(p)

		assert.True(t, card.Price.Equal(dec("100")))
		assert.Equal(t, int64(80), card.DiscountedPrice)
		assert.Equal(t, "20% Off", card.DiscountLabel)
		assert.Equal(t, domain.SoldOut, card.Availability)
		assert.Equal(t, "Sold Out", card.Availability.Badge())
		assert.Equal(t, p.Thumbnail, card.Thumbnail)
	})

	t.Run("BadgeOnlyWhenOutOfStock", func(t *testing.T) {
		for _, stock := range []int{-1, 0, 1, 94} {
			card := domain.NewProductCard(domain.Product{
				Price: dec("10"), DiscountPercentage: dec("5"), Stock: stock,
			})
			assert.Equal(t, stock > 0, card.Availability.Badge() == "", "stock=%d", stock)
		}
	})
}

func TestNewProductListView(t *testing.T) {
	c := domain.ProductCollection{
		Products: productsOf("laptops", "beauty", "laptops"),
		Limit:    30,
	}
	for i := range c.Products {
		c.Products[i].Price = dec("10")
		c.Products[i].DiscountPercentage = dec("10")
		c.Products[i].Stock = i
	}

	t.Run("Unfiltered", func(t *testing.T) {
		v := domain.NewProductListView(c, domain.Unfiltered())
		assert.Len(t, v.Products, 3)
		assert.Equal(t, 30, v.Limit)
		assert.False(t, v.Filter.IsSelected())
		require.Len(t, v.Categories, 3)
		assert.Equal(t, "All", v.Categories[0].Label)
	})

	t.Run("ByCategoryKeepsAllOptions", func(t *testing.T) {
		v := domain.NewProductListView(c, domain.ByCategory("laptops"))
		require.Len(t, v.Products, 2)
		assert.Equal(t, 1, v.Products[0].ID)
		assert.Equal(t, 3, v.Products[1].ID)
		assert.Equal(t, domain.SoldOut, v.Products[0].Availability)
		assert.Equal(t, domain.Available, v.Products[1].Availability)
		assert.Len(t, v.Categories, 3)
	})

	t.Run("EmptyCollection", func(t *testing.T) {
		v := domain.NewProductListView(domain.ProductCollection{}, domain.Unfiltered())
		assert.Empty(t, v.Products)
		require.Len(t, v.Categories, 1)
		assert.True(t, v.Categories[0].Filter.IsAll())
	})
}

func TestNewProductDetailView(t *testing.T) {
	p := domain.Product{
		ID:                 7,
		Title:              "Samsung Universe 9",
		Brand:              "Samsung",
		Category:           "smartphones",
		Description:        "Samsung's new variant",
		Price:              dec("1249"),
		DiscountPercentage: dec("15.46"),
		Stock:              36,
		Rating:             4.09,
		Images:             []string{"1.jpg", "2.jpg"},
	}

	v := domain.NewProductDetailView(p)

	assert.Equal(t, 7, v.ID)
	assert.Equal(t, int64(1056), v.DiscountedPrice)
	assert.Equal(t, "15% Off", v.DiscountLabel)
	assert.Equal(t, domain.Available, v.Availability)
	assert.Equal(t, 36, v.Stock)
	assert.Equal(t, p.Images, v.Images)
	assert.Equal(t, "smartphones", v.Category)
}
