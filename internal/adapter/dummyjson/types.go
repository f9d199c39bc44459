package dummyjson

import (
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

type (
	product struct {
		ID                 int             `json:"id"`
		Title              string          `json:"title"`
		Description        string          `json:"description"`
		Price              decimal.Decimal `json:"price"`
		DiscountPercentage decimal.Decimal `json:"discountPercentage"`
		Rating             float64         `json:"rating"`
		Stock              int             `json:"stock"`
		Brand              string          `json:"brand"`
		Category           string          `json:"category"`
		Thumbnail          string          `json:"thumbnail"`
		Images             []string        `json:"images"`
	}

	productCollection struct {
		Products []product `json:"products"`
		Limit    int       `json:"limit"`
	}
)

func (p product) toDomain() domain.Product {
	return domain.Product{
		ID:                 p.ID,
		Title:              p.Title,
		Brand:              p.Brand,
		Category:           p.Category,
		Description:        p.Description,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Stock:              p.Stock,
		Rating:             p.Rating,
		Images:             p.Images,
		Thumbnail:          p.Thumbnail,
	}
}

func (c productCollection) toDomain() domain.ProductCollection {
	ps := make([]domain.Product, len(c.Products))
	for i := range c.Products {
		ps[i] = c.Products[i].toDomain()
	}
	return domain.ProductCollection{Products: ps, Limit: c.Limit}
}
