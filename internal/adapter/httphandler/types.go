package httphandler

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
)

const (
	landingPath  = "/"
	productsPath = "/v1/products"
)

type (
	LandingView struct {
		Title   string `json:"title"`
		LogoURL string `json:"logo_url"`
		Action  Link   `json:"action"`
	}

	Link struct {
		Label string `json:"label"`
		Href  string `json:"href"`
	}

	CategoryOption struct {
		Label    string `json:"label"`
		Href     string `json:"href"`
		Selected bool   `json:"selected"`
	}

	Filter struct {
		Selected bool   `json:"selected"`
		All      bool   `json:"all"`
		Category string `json:"category,omitempty"`
	}

	ProductCard struct {
		ID              int         `json:"id"`
		Brand           string      `json:"brand"`
		Title           string      `json:"title"`
		Thumbnail       string      `json:"thumbnail"`
		Price           json.Number `json:"price"`
		DiscountedPrice int64       `json:"discounted_price"`
		DiscountLabel   string      `json:"discount_label"`
		Availability    string      `json:"availability"`
		Badge           string      `json:"badge"`
		Details         Link        `json:"details"`
	}

	ProductListView struct {
		Loading    bool             `json:"loading"`
		Back       Link             `json:"back"`
		Categories []CategoryOption `json:"categories"`
		Filter     Filter           `json:"filter"`
		Products   []ProductCard    `json:"products"`
		Limit      int              `json:"limit"`
	}

	ProductDetail struct {
		ID              int         `json:"id"`
		Title           string      `json:"title"`
		Brand           string      `json:"brand"`
		Category        string      `json:"category"`
		Description     string      `json:"description"`
		Images          []string    `json:"images"`
		Price           json.Number `json:"price"`
		DiscountedPrice int64       `json:"discounted_price"`
		DiscountLabel   string      `json:"discount_label"`
		Rating          float64     `json:"rating"`
		Stock           int         `json:"stock"`
		Availability    string      `json:"availability"`
		Badge           string      `json:"badge"`
	}

	ProductDetailView struct {
		Loading bool           `json:"loading"`
		Back    Link           `json:"back"`
		Product *ProductDetail `json:"product"`
	}
)

func toLandingView(v domain.LandingView) LandingView {
	return LandingView{
		Title:   v.Title,
		LogoURL: v.LogoURL,
		Action:  Link{Label: v.ActionLabel, Href: productsPath},
	}
}

func toProductListView(v domain.ProductListView) ProductListView {
	categories := make([]CategoryOption, len(v.Categories))
	for i, o := range v.Categories {
		categories[i] = CategoryOption{
			Label:    o.Label,
			Href:     filterHref(o.Filter),
			Selected: o.Filter == v.Filter,
		}
	}

	products := make([]ProductCard, len(v.Products))
	for i, c := range v.Products {
		products[i] = ProductCard{
			ID:              c.ID,
			Brand:           c.Brand,
			Title:           c.Title,
			Thumbnail:       c.Thumbnail,
			Price:           json.Number(c.Price.String()),
			DiscountedPrice: c.DiscountedPrice,
			DiscountLabel:   c.DiscountLabel,
			Availability:    c.Availability.String(),
			Badge:           c.Availability.Badge(),
			Details: Link{
				Label: "View Product Details",
				Href:  productHref(c.ID),
			},
		}
	}

	category, _ := v.Filter.Category()
	return ProductListView{
		Back:       Link{Label: "Go Back", Href: landingPath},
		Categories: categories,
		Filter: Filter{
			Selected: v.Filter.IsSelected(),
			All:      v.Filter.IsAll(),
			Category: category,
		},
		Products: products,
		Limit:    v.Limit,
	}
}

func toProductDetailView(v domain.ProductDetailView) ProductDetailView {
	return ProductDetailView{
		Back: Link{Label: "Go Back", Href: productsPath},
		Product: &ProductDetail{
			ID:              v.ID,
			Title:           v.Title,
			Brand:           v.Brand,
			Category:        v.Category,
			Description:     v.Description,
			Images:          v.Images,
			Price:           json.Number(v.Price.String()),
			DiscountedPrice: v.DiscountedPrice,
			DiscountLabel:   v.DiscountLabel,
			Rating:          v.Rating,
			Stock:           v.Stock,
			Availability:    v.Availability.String(),
			Badge:           v.Availability.Badge(),
		},
	}
}

// emptyProductListView is rendered when the catalog could not be fetched.
func emptyProductListView() ProductListView {
	return toProductListView(
		domain.NewProductListView(domain.ProductCollection{}, domain.Unfiltered()),
	)
}

func emptyProductDetailView() ProductDetailView {
	return ProductDetailView{Back: Link{Label: "Go Back", Href: productsPath}}
}

func filterHref(f domain.CategoryFilter) string {
	q := make(url.Values)
	if f.IsAll() {
		q.Set(queryAll, "true")
	}
	if name, ok := f.Category(); ok {
		q.Set(queryCategory, name)
	}
	if len(q) == 0 {
		return productsPath
	}
	return productsPath + "?" + q.Encode()
}

func productHref(id int) string {
	return productsPath + "/" + strconv.Itoa(id)
}
