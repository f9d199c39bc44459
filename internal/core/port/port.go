package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

type ProductsFetcher interface {
	FetchProducts(context.Context) (domain.ProductCollection, error)
	FetchProduct(ctx context.Context, id int) (domain.Product, error)
}

type BrowseEventsProducer interface {
	ProduceBrowseEvent(context.Context, domain.BrowseEvent) error
}

type Storefront interface {
	Landing(context.Context) domain.LandingView
	ProductList(context.Context, domain.CategoryFilter) (domain.ProductListView, error)
	ProductDetails(ctx context.Context, id int) (domain.ProductDetailView, error)
}
