package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const (
	landingTitle       = "Xpentra"
	landingLogoURL     = "https://www.q2pay.in/assets/landing/img/logo.png"
	landingActionLabel = "Click to View Product List"
)

// emitTimeout bounds a single browse event produce.
const emitTimeout = 500 * time.Millisecond

var _ port.Storefront = (*Service)(nil)

type Service struct {
	productsFetcher port.ProductsFetcher
	eventsProducer  port.BrowseEventsProducer
	now             func() time.Time
}

// New returns the storefront service. eventsProducer may be nil, browse
// events are not emitted then.
func New(
	productsFetcher port.ProductsFetcher,
	eventsProducer port.BrowseEventsProducer,
) Service {
	return Service{
		productsFetcher: productsFetcher,
		eventsProducer:  eventsProducer,
		now:             time.Now,
	}
}

func (s Service) Landing(context.Context) domain.LandingView {
	return domain.LandingView{
		Title:       landingTitle,
		LogoURL:     landingLogoURL,
		ActionLabel: landingActionLabel,
	}
}

func (s Service) ProductList(
	ctx context.Context, f domain.CategoryFilter,
) (domain.ProductListView, error) {
	const op = "Service.ProductList"

	if err := ctx.Err(); err != nil {
		return domain.ProductListView{}, fmt.Errorf("%s: %w", op, err)
	}

	c, err := s.productsFetcher.FetchProducts(ctx)
	if err != nil {
		return domain.ProductListView{}, fmt.Errorf("%s: %w", op, err)
	}

	v := domain.NewProductListView(c, f)

	category, _ := f.Category()
	s.emit(ctx, domain.BrowseEvent{
		Kind:     domain.ProductListViewed,
		Category: category,
		Filter:   f,
		Results:  len(v.Products),
	})

	return v, nil
}

func (s Service) ProductDetails(
	ctx context.Context, id int,
) (domain.ProductDetailView, error) {
	const op = "Service.ProductDetails"

	if err := ctx.Err(); err != nil {
		return domain.ProductDetailView{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.productsFetcher.FetchProduct(ctx, id)
	if err != nil {
		return domain.ProductDetailView{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.BrowseEvent{
		Kind:      domain.ProductViewed,
		ProductID: p.ID,
		Category:  p.Category,
		Results:   1,
	})

	return domain.NewProductDetailView(p), nil
}

func (s Service) emit(ctx context.Context, e domain.BrowseEvent) {
	const op = "Service.emit"

	if s.eventsProducer == nil {
		return
	}

	e.ID = uuid.NewString()
	e.OccurredAt = s.now().UTC()

	ctx, cancel := context.WithTimeout(ctx, emitTimeout)
	defer cancel()

	err := s.eventsProducer.ProduceBrowseEvent(ctx, e)
	if err != nil {
		log := slog.With("op", op)
		log.Warn("failed to produce browse event", "kind", e.Kind, "err", err)
	}
}
