package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET / (200 OK)
// GET v1/products?category=name | ?all=true (200 OK, empty view on upstream failure)
// GET v1/products/{id} (200 OK, 400 Bad request, empty view on upstream failure)

const (
	queryCategory = "category"
	queryAll      = "all"
)

var errConflictingFilter = errors.New("all and category are mutually exclusive")

type StorefrontHandler struct {
	storefront port.Storefront
}

func RegisterStorefront(mux *http.ServeMux, storefront port.Storefront) {
	h := StorefrontHandler{storefront}
	mux.HandleFunc("GET /{$}", h.GetLanding)
	mux.HandleFunc("GET "+productsPath, h.GetProducts)
	mux.HandleFunc("GET "+productsPath+"/{id}", h.GetProduct)
}

func (h StorefrontHandler) GetLanding(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetLanding"
	log := slog.With("op", op)

	v := h.storefront.Landing(r.Context())
	writeJSON(log, w, http.StatusOK, toLandingView(v))
}

func (h StorefrontHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetProducts"
	log := slog.With("op", op)

	f, err := parseFilter(r)
	if err != nil {
		http.Error(w, "invalid filter", http.StatusBadRequest)
		log.Warn("failed to parse filter", "err", err)
		return
	}

	v, err := h.storefront.ProductList(r.Context(), f)
	if err != nil {
		log.Error("failed to fetch products", "filter", f.String(), "err", err)
		writeJSON(log, w, http.StatusOK, emptyProductListView())
		return
	}

	writeJSON(log, w, http.StatusOK, toProductListView(v))
	log.Info("served", "filter", f.String(), "nProducts", len(v.Products))
}

func (h StorefrontHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetProduct"
	log := slog.With("op", op)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		log.Warn("invalid product id", "id", r.PathValue("id"))
		return
	}

	v, err := h.storefront.ProductDetails(r.Context(), id)
	if err != nil {
		log.Error("failed to fetch product", "id", id, "err", err)
		writeJSON(log, w, http.StatusOK, emptyProductDetailView())
		return
	}

	writeJSON(log, w, http.StatusOK, toProductDetailView(v))
	log.Info("served", "id", id)
}

// parseFilter maps ?category=name to [domain.ByCategory] and ?all=true to
// [domain.AllCategories]. Without either the list stays unfiltered.
func parseFilter(r *http.Request) (domain.CategoryFilter, error) {
	q := r.URL.Query()
	f := domain.Unfiltered()

	if q.Has(queryAll) {
		all, err := strconv.ParseBool(q.Get(queryAll))
		if err != nil {
			return domain.Unfiltered(), err
		}
		if all {
			f = f.Select(domain.AllCategories())
		}
	}

	if q.Has(queryCategory) {
		if f.IsAll() {
			return domain.Unfiltered(), errConflictingFilter
		}
		f = f.Select(domain.ByCategory(q.Get(queryCategory)))
	}

	return f, nil
}

func writeJSON(log *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
