// internal/api/handler/product.go
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"shopku-api/internal/api/types"
	"shopku-api/internal/domain"
	"shopku-api/internal/service"
	"shopku-api/internal/util"
)

// ProductHandler handles catalog browsing requests.
type ProductHandler struct {
	service service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{service: svc, logger: logger}
}

// List handles the filtered product listing request.
// GET /products?q=&category=&min=&max=&rating=&sort=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	filter := domain.ProductFilter{
		Query:    params.Get("q"),
		Category: params.Get("category"),
		Sort:     params.Get("sort"),
	}
	if v := params.Get("min"); v != "" {
		if min, err := decimal.NewFromString(v); err == nil {
			filter.MinPrice = &min
		}
	}
	if v := params.Get("max"); v != "" {
		if max, err := decimal.NewFromString(v); err == nil {
			filter.MaxPrice = &max
		}
	}
	if v := params.Get("rating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = &rating
		}
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Response{Success: true, Data: products})
}

// Get handles the single product request.
// GET /products/{productID}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Response{Success: true, Data: product})
}
