// internal/api/handler/cart.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"shopku-api/internal/api/types"
	"shopku-api/internal/service"
	"shopku-api/internal/util"
)

// CartHandler handles cart requests for the authenticated user.
type CartHandler struct {
	service service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(svc service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{service: svc, logger: logger}
}

// List handles the cart listing request.
// GET /cart
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	items, err := h.service.ListCart(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Response{Success: true, Data: items})
}

// AddRequest represents the request body for adding a product to the cart.
type AddRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  *int  `json:"quantity"` // omitted means 1
}

// Add handles the add-to-cart request. Adding a product already in the cart
// increments its quantity.
// POST /cart
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if req.ProductID == 0 {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item, err := h.service.AddItem(r.Context(), userID, req.ProductID, quantity)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Response{
		Success: true,
		Data:    item,
		Message: "Added to cart",
	})
}

// UpdateRequest represents the request body for a quantity update.
type UpdateRequest struct {
	CartID   int64 `json:"cart_id"`
	Quantity *int  `json:"quantity"`
}

// Update handles the quantity update request. A quantity of zero or less
// removes the line.
// PUT /cart
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserIDFromContext(r.Context()); !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	if req.CartID == 0 || req.Quantity == nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	item, removed, err := h.service.UpdateQuantity(r.Context(), req.CartID, *req.Quantity)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	if removed {
		respondWithJSON(h.logger, w, http.StatusOK, types.Response{
			Success: true,
			Message: "Item removed from cart",
		})
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Response{
		Success: true,
		Data:    item,
		Message: "Quantity updated",
	})
}

// Delete handles the cart line removal request. The delete is idempotent.
// DELETE /cart?cart_id=
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserIDFromContext(r.Context()); !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	cartID, err := strconv.ParseInt(r.URL.Query().Get("cart_id"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	if err := h.service.RemoveItem(r.Context(), cartID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Response{
		Success: true,
		Message: "Item removed from cart",
	})
}
