// internal/api/handler/order.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"shopku-api/internal/api/types"
	"shopku-api/internal/domain"
	"shopku-api/internal/service"
	"shopku-api/internal/util"
)

// OrderHandler handles checkout, order reads and payment settlement for the
// authenticated user.
type OrderHandler struct {
	service service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{service: svc, logger: logger}
}

// CreateOrderRequest represents the checkout request body.
type CreateOrderRequest struct {
	PaymentMethod string                   `json:"payment_method"`
	Items         []service.OrderItemInput `json:"items"`
}

// Create handles the checkout request.
// POST /orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidPayload)
		return
	}

	order, err := h.service.Checkout(r.Context(), userID, req.PaymentMethod, req.Items)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, types.Response{Success: true, Data: order})
}

// List handles the paginated order listing request.
// GET /orders?limit=&offset=
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	orders, totalCount, err := h.service.ListOrders(r.Context(), userID, limit, offset)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.PaginatedResponse[domain.Order]{
		Success:    true,
		Data:       orders,
		Limit:      limit,
		Offset:     offset,
		TotalCount: totalCount,
	})
}

// Get handles the single order request. Orders owned by other users are
// reported as not found.
// GET /orders/{orderID}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	order, err := h.service.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Response{Success: true, Data: order})
}

// Pay handles the payment settlement request. Settling an already-paid
// order returns the order unchanged.
// POST /orders/{orderID}/pay
func (h *OrderHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrUnauthorized)
		return
	}

	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	order, err := h.service.Settle(r.Context(), userID, orderID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.Response{Success: true, Data: order})
}
