// internal/service/order_builder.go
package service

import (
	"github.com/shopspring/decimal"

	"shopku-api/internal/domain"
	"shopku-api/internal/util"
)

// OrderItemInput is one requested order line as supplied by the caller.
// Price and Name are snapshots of what the caller saw in the catalog; the
// builder validates their shape but does not re-derive them.
type OrderItemInput struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Name      string          `json:"name"`
}

// orderDraft is the validated, priced result of buildOrder, ready to be
// persisted.
type orderDraft struct {
	paymentMethod string
	total         decimal.Decimal
	items         []domain.OrderItem
}

// buildOrder validates the requested item list, normalizes the payment
// method label and computes the order total. It is pure: no entry may fail
// validation, otherwise the whole call fails with ErrInvalidPayload and
// nothing is accepted.
func buildOrder(paymentMethodRaw string, inputs []OrderItemInput) (*orderDraft, error) {
	if len(inputs) == 0 {
		return nil, util.ErrInvalidPayload
	}

	draft := &orderDraft{
		paymentMethod: domain.NormalizePaymentMethod(paymentMethodRaw),
		total:         decimal.Zero,
		items:         make([]domain.OrderItem, 0, len(inputs)),
	}

	for _, in := range inputs {
		if in.ProductID <= 0 || in.Quantity <= 0 || !in.Price.IsPositive() || in.Name == "" {
			return nil, util.ErrInvalidPayload
		}
		item := domain.OrderItem{
			ProductID:       in.ProductID,
			Quantity:        in.Quantity,
			PriceAtPurchase: in.Price,
			NameSnapshot:    in.Name,
		}
		draft.total = draft.total.Add(item.Subtotal())
		draft.items = append(draft.items, item)
	}

	return draft, nil
}
