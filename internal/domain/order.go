// internal/domain/order.go
package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus defines the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Payment method labels. PaymentMethodWallet is the platform's internal
// balance; everything else is an externally-custodied label settled later.
const (
	PaymentMethodWallet     = "SHOPKUPAY"
	PaymentMethodUnselected = "UNSELECTED"
)

// NormalizePaymentMethod maps a free-form payment method label to its
// canonical form: trimmed, uppercased, every whitespace rune replaced with
// an underscore. A blank label becomes PaymentMethodUnselected.
func NormalizePaymentMethod(raw string) string {
	m := strings.TrimSpace(raw)
	if m == "" {
		return PaymentMethodUnselected
	}
	m = strings.ToUpper(m)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, m)
}

// Order is a checkout's durable record. After creation only Status and
// UpdatedAt change; Total and the items are immutable.
type Order struct {
	ID            int64           `db:"id" json:"id"`
	OrderRef      string          `db:"order_ref" json:"order_ref"` // public reference
	UserID        int64           `db:"user_id" json:"user_id"`
	PaymentMethod string          `db:"payment_method" json:"payment_method"`
	Status        OrderStatus     `db:"status" json:"status"`
	Total         decimal.Decimal `db:"total" json:"total"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`

	Items []OrderItem `db:"-" json:"items"`
}

// OrderItem is one immutable line of an order. PriceAtPurchase and
// NameSnapshot are copied at creation time so later catalog edits do not
// rewrite history; ProductID is a plain reference, not a foreign key.
type OrderItem struct {
	ID              int64           `db:"id" json:"id"`
	OrderID         int64           `db:"order_id" json:"order_id"`
	ProductID       int64           `db:"product_id" json:"product_id"`
	Quantity        int64           `db:"quantity" json:"quantity"`
	PriceAtPurchase decimal.Decimal `db:"price_at_purchase" json:"price_at_purchase"`
	NameSnapshot    string          `db:"name_snapshot" json:"name_snapshot"`
}

// NewOrder creates a new Order instance with a freshly minted public
// reference. paymentMethod must already be normalized.
func NewOrder(userID int64, paymentMethod string, status OrderStatus, total decimal.Decimal) *Order {
	now := time.Now().UTC()
	return &Order{
		OrderRef:      uuid.NewString(),
		UserID:        userID,
		PaymentMethod: paymentMethod,
		Status:        status,
		Total:         total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Subtotal returns PriceAtPurchase * Quantity for the line.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.PriceAtPurchase.Mul(decimal.NewFromInt(i.Quantity))
}
