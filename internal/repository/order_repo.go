// internal/repository/order_repo.go
package repository

import (
	"context"
	"time"

	"shopku-api/internal/domain"
)

// OrderRepository defines the interface for order data operations.
type OrderRepository interface {
	// CreateOrder inserts the order header and sets order.ID.
	CreateOrder(ctx context.Context, q DBExecutor, order *domain.Order) error
	// CreateOrderItems inserts the given line items. Each item must carry
	// its OrderID.
	CreateOrderItems(ctx context.Context, q DBExecutor, items []domain.OrderItem) error
	// GetOrderByID retrieves an order header by its ID.
	GetOrderByID(ctx context.Context, q DBExecutor, id int64) (*domain.Order, error)
	// GetOrderByIDForUpdate is GetOrderByID with a row lock; it must run
	// inside a transaction.
	GetOrderByIDForUpdate(ctx context.Context, q DBExecutor, id int64) (*domain.Order, error)
	// GetOrderItems retrieves the line items of an order.
	GetOrderItems(ctx context.Context, q DBExecutor, orderID int64) ([]domain.OrderItem, error)
	// ListOrdersByUser retrieves a page of the user's orders, newest first,
	// along with the user's total order count.
	ListOrdersByUser(ctx context.Context, q DBExecutor, userID int64, limit, offset int) ([]domain.Order, int64, error)
	// UpdateOrderStatus sets the order's status and updated_at timestamp.
	UpdateOrderStatus(ctx context.Context, q DBExecutor, id int64, status domain.OrderStatus, updatedAt time.Time) error
	// DeleteOrder removes an order header and, through the cascade, its
	// line items.
	DeleteOrder(ctx context.Context, q DBExecutor, id int64) error
}
