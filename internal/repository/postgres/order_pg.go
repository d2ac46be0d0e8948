// internal/repository/postgres/order_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"shopku-api/internal/domain"
	"shopku-api/internal/repository"
	"shopku-api/internal/util"
)

const orderColumns = `id, order_ref, user_id, payment_method, status, total, created_at, updated_at`

// OrderRepository implements repository.OrderRepository for PostgreSQL.
type OrderRepository struct{}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) repository.OrderRepository {
	return &OrderRepository{}
}

// CreateOrder inserts the order header using the provided DBExecutor.
func (r *OrderRepository) CreateOrder(ctx context.Context, q repository.DBExecutor, order *domain.Order) error {
	query := `INSERT INTO orders (order_ref, user_id, payment_method, status, total, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		order.OrderRef,
		order.UserID,
		order.PaymentMethod,
		order.Status,
		order.Total,
		order.CreatedAt,
		order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// CreateOrderItems inserts the order's line items.
func (r *OrderRepository) CreateOrderItems(ctx context.Context, q repository.DBExecutor, items []domain.OrderItem) error {
	query := `INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase, name_snapshot)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	for i := range items {
		item := &items[i]
		err := q.QueryRowContext(ctx, query,
			item.OrderID,
			item.ProductID,
			item.Quantity,
			item.PriceAtPurchase,
			item.NameSnapshot,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to create order item for order %d: %w", item.OrderID, err)
		}
	}
	return nil
}

// GetOrderByID retrieves an order header by its ID.
func (r *OrderRepository) GetOrderByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Order, error) {
	return r.getOrder(ctx, q, id, false)
}

// GetOrderByIDForUpdate retrieves an order header with a row lock. Must run
// inside a transaction.
func (r *OrderRepository) GetOrderByIDForUpdate(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Order, error) {
	return r.getOrder(ctx, q, id, true)
}

func (r *OrderRepository) getOrder(ctx context.Context, q repository.DBExecutor, id int64, forUpdate bool) (*domain.Order, error) {
	var order domain.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	err := q.GetContext(ctx, &order, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, err)
	}
	return &order, nil
}

// GetOrderItems retrieves the line items of an order.
func (r *OrderRepository) GetOrderItems(ctx context.Context, q repository.DBExecutor, orderID int64) ([]domain.OrderItem, error) {
	items := []domain.OrderItem{}
	query := `SELECT id, order_id, product_id, quantity, price_at_purchase, name_snapshot
              FROM order_items WHERE order_id = $1 ORDER BY id ASC`
	if err := q.SelectContext(ctx, &items, query, orderID); err != nil {
		return nil, fmt.Errorf("failed to get items for order %d: %w", orderID, err)
	}
	return items, nil
}

// ListOrdersByUser retrieves a page of the user's orders, newest first,
// together with the total count for pagination.
func (r *OrderRepository) ListOrdersByUser(ctx context.Context, q repository.DBExecutor, userID int64, limit, offset int) ([]domain.Order, int64, error) {
	orders := []domain.Order{}
	query := `SELECT ` + orderColumns + ` FROM orders
              WHERE user_id = $1
              ORDER BY created_at DESC
              LIMIT $2 OFFSET $3`
	if err := q.SelectContext(ctx, &orders, query, userID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list orders for user %d: %w", userID, err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM orders WHERE user_id = $1`
	if err := q.GetContext(ctx, &totalCount, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders for user %d: %w", userID, err)
	}

	return orders, totalCount, nil
}

// UpdateOrderStatus sets the order's status and updated_at timestamp.
func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, q repository.DBExecutor, id int64, status domain.OrderStatus, updatedAt time.Time) error {
	query := `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, status, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update status of order %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating order %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteOrder removes an order header.
func (r *OrderRepository) DeleteOrder(ctx context.Context, q repository.DBExecutor, id int64) error {
	query := `DELETE FROM orders WHERE id = $1`
	if _, err := q.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	return nil
}
