// internal/repository/postgres/cart_pg.go
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

// cartSelectColumns joins the catalog so callers always see current product
// data next to the line. The "product.*" aliases map onto the embedded
// Product struct via sqlx.
const cartSelectColumns = `
	c.id, c.user_id, c.product_id, c.quantity, c.created_at, c.updated_at,
	p.id AS "product.id", p.name AS "product.name", p.price AS "product.price",
	p.stock AS "product.stock", p.category AS "product.category",
	p.rating AS "product.rating", p.created_at AS "product.created_at"`

// CartRepository implements repository.CartRepository for PostgreSQL.
type CartRepository struct{}

// NewCartRepository creates a new CartRepository.
func NewCartRepository(db *sqlx.DB) repository.CartRepository {
	return &CartRepository{}
}

// CreateCartItem inserts a new cart line using the provided DBExecutor.
func (r *CartRepository) CreateCartItem(ctx context.Context, q repository.DBExecutor, item *domain.CartItem) error {
	query := `INSERT INTO cart_items (user_id, product_id, quantity, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query, item.UserID, item.ProductID, item.Quantity, item.CreatedAt, item.UpdatedAt).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// GetCartItemByID retrieves a cart line with product data joined.
func (r *CartRepository) GetCartItemByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.CartItem, error) {
	var item domain.CartItem
	query := `SELECT ` + cartSelectColumns + `
              FROM cart_items c JOIN products p ON p.id = c.product_id
              WHERE c.id = $1`
	err := q.GetContext(ctx, &item, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart item by ID %d: %w", id, err)
	}
	return &item, nil
}

// GetCartItemByUserAndProduct retrieves the unique line for (user, product).
func (r *CartRepository) GetCartItemByUserAndProduct(ctx context.Context, q repository.DBExecutor, userID, productID int64) (*domain.CartItem, error) {
	var item domain.CartItem
	query := `SELECT id, user_id, product_id, quantity, created_at, updated_at
              FROM cart_items WHERE user_id = $1 AND product_id = $2`
	err := q.GetContext(ctx, &item, query, userID, productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart item for user %d, product %d: %w", userID, productID, err)
	}
	return &item, nil
}

// UpdateCartItemQuantity overwrites the quantity of an existing line.
func (r *CartRepository) UpdateCartItemQuantity(ctx context.Context, q repository.DBExecutor, id int64, quantity int) error {
	query := `UPDATE cart_items SET quantity = $1, updated_at = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, quantity, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update cart item %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating cart item %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteCartItem removes a line. Deleting an absent line is not an error.
func (r *CartRepository) DeleteCartItem(ctx context.Context, q repository.DBExecutor, id int64) error {
	query := `DELETE FROM cart_items WHERE id = $1`
	if _, err := q.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete cart item %d: %w", id, err)
	}
	return nil
}

// ListCartByUser returns the user's lines, most recently added first.
func (r *CartRepository) ListCartByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.CartItem, error) {
	items := []domain.CartItem{}
	query := `SELECT ` + cartSelectColumns + `
              FROM cart_items c JOIN products p ON p.id = c.product_id
              WHERE c.user_id = $1
              ORDER BY c.created_at DESC`
	if err := q.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list cart for user %d: %w", userID, err)
	}
	return items, nil
}
