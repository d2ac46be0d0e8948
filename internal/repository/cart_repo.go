// internal/repository/cart_repo.go
package repository

import (
	"context"

	"shopku-api/internal/domain"
)

// CartRepository defines the interface for cart data operations.
type CartRepository interface {
	// CreateCartItem inserts a new cart line.
	CreateCartItem(ctx context.Context, q DBExecutor, item *domain.CartItem) error
	// GetCartItemByID retrieves a cart line by its ID, with product data joined.
	GetCartItemByID(ctx context.Context, q DBExecutor, id int64) (*domain.CartItem, error)
	// GetCartItemByUserAndProduct retrieves the unique line for (user, product),
	// or util.ErrNotFound if the product is not in the user's cart.
	GetCartItemByUserAndProduct(ctx context.Context, q DBExecutor, userID, productID int64) (*domain.CartItem, error)
	// UpdateCartItemQuantity overwrites the quantity of an existing line.
	UpdateCartItemQuantity(ctx context.Context, q DBExecutor, id int64, quantity int) error
	// DeleteCartItem removes a line. Deleting an absent line is not an error.
	DeleteCartItem(ctx context.Context, q DBExecutor, id int64) error
	// ListCartByUser returns the user's lines joined with current product
	// data, most recently added first.
	ListCartByUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.CartItem, error)
}
