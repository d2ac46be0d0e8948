// internal/domain/cart.go
package domain

import "time"

// CartItem is one (user, product) line in a cart. A product appears at most
// once per user; adding it again increments Quantity instead.
type CartItem struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ProductID int64     `db:"product_id" json:"product_id"`
	Quantity  int       `db:"quantity" json:"quantity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	// Product is populated on reads that join the catalog.
	Product Product `db:"product" json:"product"`
}

// NewCartItem creates a new CartItem instance.
func NewCartItem(userID, productID int64, quantity int) *CartItem {
	now := time.Now().UTC()
	return &CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
