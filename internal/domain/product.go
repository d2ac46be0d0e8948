// internal/domain/product.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. The order workflow treats products as
// read-only; prices on historical orders come from snapshots, not from here.
type Product struct {
	ID        int64           `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Stock     int             `db:"stock" json:"stock"`
	Category  string          `db:"category" json:"category"`
	Rating    float64         `db:"rating" json:"rating"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// Sort options accepted by the product listing.
const (
	ProductSortPriceAsc   = "price_asc"
	ProductSortPriceDesc  = "price_desc"
	ProductSortRatingDesc = "rating_desc"
)

// ProductFilter narrows and orders a product listing. Nil/empty fields are
// not applied.
type ProductFilter struct {
	Query     string
	Category  string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	MinRating *float64
	Sort      string
}
