// internal/repository/product_repo.go
package repository

import (
	"context"

	"shopku-api/internal/domain"
)

// ProductRepository defines the read-only interface for catalog data.
type ProductRepository interface {
	// GetProductByID retrieves a product by its ID using the provided DBExecutor.
	GetProductByID(ctx context.Context, q DBExecutor, id int64) (*domain.Product, error)
	// ListProducts retrieves products matching the filter, in the filter's
	// sort order.
	ListProducts(ctx context.Context, q DBExecutor, filter domain.ProductFilter) ([]domain.Product, error)
}
