// internal/repository/postgres/product_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"shopku-api/internal/domain"
	"shopku-api/internal/repository"
	"shopku-api/internal/util"
)

// ProductRepository implements repository.ProductRepository for PostgreSQL.
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) repository.ProductRepository {
	return &ProductRepository{}
}

// GetProductByID retrieves a product by its ID using the provided DBExecutor.
func (r *ProductRepository) GetProductByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Product, error) {
	var product domain.Product
	query := `SELECT id, name, price, stock, category, rating, created_at FROM products WHERE id = $1`
	err := q.GetContext(ctx, &product, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// ListProducts retrieves products matching the filter.
func (r *ProductRepository) ListProducts(ctx context.Context, q repository.DBExecutor, filter domain.ProductFilter) ([]domain.Product, error) {
	var (
		conditions []string
		args       []interface{}
	)

	addArg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Query != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE %s", addArg("%"+filter.Query+"%")))
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = %s", addArg(filter.Category)))
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price >= %s", addArg(*filter.MinPrice)))
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price <= %s", addArg(*filter.MaxPrice)))
	}
	if filter.MinRating != nil {
		conditions = append(conditions, fmt.Sprintf("rating >= %s", addArg(*filter.MinRating)))
	}

	query := `SELECT id, name, price, stock, category, rating, created_at FROM products`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	switch filter.Sort {
	case domain.ProductSortPriceAsc:
		query += " ORDER BY price ASC"
	case domain.ProductSortPriceDesc:
		query += " ORDER BY price DESC"
	case domain.ProductSortRatingDesc:
		query += " ORDER BY rating DESC"
	default:
		query += " ORDER BY id ASC"
	}

	products := []domain.Product{}
	if err := q.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
