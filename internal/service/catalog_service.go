// internal/service/catalog_service.go
package service

import (
	"context"
	"fmt"

	"shopku-api/internal/domain"
	"shopku-api/internal/repository"
	"shopku-api/internal/util"
)

// CatalogService defines the read-only interface over the product catalog.
type CatalogService interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

// catalogService implements the CatalogService interface.
type catalogService struct {
	dbExecutor  repository.DBExecutor
	productRepo repository.ProductRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(dbExecutor repository.DBExecutor, productRepo repository.ProductRepository) CatalogService {
	return &catalogService{
		dbExecutor:  dbExecutor,
		productRepo: productRepo,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, s.dbExecutor, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, util.ErrInvalidInput
	}
	product, err := s.productRepo.GetProductByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: failed to get product %d: %w", id, err)
	}
	return product, nil
}
