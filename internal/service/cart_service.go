// internal/service/cart_service.go
package service

import (
	"context"
	"fmt"

	"shopku-api/internal/domain"
	"shopku-api/internal/repository"
	"shopku-api/internal/util"
	"shopku-api/pkg/db"
)

// CartService defines the interface for cart business logic.
type CartService interface {
	// AddItem adds a product to the user's cart, or increments the
	// existing line's quantity if the product is already there.
	AddItem(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error)
	// UpdateQuantity overwrites a line's quantity. A quantity <= 0 deletes
	// the line; the returned bool reports whether that happened.
	UpdateQuantity(ctx context.Context, cartItemID int64, quantity int) (*domain.CartItem, bool, error)
	// RemoveItem deletes a line unconditionally. Removing an absent line
	// is not an error.
	RemoveItem(ctx context.Context, cartItemID int64) error
	// ListCart returns the user's lines with current product data, most
	// recently added first.
	ListCart(ctx context.Context, userID int64) ([]domain.CartItem, error)
}

// cartService implements the CartService interface.
type cartService struct {
	dbBeginner  db.DBTxBeginner
	dbExecutor  repository.DBExecutor
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	beginTx     db.BeginTxFunc
	commitTx    db.CommitTxFunc
	rollbackTx  db.RollbackTxFunc
}

// NewCartService creates a new instance of CartService.
func NewCartService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) CartService {
	return &cartService{
		dbBeginner:  dbBeginner,
		dbExecutor:  dbExecutor,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		beginTx:     beginTx,
		commitTx:    commitTx,
		rollbackTx:  rollbackTx,
	}
}

// AddItem adds a product to the cart or increments the existing line. The
// product must exist in the catalog; stock is not enforced here.
func (s *cartService) AddItem(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error) {
	if userID <= 0 || productID <= 0 || quantity <= 0 {
		return nil, util.ErrInvalidInput
	}

	if _, err := s.productRepo.GetProductByID(ctx, s.dbExecutor, productID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrProductNotFound
		}
		return nil, fmt.Errorf("add item: failed to check product %d: %w", productID, err)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("add item: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("add item: transaction controller does not implement DBExecutor")
	}

	var itemID int64
	existing, err := s.cartRepo.GetCartItemByUserAndProduct(ctx, txExecutor, userID, productID)
	switch {
	case err == nil:
		if err := s.cartRepo.UpdateCartItemQuantity(ctx, txExecutor, existing.ID, existing.Quantity+quantity); err != nil {
			return nil, fmt.Errorf("add item: failed to increment cart item %d: %w", existing.ID, err)
		}
		itemID = existing.ID
	case util.IsError(err, util.ErrNotFound):
		item := domain.NewCartItem(userID, productID, quantity)
		if err := s.cartRepo.CreateCartItem(ctx, txExecutor, item); err != nil {
			return nil, fmt.Errorf("add item: failed to create cart item: %w", err)
		}
		itemID = item.ID
	default:
		return nil, fmt.Errorf("add item: failed to look up cart line: %w", err)
	}

	updated, err := s.cartRepo.GetCartItemByID(ctx, txExecutor, itemID)
	if err != nil {
		return nil, fmt.Errorf("add item: failed to re-fetch cart item %d: %w", itemID, err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("add item: failed to commit transaction: %w", err)
	}

	return updated, nil
}

// UpdateQuantity overwrites a line's quantity, deleting the line when the
// new quantity is zero or negative.
func (s *cartService) UpdateQuantity(ctx context.Context, cartItemID int64, quantity int) (*domain.CartItem, bool, error) {
	if cartItemID <= 0 {
		return nil, false, util.ErrInvalidInput
	}

	if quantity <= 0 {
		if err := s.cartRepo.DeleteCartItem(ctx, s.dbExecutor, cartItemID); err != nil {
			return nil, false, fmt.Errorf("update quantity: failed to delete cart item %d: %w", cartItemID, err)
		}
		return nil, true, nil
	}

	if err := s.cartRepo.UpdateCartItemQuantity(ctx, s.dbExecutor, cartItemID, quantity); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, false, util.ErrCartItemNotFound
		}
		return nil, false, fmt.Errorf("update quantity: failed to update cart item %d: %w", cartItemID, err)
	}

	updated, err := s.cartRepo.GetCartItemByID(ctx, s.dbExecutor, cartItemID)
	if err != nil {
		return nil, false, fmt.Errorf("update quantity: failed to re-fetch cart item %d: %w", cartItemID, err)
	}
	return updated, false, nil
}

// RemoveItem deletes a line. The delete is idempotent.
func (s *cartService) RemoveItem(ctx context.Context, cartItemID int64) error {
	if cartItemID <= 0 {
		return util.ErrInvalidInput
	}
	if err := s.cartRepo.DeleteCartItem(ctx, s.dbExecutor, cartItemID); err != nil {
		return fmt.Errorf("remove item: failed to delete cart item %d: %w", cartItemID, err)
	}
	return nil
}

// ListCart returns the user's cart lines, most recently added first.
func (s *cartService) ListCart(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	if userID <= 0 {
		return nil, util.ErrInvalidInput
	}
	items, err := s.cartRepo.ListCartByUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	return items, nil
}
