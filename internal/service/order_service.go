// internal/service/order_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"shopku-api/internal/domain"
	"shopku-api/internal/repository"
	"shopku-api/internal/util"
	"shopku-api/pkg/db"
)

// Bounds applied to order listing pagination.
const (
	maxOrderPageSize     = 200
	defaultOrderPageSize = 10
)

// OrderService defines the interface for the order placement and payment
// settlement workflow.
type OrderService interface {
	// Checkout validates the requested items, debits the wallet when the
	// payment method is the internal balance, and persists the order with
	// its line items as one atomic unit.
	Checkout(ctx context.Context, userID int64, paymentMethodRaw string, items []OrderItemInput) (*domain.Order, error)
	// GetOrder retrieves one of the caller's orders with its items.
	GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error)
	// ListOrders retrieves a page of the caller's orders, newest first.
	ListOrders(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, int64, error)
	// Settle transitions one of the caller's orders from pending to paid.
	// Settling an already-paid order is an idempotent success.
	Settle(ctx context.Context, userID, orderID int64) (*domain.Order, error)
}

// orderService implements the OrderService interface.
type orderService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	orderRepo  repository.OrderRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) OrderService {
	return &orderService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		orderRepo:  orderRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// Checkout turns a validated item list into a durable order. The wallet
// debit, the order header and the line items land in one transaction, so a
// failure at any step leaves no partial state behind: no order without its
// items, and no debit without its order.
func (s *orderService) Checkout(ctx context.Context, userID int64, paymentMethodRaw string, items []OrderItemInput) (*domain.Order, error) {
	if userID <= 0 {
		return nil, util.ErrInvalidInput
	}

	draft, err := buildOrder(paymentMethodRaw, items)
	if err != nil {
		return nil, err
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("checkout: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("checkout: transaction controller does not implement DBExecutor")
	}

	status := domain.OrderStatusPending
	if draft.paymentMethod == domain.PaymentMethodWallet {
		if err := s.debit(ctx, txExecutor, userID, draft.total); err != nil {
			return nil, err
		}
		status = domain.OrderStatusPaid
	}

	order := domain.NewOrder(userID, draft.paymentMethod, status, draft.total)
	if err := s.orderRepo.CreateOrder(ctx, txExecutor, order); err != nil {
		return nil, fmt.Errorf("checkout: failed to create order: %w", err)
	}

	for i := range draft.items {
		draft.items[i].OrderID = order.ID
	}
	if err := s.orderRepo.CreateOrderItems(ctx, txExecutor, draft.items); err != nil {
		return nil, fmt.Errorf("checkout: failed to create order items: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("checkout: failed to commit transaction: %w", err)
	}

	order.Items = draft.items
	return order, nil
}

// GetOrder retrieves an order with its items. Orders owned by other users
// are reported as not found rather than forbidden, so existence is not
// revealed.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, s.dbExecutor, orderID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: failed to get order %d: %w", orderID, err)
	}
	if order.UserID != userID {
		return nil, util.ErrOrderNotFound
	}

	items, err := s.orderRepo.GetOrderItems(ctx, s.dbExecutor, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: failed to get items of order %d: %w", orderID, err)
	}
	order.Items = items
	return order, nil
}

// ListOrders retrieves a page of the caller's orders, newest first. The
// limit is clamped to [1, 200] and the offset to >= 0.
func (s *orderService) ListOrders(ctx context.Context, userID int64, limit, offset int) ([]domain.Order, int64, error) {
	if limit <= 0 {
		limit = defaultOrderPageSize
	}
	if limit > maxOrderPageSize {
		limit = maxOrderPageSize
	}
	if offset < 0 {
		offset = 0
	}

	orders, totalCount, err := s.orderRepo.ListOrdersByUser(ctx, s.dbExecutor, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return orders, totalCount, nil
}

// Settle transitions an order from pending to paid. The order row is locked
// for the duration of the transaction, so a retried or concurrent settle
// observes either the pending or the final paid state, never a partial one.
func (s *orderService) Settle(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("settle: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("settle: transaction controller does not implement DBExecutor")
	}

	order, err := s.orderRepo.GetOrderByIDForUpdate(ctx, txExecutor, orderID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrOrderNotFound
		}
		return nil, fmt.Errorf("settle: failed to get order %d: %w", orderID, err)
	}
	if order.UserID != userID {
		return nil, util.ErrForbidden
	}

	switch order.Status {
	case domain.OrderStatusCancelled:
		return nil, util.ErrOrderNotPayable
	case domain.OrderStatusPending:
		// Fall through to the transition below.
	default:
		// Already paid (or further along). Duplicate settlement calls are
		// a no-op success: same terminal state, no additional debit.
		items, err := s.orderRepo.GetOrderItems(ctx, txExecutor, orderID)
		if err != nil {
			return nil, fmt.Errorf("settle: failed to get items of order %d: %w", orderID, err)
		}
		order.Items = items
		if err := s.commitTx(txController); err != nil {
			return nil, fmt.Errorf("settle: failed to commit transaction: %w", err)
		}
		return order, nil
	}

	// The balance may have changed since the order was created, so the
	// wallet check runs again against the current balance.
	if order.PaymentMethod == domain.PaymentMethodWallet {
		if err := s.debit(ctx, txExecutor, order.UserID, order.Total); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	if err := s.orderRepo.UpdateOrderStatus(ctx, txExecutor, orderID, domain.OrderStatusPaid, now); err != nil {
		return nil, fmt.Errorf("settle: failed to mark order %d paid: %w", orderID, err)
	}

	items, err := s.orderRepo.GetOrderItems(ctx, txExecutor, orderID)
	if err != nil {
		return nil, fmt.Errorf("settle: failed to get items of order %d: %w", orderID, err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("settle: failed to commit transaction: %w", err)
	}

	order.Status = domain.OrderStatusPaid
	order.UpdatedAt = now
	order.Items = items
	return order, nil
}

// debit runs the conditional wallet decrement, passing business-rule
// failures through unwrapped so handlers can map them.
func (s *orderService) debit(ctx context.Context, q repository.DBExecutor, userID int64, total decimal.Decimal) error {
	err := s.userRepo.DebitBalance(ctx, q, userID, total)
	if err == nil {
		return nil
	}
	if util.IsError(err, util.ErrInsufficientFunds) || util.IsError(err, util.ErrUserNotFound) {
		return err
	}
	return fmt.Errorf("failed to debit wallet of user %d: %w", userID, err)
}
