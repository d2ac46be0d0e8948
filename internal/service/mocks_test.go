// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"shopku-api/internal/domain"
	"shopku-api/internal/repository"
	"shopku-api/pkg/db"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockTxController is a mock transaction controller. Embedding
// MockDBExecutor lets it satisfy repository.DBExecutor, mirroring how
// *sqlx.Tx is both things in production.
type MockTxController struct {
	mock.Mock
	MockDBExecutor
}

func (m *MockTxController) Commit() error {
	args := m.Mock.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Mock.Called()
	return args.Error(0)
}

// txFuncs returns injectable transaction funcs bound to the given mock
// controller.
func txFuncs(tx *MockTxController) (db.BeginTxFunc, db.CommitTxFunc, db.RollbackTxFunc) {
	begin := func(ctx context.Context, _ db.DBTxBeginner) (db.TxController, error) {
		return tx, nil
	}
	commit := func(t db.TxController) error {
		return t.Commit()
	}
	rollback := func(t db.TxController) {
		_ = t.Rollback()
	}
	return begin, commit, rollback
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, q repository.DBExecutor, username string) (*domain.User, error) {
	args := m.Called(ctx, q, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) DebitBalance(ctx context.Context, q repository.DBExecutor, userID int64, amount decimal.Decimal) error {
	args := m.Called(ctx, q, userID, amount)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Product, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, q repository.DBExecutor, filter domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, q, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

// MockCartRepository is a mock implementation of repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) CreateCartItem(ctx context.Context, q repository.DBExecutor, item *domain.CartItem) error {
	args := m.Called(ctx, q, item)
	return args.Error(0)
}

func (m *MockCartRepository) GetCartItemByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.CartItem, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) GetCartItemByUserAndProduct(ctx context.Context, q repository.DBExecutor, userID, productID int64) (*domain.CartItem, error) {
	args := m.Called(ctx, q, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) UpdateCartItemQuantity(ctx context.Context, q repository.DBExecutor, id int64, quantity int) error {
	args := m.Called(ctx, q, id, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteCartItem(ctx context.Context, q repository.DBExecutor, id int64) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

func (m *MockCartRepository) ListCartByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.CartItem, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, q repository.DBExecutor, order *domain.Order) error {
	args := m.Called(ctx, q, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateOrderItems(ctx context.Context, q repository.DBExecutor, items []domain.OrderItem) error {
	args := m.Called(ctx, q, items)
	return args.Error(0)
}

func (m *MockOrderRepository) GetOrderByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Order, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrderByIDForUpdate(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Order, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrderItems(ctx context.Context, q repository.DBExecutor, orderID int64) ([]domain.OrderItem, error) {
	args := m.Called(ctx, q, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByUser(ctx context.Context, q repository.DBExecutor, userID int64, limit, offset int) ([]domain.Order, int64, error) {
	args := m.Called(ctx, q, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, q repository.DBExecutor, id int64, status domain.OrderStatus, updatedAt time.Time) error {
	args := m.Called(ctx, q, id, status, updatedAt)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteOrder(ctx context.Context, q repository.DBExecutor, id int64) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

// decimalEq matches a decimal argument by value.
func decimalEq(want decimal.Decimal) interface{} {
	return mock.MatchedBy(func(got decimal.Decimal) bool {
		return got.Equal(want)
	})
}
