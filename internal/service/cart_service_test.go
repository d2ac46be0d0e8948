// internal/service/cart_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopku-api/internal/domain"
	"shopku-api/internal/util"
	"shopku-api/pkg/db"
)

func newCartServiceForTest(tx *MockTxController, cartRepo *MockCartRepository, productRepo *MockProductRepository, executor *MockDBExecutor) CartService {
	begin, commit, rollback := txFuncs(tx)
	return NewCartService(nil, executor, cartRepo, productRepo, begin, commit, rollback)
}

func testProduct() *domain.Product {
	return &domain.Product{ID: 3, Name: "Keyboard", Price: decimal.NewFromInt(30000), Stock: 10}
}

func TestAddItemCreatesNewLine(t *testing.T) {
	tx := &MockTxController{}
	cartRepo := &MockCartRepository{}
	productRepo := &MockProductRepository{}
	executor := &MockDBExecutor{}
	svc := newCartServiceForTest(tx, cartRepo, productRepo, executor)

	productRepo.On("GetProductByID", mock.Anything, executor, int64(3)).Return(testProduct(), nil)
	cartRepo.On("GetCartItemByUserAndProduct", mock.Anything, tx, int64(1), int64(3)).Return(nil, util.ErrNotFound)
	cartRepo.On("CreateCartItem", mock.Anything, tx, mock.AnythingOfType("*domain.CartItem")).
		Run(func(args mock.Arguments) {
			args.Get(2).(*domain.CartItem).ID = 21
		}).Return(nil)
	cartRepo.On("GetCartItemByID", mock.Anything, tx, int64(21)).
		Return(&domain.CartItem{ID: 21, UserID: 1, ProductID: 3, Quantity: 2, Product: *testProduct()}, nil)
	tx.Mock.On("Commit").Return(nil)
	tx.Mock.On("Rollback").Return(nil)

	item, err := svc.AddItem(context.Background(), 1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(21), item.ID)
	assert.Equal(t, 2, item.Quantity)
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	tx := &MockTxController{}
	cartRepo := &MockCartRepository{}
	productRepo := &MockProductRepository{}
	executor := &MockDBExecutor{}
	svc := newCartServiceForTest(tx, cartRepo, productRepo, executor)

	productRepo.On("GetProductByID", mock.Anything, executor, int64(3)).Return(testProduct(), nil)
	cartRepo.On("GetCartItemByUserAndProduct", mock.Anything, tx, int64(1), int64(3)).
		Return(&domain.CartItem{ID: 21, UserID: 1, ProductID: 3, Quantity: 2}, nil)
	cartRepo.On("UpdateCartItemQuantity", mock.Anything, tx, int64(21), 5).Return(nil)
	cartRepo.On("GetCartItemByID", mock.Anything, tx, int64(21)).
		Return(&domain.CartItem{ID: 21, UserID: 1, ProductID: 3, Quantity: 5, Product: *testProduct()}, nil)
	tx.Mock.On("Commit").Return(nil)
	tx.Mock.On("Rollback").Return(nil)

	// Adding 3 to an existing quantity of 2 yields one line with 5.
	item, err := svc.AddItem(context.Background(), 1, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(21), item.ID)
	assert.Equal(t, 5, item.Quantity)

	cartRepo.AssertNotCalled(t, "CreateCartItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddItemUnknownProduct(t *testing.T) {
	tx := &MockTxController{}
	cartRepo := &MockCartRepository{}
	productRepo := &MockProductRepository{}
	executor := &MockDBExecutor{}
	svc := newCartServiceForTest(tx, cartRepo, productRepo, executor)

	productRepo.On("GetProductByID", mock.Anything, executor, int64(99)).Return(nil, util.ErrNotFound)

	item, err := svc.AddItem(context.Background(), 1, 99, 1)
	assert.Nil(t, item)
	assert.ErrorIs(t, err, util.ErrProductNotFound)
}

func TestAddItemRejectsBadInput(t *testing.T) {
	svc := newCartServiceForTest(&MockTxController{}, &MockCartRepository{}, &MockProductRepository{}, &MockDBExecutor{})

	_, err := svc.AddItem(context.Background(), 0, 3, 1)
	assert.ErrorIs(t, err, util.ErrInvalidInput)

	_, err = svc.AddItem(context.Background(), 1, 0, 1)
	assert.ErrorIs(t, err, util.ErrInvalidInput)

	_, err = svc.AddItem(context.Background(), 1, 3, 0)
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	cartRepo := &MockCartRepository{}
	executor := &MockDBExecutor{}
	svc := NewCartService(nil, executor, cartRepo, &MockProductRepository{}, db.BeginTx, db.CommitTx, db.RollbackTx)

	cartRepo.On("UpdateCartItemQuantity", mock.Anything, executor, int64(21), 4).Return(nil)
	cartRepo.On("GetCartItemByID", mock.Anything, executor, int64(21)).
		Return(&domain.CartItem{ID: 21, Quantity: 4}, nil)

	item, removed, err := svc.UpdateQuantity(context.Background(), 21, 4)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 4, item.Quantity)
}

func TestUpdateQuantityZeroDeletesLine(t *testing.T) {
	cartRepo := &MockCartRepository{}
	executor := &MockDBExecutor{}
	svc := NewCartService(nil, executor, cartRepo, &MockProductRepository{}, db.BeginTx, db.CommitTx, db.RollbackTx)

	cartRepo.On("DeleteCartItem", mock.Anything, executor, int64(21)).Return(nil)

	item, removed, err := svc.UpdateQuantity(context.Background(), 21, 0)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Nil(t, item)

	cartRepo.AssertNotCalled(t, "UpdateCartItemQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateQuantityMissingLine(t *testing.T) {
	cartRepo := &MockCartRepository{}
	executor := &MockDBExecutor{}
	svc := NewCartService(nil, executor, cartRepo, &MockProductRepository{}, db.BeginTx, db.CommitTx, db.RollbackTx)

	cartRepo.On("UpdateCartItemQuantity", mock.Anything, executor, int64(404), 2).Return(util.ErrNotFound)

	_, _, err := svc.UpdateQuantity(context.Background(), 404, 2)
	assert.ErrorIs(t, err, util.ErrCartItemNotFound)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	cartRepo := &MockCartRepository{}
	executor := &MockDBExecutor{}
	svc := NewCartService(nil, executor, cartRepo, &MockProductRepository{}, db.BeginTx, db.CommitTx, db.RollbackTx)

	// The repository delete succeeds whether or not the line exists.
	cartRepo.On("DeleteCartItem", mock.Anything, executor, int64(21)).Return(nil)

	require.NoError(t, svc.RemoveItem(context.Background(), 21))
	require.NoError(t, svc.RemoveItem(context.Background(), 21))
	cartRepo.AssertNumberOfCalls(t, "DeleteCartItem", 2)
}

func TestListCart(t *testing.T) {
	cartRepo := &MockCartRepository{}
	executor := &MockDBExecutor{}
	svc := NewCartService(nil, executor, cartRepo, &MockProductRepository{}, db.BeginTx, db.CommitTx, db.RollbackTx)

	lines := []domain.CartItem{
		{ID: 2, UserID: 1, ProductID: 4, Quantity: 1},
		{ID: 1, UserID: 1, ProductID: 3, Quantity: 5},
	}
	cartRepo.On("ListCartByUser", mock.Anything, executor, int64(1)).Return(lines, nil)

	got, err := svc.ListCart(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}
