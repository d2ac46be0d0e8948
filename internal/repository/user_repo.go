// internal/repository/user_repo.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"shopku-api/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user to the database using the provided DBExecutor.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by their ID using the provided DBExecutor.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetUserByUsername retrieves a user by their username using the provided DBExecutor.
	GetUserByUsername(ctx context.Context, q DBExecutor, username string) (*domain.User, error)
	// DebitBalance decrements the user's wallet balance by amount, as a
	// single conditional update so the balance can never go negative.
	// Returns util.ErrInsufficientFunds when the balance is too low and
	// util.ErrUserNotFound when the user does not exist.
	DebitBalance(ctx context.Context, q DBExecutor, userID int64, amount decimal.Decimal) error
}
