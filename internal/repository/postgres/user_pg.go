// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"shopku-api/internal/domain"
	"shopku-api/internal/repository"
	"shopku-api/internal/util"
)

const pqUniqueViolation = "23505"

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct{}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &UserRepository{}
}

// CreateUser inserts a new user into the database using the provided DBExecutor.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (username, password, balance, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query, user.Username, user.Password, user.Balance, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return util.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID using the provided DBExecutor.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, username, password, balance, created_at, updated_at FROM users WHERE id = $1`
	err := q.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by their username using the provided DBExecutor.
func (r *UserRepository) GetUserByUsername(ctx context.Context, q repository.DBExecutor, username string) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, username, password, balance, created_at, updated_at FROM users WHERE username = $1`
	err := q.GetContext(ctx, &user, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username '%s': %w", username, err)
	}
	return &user, nil
}

// DebitBalance decrements the user's balance by amount. The balance check
// and the write are one conditional UPDATE, so concurrent debits cannot
// drive the balance below zero.
func (r *UserRepository) DebitBalance(ctx context.Context, q repository.DBExecutor, userID int64, amount decimal.Decimal) error {
	query := `UPDATE users SET balance = balance - $1, updated_at = $2
              WHERE id = $3 AND balance >= $1`
	result, err := q.ExecContext(ctx, query, amount, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to debit balance for user %d: %w", userID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after debiting user %d: %w", userID, err)
	}
	if rowsAffected == 0 {
		// Distinguish a missing user from an insufficient balance.
		if _, err := r.GetUserByID(ctx, q, userID); err != nil {
			if errors.Is(err, util.ErrNotFound) {
				return util.ErrUserNotFound
			}
			return err
		}
		return util.ErrInsufficientFunds
	}
	return nil
}
