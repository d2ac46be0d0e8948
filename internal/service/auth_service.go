// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopku-api/internal/auth"
	"shopku-api/internal/domain"
	"shopku-api/internal/repository"
	"shopku-api/internal/util"
	"shopku-api/pkg/db"
)

// AuthService defines the interface for registration, login and profile
// lookup.
type AuthService interface {
	// Register creates a new user with a hashed credential and zero balance.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies the credential and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// GetProfile retrieves the user behind an authenticated request.
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	tokens     *auth.TokenManager
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	tokens *auth.TokenManager,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) AuthService {
	return &authService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		tokens:     tokens,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// Register creates a new user. The username must be unused; the unique
// index on users.username backs up the in-transaction check.
func (s *authService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, util.ErrInvalidInput
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("register: failed to hash password: %w", err)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("register: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("register: transaction controller does not implement DBExecutor")
	}

	_, err = s.userRepo.GetUserByUsername(ctx, txExecutor, username)
	if err == nil {
		return nil, util.ErrDuplicateEntry
	}
	if !errors.Is(err, util.ErrNotFound) {
		return nil, fmt.Errorf("register: failed to check existing user: %w", err)
	}

	user := domain.NewUser(username, hash)
	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		if util.IsError(err, util.ErrDuplicateEntry) {
			return nil, util.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("register: failed to create user: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("register: failed to commit transaction: %w", err)
	}

	return user, nil
}

// Login verifies the credential and issues a bearer token. Unknown username
// and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, util.ErrInvalidInput
	}

	user, err := s.userRepo.GetUserByUsername(ctx, s.dbExecutor, username)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return "", nil, util.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: failed to get user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("login: failed to issue token: %w", err)
	}
	return token, user, nil
}

// GetProfile retrieves the caller's user record.
func (s *authService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile: failed to get user %d: %w", userID, err)
	}
	return user, nil
}
