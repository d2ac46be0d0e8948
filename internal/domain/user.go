// internal/domain/user.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered shopper. Balance is the user's spendable
// ShopKu Pay credit, debited when an order is paid with the internal wallet.
type User struct {
	ID        int64           `db:"id" json:"id"`
	Username  string          `db:"username" json:"username"`
	Password  string          `db:"password" json:"-"` // bcrypt hash, never serialized
	Balance   decimal.Decimal `db:"balance" json:"balance"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// NewUser creates a new User instance with a zero balance.
func NewUser(username, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		Username:  username,
		Password:  passwordHash,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
