package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountDB represents an account row in the database
type AccountDB struct {
	ID           uuid.UUID       `json:"id" db:"id"`                     // Primary key
	Username     string          `json:"username" db:"username"`         // Unique username
	PasswordHash string          `json:"-" db:"password_hash"`           // bcrypt hash
	Balance      decimal.Decimal `json:"balance" db:"balance"`           // Never negative
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`     // Registration time
	LastMineAt   *time.Time      `json:"last_mine_at" db:"last_mine_at"` // Last successful redemption
}
