package models

import (
	"time"

	"github.com/google/uuid"
)

// PuzzleDB represents an outstanding puzzle row. The answer never leaves the server.
type PuzzleDB struct {
	ID         uuid.UUID  `db:"id"`
	OwnerID    uuid.UUID  `db:"owner_id"`
	Expression string     `db:"expression"`
	Answer     int64      `db:"answer"`
	IssuedAt   *time.Time `db:"issued_at"` // nil when the stored value could not be read back
}
