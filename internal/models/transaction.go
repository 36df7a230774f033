package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction kinds.
const (
	KindMine     = "mine"
	KindTransfer = "transfer"
)

// TransactionDB is an immutable ledger row. Amount is signed: transfers debit with a negative amount.
type TransactionDB struct {
	ID             int64           `db:"id"`
	ActorID        uuid.UUID       `db:"actor_id"`
	CounterpartyID uuid.NullUUID   `db:"counterparty_id"`
	Kind           string          `db:"kind"`
	Amount         decimal.Decimal `db:"amount"`
	CreatedAt      time.Time       `db:"created_at"`
}

// LedgerEvent is the message published for every committed ledger row.
type LedgerEvent struct {
	TransactionID  int64     `json:"transaction_id"`  // TransactionID is the ledger row id.
	AccountID      string    `json:"account_id"`      // AccountID is the account whose balance changed.
	CounterpartyID string    `json:"counterparty_id"` // CounterpartyID is empty for mining rewards.
	Kind           string    `json:"kind"`            // Kind is "mine" or "transfer".
	Amount         string    `json:"amount"`          // Amount is the signed decimal amount.
	Timestamp      time.Time `json:"timestamp"`       // Timestamp is when the row was committed.
}

// NewLedgerEvent builds the event for a stored transaction row.
func NewLedgerEvent(t TransactionDB) LedgerEvent {
	ev := LedgerEvent{
		TransactionID: t.ID,
		AccountID:     t.ActorID.String(),
		Kind:          t.Kind,
		Amount:        t.Amount.StringFixed(4),
		Timestamp:     t.CreatedAt,
	}
	if t.CounterpartyID.Valid {
		ev.CounterpartyID = t.CounterpartyID.UUID.String()
	}
	return ev
}
