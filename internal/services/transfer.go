package services

//go:generate mockgen -source=transfer.go -destination=transfer_mock_test.go -package=services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/logger"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/metrics"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/repositories"
	"github.com/shopspring/decimal"
)

// amountPlaces is the number of decimal places kept for balances and amounts.
const amountPlaces = 4

// maxAmount is the first value that no longer fits NUMERIC(20,4).
var maxAmount = decimal.New(1, 16)

// Bounds on client supplied numbers. Rounding or comparing a decimal rescales
// it to a big.Int, so huge exponents are rejected before any arithmetic.
const (
	maxNumberLen = 64
	minExponent  = -64
	maxExponent  = 16
)

var errNumberOutOfRange = errors.New("number out of range")

// parseBoundedDecimal parses s and rejects input whose length or exponent is
// outside the bounds above.
func parseBoundedDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxNumberLen {
		return decimal.Zero, errNumberOutOfRange
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if exp := d.Exponent(); exp < minExponent || exp > maxExponent {
		return decimal.Zero, errNumberOutOfRange
	}
	return d, nil
}

// ParseAmount parses a transfer amount. The result is rounded to four places and
// must be strictly positive.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := parseBoundedDecimal(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	amount = amount.Round(amountPlaces)
	if !amount.IsPositive() || amount.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// LedgerWriter locks and mutates account balances inside a store transaction.
type LedgerWriter interface {
	LockPair(ctx context.Context, a, b uuid.UUID) (map[uuid.UUID]*models.AccountDB, error)
	Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
}

// TransferService moves funds between accounts.
type TransferService struct {
	tx       Transactor
	accounts AccountReader
	ledger   LedgerWriter
	txns     TransactionWriter
	events   EventPublisher
	now      func() time.Time
}

// NewTransferService creates a TransferService. events may be nil.
func NewTransferService(
	tx Transactor,
	accounts AccountReader,
	ledger LedgerWriter,
	txns TransactionWriter,
	events EventPublisher,
) *TransferService {
	return &TransferService{
		tx:       tx,
		accounts: accounts,
		ledger:   ledger,
		txns:     txns,
		events:   events,
		now:      time.Now,
	}
}

// Transfer moves amount from sender to the account named receiverUsername and
// records a debit and a credit row. Either everything is committed or nothing is.
func (s *TransferService) Transfer(ctx context.Context, sender *models.AccountDB, receiverUsername string, amount decimal.Decimal) error {
	if sender.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	receiver, err := s.accounts.GetByUsername(ctx, receiverUsername)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrReceiverNotFound
		}
		logger.Log.Errorw("failed to get receiver", "receiver", receiverUsername, "error", err)
		return err
	}

	if receiver.ID == sender.ID {
		return ErrSelfTransfer
	}

	var rows []models.TransactionDB
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		locked, err := s.ledger.LockPair(ctx, sender.ID, receiver.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrReceiverNotFound
			}
			return err
		}

		// the snapshot check above may be stale
		if locked[sender.ID].Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		if _, err := s.ledger.Debit(ctx, sender.ID, amount); err != nil {
			if errors.Is(err, repositories.ErrInsufficientBalance) {
				return ErrInsufficientFunds
			}
			return err
		}
		if _, err := s.ledger.Credit(ctx, receiver.ID, amount); err != nil {
			return err
		}

		now := s.now().UTC()
		rows = []models.TransactionDB{
			{
				ActorID:        sender.ID,
				CounterpartyID: uuid.NullUUID{UUID: receiver.ID, Valid: true},
				Kind:           models.KindTransfer,
				Amount:         amount.Neg(),
				CreatedAt:      now,
			},
			{
				ActorID:        receiver.ID,
				CounterpartyID: uuid.NullUUID{UUID: sender.ID, Valid: true},
				Kind:           models.KindTransfer,
				Amount:         amount,
				CreatedAt:      now,
			},
		}
		for i := range rows {
			if err := s.txns.Save(ctx, &rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) && !errors.Is(err, ErrReceiverNotFound) {
			logger.Log.Errorw("transfer failed", "sender_id", sender.ID, "receiver_id", receiver.ID, "amount", amount, "error", err)
		}
		return err
	}

	logger.Log.Infow("transfer committed", "sender_id", sender.ID, "receiver_id", receiver.ID, "amount", amount)
	metrics.RecordTransfer(amount)
	if s.events != nil {
		s.events.Publish(ctx, rows)
	}
	return nil
}
