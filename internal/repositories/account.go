package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, username, password_hash, balance, created_at, last_mine_at`

// AccountReadRepository handles account lookups
type AccountReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountReadRepository {
	return &AccountReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the account with the given id or ErrNotFound.
func (r *AccountReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AccountDB, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByUsername returns the account with the given username or ErrNotFound.
func (r *AccountReadRepository) GetByUsername(ctx context.Context, username string) (*models.AccountDB, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`
	return r.getOne(ctx, query, username)
}

func (r *AccountReadRepository) getOne(ctx context.Context, query string, arg any) (*models.AccountDB, error) {
	var account models.AccountDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &account, query, arg)

	logQuery(query, []any{arg}, account.ID, err)

	if err != nil {
		return nil, fmt.Errorf("get account: %w", translate(err))
	}
	return &account, nil
}

// AccountWriteRepository handles account inserts and balance mutations.
// Balance mutations are meant to run inside a Transactor transaction.
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new account. A taken username yields ErrDuplicate.
func (r *AccountWriteRepository) Save(ctx context.Context, account *models.AccountDB) error {
	query := `
		INSERT INTO accounts (id, username, password_hash, balance, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{account.ID, account.Username, account.PasswordHash, account.Balance, account.CreatedAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// password hash stays out of the log
	logQuery(query, []any{account.ID, account.Username}, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("save account: %w", translate(err))
	}
	return nil
}

// LockPair locks both account rows in id order and returns them keyed by id.
// Locking in a fixed order keeps opposite transfers from deadlocking.
func (r *AccountWriteRepository) LockPair(ctx context.Context, a, b uuid.UUID) (map[uuid.UUID]*models.AccountDB, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id IN ($1, $2)
		ORDER BY id
		FOR UPDATE
	`

	var accounts []models.AccountDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &accounts, query, a, b)

	logQuery(query, []any{a, b}, len(accounts), err)

	if err != nil {
		return nil, fmt.Errorf("lock accounts: %w", translate(err))
	}

	locked := make(map[uuid.UUID]*models.AccountDB, len(accounts))
	for i := range accounts {
		locked[accounts[i].ID] = &accounts[i]
	}
	if locked[a] == nil || locked[b] == nil {
		return nil, fmt.Errorf("lock accounts: %w", ErrNotFound)
	}
	return locked, nil
}

// Debit subtracts amount and returns the new balance. It never drives the
// balance negative: ErrInsufficientBalance is returned instead.
func (r *AccountWriteRepository) Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE accounts
		SET balance = balance - $1
		WHERE id = $2 AND balance >= $1
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, amount, id)

	logQuery(query, []any{amount, id}, balance, err)

	if err != nil {
		err = translate(err)
		if errors.Is(err, ErrNotFound) {
			err = ErrInsufficientBalance
		}
		return decimal.Zero, fmt.Errorf("debit account: %w", err)
	}
	return balance, nil
}

// Credit adds amount and returns the new balance.
func (r *AccountWriteRepository) Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $1
		WHERE id = $2
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, amount, id)

	logQuery(query, []any{amount, id}, balance, err)

	if err != nil {
		return decimal.Zero, fmt.Errorf("credit account: %w", translate(err))
	}
	return balance, nil
}

// CreditMining adds a mining reward, stamps last_mine_at and returns the new balance.
func (r *AccountWriteRepository) CreditMining(ctx context.Context, id uuid.UUID, amount decimal.Decimal, at time.Time) (decimal.Decimal, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $1, last_mine_at = $2
		WHERE id = $3
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, amount, at, id)

	logQuery(query, []any{amount, at, id}, balance, err)

	if err != nil {
		return decimal.Zero, fmt.Errorf("credit mining reward: %w", translate(err))
	}
	return balance, nil
}
