package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
)

// TransactionWriteRepository appends ledger rows.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts t and fills in its generated id.
func (r *TransactionWriteRepository) Save(ctx context.Context, t *models.TransactionDB) error {
	query := `
		INSERT INTO transactions (actor_id, counterparty_id, kind, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	args := []any{t.ActorID, t.CounterpartyID, t.Kind, t.Amount, t.CreatedAt}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	if err != nil {
		return fmt.Errorf("save transaction: %w", translate(err))
	}
	t.ID = id
	return nil
}

// TransactionReadRepository queries ledger history.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// ListByActor returns up to limit rows for actorID, newest first.
func (r *TransactionReadRepository) ListByActor(ctx context.Context, actorID uuid.UUID, limit uint64) ([]models.TransactionDB, error) {
	query, args, err := sq.Select("id", "actor_id", "counterparty_id", "kind", "amount", "created_at").
		From("transactions").
		Where(sq.Eq{"actor_id": actorID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	txns := []models.TransactionDB{}
	err = r.db.SelectContext(ctx, &txns, query, args...)

	logQuery(query, args, len(txns), err)

	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}
