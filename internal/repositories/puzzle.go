package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
)

// PuzzleRepository stores outstanding puzzles until they are consumed.
type PuzzleRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPuzzleRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PuzzleRepository {
	return &PuzzleRepository{db: db, txGetter: txGetter}
}

// Save inserts a freshly issued puzzle.
func (r *PuzzleRepository) Save(ctx context.Context, p *models.PuzzleDB) error {
	query := `
		INSERT INTO puzzles (id, owner_id, expression, answer, issued_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{p.ID, p.OwnerID, p.Expression, p.Answer, p.IssuedAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{p.ID, p.OwnerID, p.Expression, p.IssuedAt}, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("save puzzle: %w", translate(err))
	}
	return nil
}

// Consume deletes the puzzle owned by ownerID and returns it. Deleting and reading in
// one statement means that of two concurrent callers exactly one gets the row; the
// other, like any caller with an unknown id or a foreign owner, gets ErrNotFound.
func (r *PuzzleRepository) Consume(ctx context.Context, id, ownerID uuid.UUID) (*models.PuzzleDB, error) {
	query := `
		DELETE FROM puzzles
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, expression, answer, issued_at
	`

	var p models.PuzzleDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &p, query, id, ownerID)

	logQuery(query, []any{id, ownerID}, p.Expression, err)

	if err != nil {
		return nil, fmt.Errorf("consume puzzle: %w", translate(err))
	}
	return &p, nil
}
