package services

//go:generate mockgen -source=mining.go -destination=mining_mock_test.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/logger"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/metrics"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/puzzle"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/repositories"
	"github.com/shopspring/decimal"
)

// MineRateKeyPrefix prefixes the per-account rate limiter key.
const MineRateKeyPrefix = "mine_rate:"

// Transactor runs fn inside a single store transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PuzzleStore persists outstanding puzzles.
type PuzzleStore interface {
	Save(ctx context.Context, p *models.PuzzleDB) error
	Consume(ctx context.Context, id, ownerID uuid.UUID) (*models.PuzzleDB, error)
}

// MiningBalanceWriter credits mining rewards.
type MiningBalanceWriter interface {
	CreditMining(ctx context.Context, id uuid.UUID, amount decimal.Decimal, at time.Time) (decimal.Decimal, error)
}

// TransactionWriter appends ledger rows.
type TransactionWriter interface {
	Save(ctx context.Context, t *models.TransactionDB) error
}

// RateLimiter decides whether key may proceed. On a backend error it still
// reports a decision alongside the error.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// PuzzleGenerator produces fresh expressions.
type PuzzleGenerator interface {
	Generate() puzzle.Expression
}

// EventPublisher publishes committed ledger rows.
type EventPublisher interface {
	Publish(ctx context.Context, txns []models.TransactionDB)
}

// MiningService issues puzzles and pays rewards for redeeming them.
type MiningService struct {
	tx        Transactor
	puzzles   PuzzleStore
	balances  MiningBalanceWriter
	txns      TransactionWriter
	limiter   RateLimiter
	generator PuzzleGenerator
	events    EventPublisher

	now          func() time.Time
	verifyAnswer bool
}

// MiningOption configures a MiningService.
type MiningOption func(*MiningService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MiningOption {
	return func(s *MiningService) {
		s.now = now
	}
}

// WithAnswerVerification makes Redeem reject answers that differ from the stored one.
func WithAnswerVerification(enabled bool) MiningOption {
	return func(s *MiningService) {
		s.verifyAnswer = enabled
	}
}

// NewMiningService creates a MiningService. limiter and events may be nil.
func NewMiningService(
	tx Transactor,
	puzzles PuzzleStore,
	balances MiningBalanceWriter,
	txns TransactionWriter,
	limiter RateLimiter,
	generator PuzzleGenerator,
	events EventPublisher,
	opts ...MiningOption,
) *MiningService {
	s := &MiningService{
		tx:        tx,
		puzzles:   puzzles,
		balances:  balances,
		txns:      txns,
		limiter:   limiter,
		generator: generator,
		events:    events,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssuePuzzle creates and stores a puzzle for account. The answer stays server side.
func (s *MiningService) IssuePuzzle(ctx context.Context, account *models.AccountDB) (*models.PuzzleDB, error) {
	expr := s.generator.Generate()
	answer, err := expr.Evaluate()
	if err != nil {
		logger.Log.Errorw("failed to evaluate generated puzzle", "expression", expr.String(), "error", err)
		return nil, err
	}

	issuedAt := s.now().UTC()
	p := &models.PuzzleDB{
		ID:         uuid.New(),
		OwnerID:    account.ID,
		Expression: expr.String(),
		Answer:     answer,
		IssuedAt:   &issuedAt,
	}

	if err := s.puzzles.Save(ctx, p); err != nil {
		logger.Log.Errorw("failed to save puzzle", "account_id", account.ID, "error", err)
		return nil, err
	}
	return p, nil
}

// Redeem consumes the puzzle, credits the time-decayed reward and records a mine
// transaction, all in one store transaction. It returns the reward and the new balance.
func (s *MiningService) Redeem(ctx context.Context, account *models.AccountDB, puzzleID, answer string) (reward, balance decimal.Decimal, err error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, MineRateKeyPrefix+account.ID.String())
		if err != nil {
			logger.Log.Warnw("rate limiter unavailable, allowing request", "account_id", account.ID, "error", err)
		}
		if !allowed {
			logger.Log.Infow("redemption rate limited", "account_id", account.ID)
			metrics.RecordRateLimited()
			return decimal.Zero, decimal.Zero, ErrRateLimited
		}
	}

	id, err := uuid.Parse(puzzleID)
	if err != nil {
		return decimal.Zero, decimal.Zero, ErrPuzzleNotFound
	}

	var row models.TransactionDB
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.puzzles.Consume(ctx, id, account.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrPuzzleNotFound
			}
			return err
		}

		if s.verifyAnswer && !answerMatches(answer, p.Answer) {
			return ErrWrongAnswer
		}

		now := s.now().UTC()
		var issuedAt time.Time
		if p.IssuedAt != nil {
			issuedAt = *p.IssuedAt
		}
		reward = puzzle.Reward(issuedAt, now)

		balance, err = s.balances.CreditMining(ctx, account.ID, reward, now)
		if err != nil {
			return err
		}

		row = models.TransactionDB{
			ActorID:   account.ID,
			Kind:      models.KindMine,
			Amount:    reward,
			CreatedAt: now,
		}
		return s.txns.Save(ctx, &row)
	})
	if err != nil {
		if !errors.Is(err, ErrPuzzleNotFound) && !errors.Is(err, ErrWrongAnswer) {
			logger.Log.Errorw("failed to redeem puzzle", "account_id", account.ID, "puzzle_id", id, "error", err)
		}
		return decimal.Zero, decimal.Zero, err
	}

	logger.Log.Infow("puzzle redeemed", "account_id", account.ID, "puzzle_id", id, "reward", reward, "balance", balance)
	metrics.RecordRedemption(reward)
	if s.events != nil {
		s.events.Publish(ctx, []models.TransactionDB{row})
	}
	return reward, balance, nil
}

func answerMatches(answer string, want int64) bool {
	got, err := parseBoundedDecimal(answer)
	if err != nil {
		return false
	}
	return got.Equal(decimal.NewFromInt(want))
}
