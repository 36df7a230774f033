package services

//go:generate mockgen -source=history.go -destination=history_mock_test.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/logger"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
)

// MaxHistory is the default and maximum number of rows returned by Query.
const MaxHistory = 50

// TransactionReader lists ledger rows.
type TransactionReader interface {
	ListByActor(ctx context.Context, actorID uuid.UUID, limit uint64) ([]models.TransactionDB, error)
}

// HistoryService reads an account's transaction log.
type HistoryService struct {
	reader TransactionReader
}

func NewHistoryService(reader TransactionReader) *HistoryService {
	return &HistoryService{reader: reader}
}

// Query returns the newest rows recorded for account. A limit outside 1..MaxHistory means MaxHistory.
func (s *HistoryService) Query(ctx context.Context, account *models.AccountDB, limit int) ([]models.TransactionDB, error) {
	if limit <= 0 || limit > MaxHistory {
		limit = MaxHistory
	}

	txns, err := s.reader.ListByActor(ctx, account.ID, uint64(limit))
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "account_id", account.ID, "error", err)
		return nil, err
	}
	return txns, nil
}
