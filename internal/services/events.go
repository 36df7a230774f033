package services

//go:generate mockgen -source=events.go -destination=events_mock_test.go -package=services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-puzzle-ledger/internal/logger"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerEventPublisher publishes committed ledger rows to Kafka.
// Publishing is best effort: failures are logged and never returned.
type LedgerEventPublisher struct {
	writer KafkaWriter
}

// NewLedgerEventPublisher creates a publisher. A nil writer disables publishing.
func NewLedgerEventPublisher(writer KafkaWriter) *LedgerEventPublisher {
	return &LedgerEventPublisher{writer: writer}
}

// Publish sends one message per row, keyed by the account whose balance changed.
func (p *LedgerEventPublisher) Publish(ctx context.Context, txns []models.TransactionDB) {
	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "count", len(txns))
		return
	}

	msgs := make([]kafka.Message, 0, len(txns))
	for _, txn := range txns {
		ev := models.NewLedgerEvent(txn)
		data, err := json.Marshal(ev)
		if err != nil {
			logger.Log.Errorw("Failed to marshal ledger event", "transaction_id", txn.ID, "error", err)
			continue
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(ev.AccountID),
			Value: data,
		})
	}
	if len(msgs) == 0 {
		return
	}

	// the request may be gone by now; the rows are already committed
	ctx = context.WithoutCancel(ctx)
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		logger.Log.Errorw("Failed to publish ledger events to Kafka", "count", len(msgs), "error", err)
		return
	}
	logger.Log.Infow("Ledger events published to Kafka", "count", len(msgs))
}
