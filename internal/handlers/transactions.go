package handlers

//go:generate mockgen -source=transactions.go -destination=transactions_mock_test.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
)

// HistoryQuerier lists an account's transactions.
type HistoryQuerier interface {
	Query(ctx context.Context, account *models.AccountDB, limit int) ([]models.TransactionDB, error)
}

// TransactionsRequest represents the JSON body for the transaction history
// swagger:model TransactionsRequest
type TransactionsRequest struct {
	Credentials

	// Maximum number of rows, 1 to 50
	// default: 50
	Limit int `json:"limit,omitempty"`
}

// TransactionResponse is one ledger row
// swagger:model TransactionResponse
type TransactionResponse struct {
	TransactionID int64  `json:"transaction_id"`
	UserID        string `json:"user_id"`

	// Counterparty of a transfer, null for mining rewards
	TargetID *string `json:"target_id"`

	// mine or transfer
	Type string `json:"type"`

	// Signed amount, negative for outgoing transfers
	Amount float64 `json:"amount"`

	Timestamp time.Time `json:"timestamp"`
}

// NewTransactionsHandler returns an HTTP handler for the transaction history.
// @Summary Transaction history
// @Description Returns the caller's most recent transactions, newest first, at most 50.
// @Tags ledger
// @Accept json
// @Produce json
// @Param transactionsRequest body handlers.TransactionsRequest true "Credentials"
// @Success 200 {array} handlers.TransactionResponse "Transactions"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /transactions [post]
func NewTransactionsHandler(auth Authenticator, svc HistoryQuerier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransactionsRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w)
			return
		}

		account, err := req.authenticate(r.Context(), auth)
		if err != nil {
			writeError(w, r, err)
			return
		}

		txns, err := svc.Query(r.Context(), account, req.Limit)
		if err != nil {
			writeError(w, r, err)
			return
		}

		resp := make([]TransactionResponse, 0, len(txns))
		for _, t := range txns {
			item := TransactionResponse{
				TransactionID: t.ID,
				UserID:        t.ActorID.String(),
				Type:          t.Kind,
				Amount:        t.Amount.InexactFloat64(),
				Timestamp:     t.CreatedAt.UTC(),
			}
			if t.CounterpartyID.Valid {
				target := t.CounterpartyID.UUID.String()
				item.TargetID = &target
			}
			resp = append(resp, item)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
