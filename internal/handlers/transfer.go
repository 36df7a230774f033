package handlers

//go:generate mockgen -source=transfer.go -destination=transfer_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/services"
	"github.com/shopspring/decimal"
)

// Transferrer moves funds between accounts.
type Transferrer interface {
	Transfer(ctx context.Context, sender *models.AccountDB, receiverUsername string, amount decimal.Decimal) error
}

// TransferRequest represents the JSON body for a transfer
// swagger:model TransferRequest
type TransferRequest struct {
	Credentials

	// Receiver username
	// required: true
	// default: jane_doe
	Receiver string `json:"receiver"`

	// Positive amount, as a number or a string
	// required: true
	// default: 1.5
	Amount Numeric `json:"amount" swaggertype:"number"`
}

// TransferResponse represents a successful transfer
// swagger:model TransferResponse
type TransferResponse struct {
	// default: Transfer successful
	Message string `json:"message"`
}

// NewTransferHandler returns an HTTP handler for transfers.
// @Summary Transfer funds
// @Description Moves funds to another account atomically and records a transaction for each side.
// @Tags ledger
// @Accept json
// @Produce json
// @Param transferRequest body handlers.TransferRequest true "Transfer request"
// @Success 200 {object} handlers.TransferResponse "Transfer successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, insufficient funds or self transfer"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Receiver not found"
// @Router /transfer [post]
func NewTransferHandler(auth Authenticator, svc Transferrer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransferRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w)
			return
		}

		amount, err := services.ParseAmount(string(req.Amount))
		if err != nil {
			writeError(w, r, err)
			return
		}

		account, err := req.authenticate(r.Context(), auth)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := svc.Transfer(r.Context(), account, req.Receiver, amount); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, TransferResponse{Message: "Transfer successful"})
	}
}
