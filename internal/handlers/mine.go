package handlers

//go:generate mockgen -source=mine.go -destination=mine_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// Redeemer pays out a solved puzzle.
type Redeemer interface {
	Redeem(ctx context.Context, account *models.AccountDB, puzzleID, answer string) (reward, balance decimal.Decimal, err error)
}

// MineRequest represents the JSON body for redeeming a puzzle
// swagger:model MineRequest
type MineRequest struct {
	Credentials

	// Puzzle id from /problem
	// required: true
	ProblemID string `json:"problem_id"`

	// Solution, as a number or a string
	// default: 24581
	Answer Numeric `json:"answer" swaggertype:"number"`
}

// MineResponse reports the reward and the new balance
// swagger:model MineResponse
type MineResponse struct {
	// default: 1.9842
	Reward float64 `json:"reward"`

	// default: 12.5
	Balance float64 `json:"balance"`
}

// NewMineHandler returns an HTTP handler redeeming puzzles.
// @Summary Redeem a puzzle
// @Description Consumes the puzzle and credits a reward between 0.1 and 2.0 that decays over 120 seconds from issuance.
// @Tags mining
// @Accept json
// @Produce json
// @Param mineRequest body handlers.MineRequest true "Redemption request"
// @Success 200 {object} handlers.MineResponse "Reward credited"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body or wrong answer"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Invalid problem"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /mine [post]
func NewMineHandler(auth Authenticator, svc Redeemer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MineRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w)
			return
		}

		account, err := req.authenticate(r.Context(), auth)
		if err != nil {
			writeError(w, r, err)
			return
		}

		reward, balance, err := svc.Redeem(r.Context(), account, req.ProblemID, string(req.Answer))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MineResponse{
			Reward:  reward.InexactFloat64(),
			Balance: balance.Round(4).InexactFloat64(),
		})
	}
}
