package handlers

//go:generate mockgen -source=problem.go -destination=problem_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
)

// PuzzleIssuer hands out a new puzzle.
type PuzzleIssuer interface {
	IssuePuzzle(ctx context.Context, account *models.AccountDB) (*models.PuzzleDB, error)
}

// ProblemRequest represents the JSON body for requesting a puzzle
// swagger:model ProblemRequest
type ProblemRequest struct {
	Credentials
}

// ProblemResponse carries the puzzle. The answer is never sent.
// swagger:model ProblemResponse
type ProblemResponse struct {
	// Puzzle id to redeem with /mine
	ProblemID string `json:"problem_id"`

	// Expression to solve
	// default: 523*47
	Problem string `json:"problem"`
}

// NewProblemHandler returns an HTTP handler issuing puzzles.
// @Summary Get a puzzle
// @Description Issues a fresh arithmetic puzzle owned by the caller. The reward for solving it decays with time.
// @Tags mining
// @Accept json
// @Produce json
// @Param problemRequest body handlers.ProblemRequest true "Credentials"
// @Success 200 {object} handlers.ProblemResponse "Puzzle issued"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /problem [post]
func NewProblemHandler(auth Authenticator, svc PuzzleIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProblemRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w)
			return
		}

		account, err := req.authenticate(r.Context(), auth)
		if err != nil {
			writeError(w, r, err)
			return
		}

		p, err := svc.IssuePuzzle(r.Context(), account)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, ProblemResponse{
			ProblemID: p.ID.String(),
			Problem:   p.Expression,
		})
	}
}
