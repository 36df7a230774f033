package handlers

//go:generate mockgen -source=login.go -destination=login_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.AccountDB, string, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	UserID   string  `json:"user_id"`
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`

	// Bearer token, present only when the server signs tokens
	Token string `json:"token,omitempty"`
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Login
// @Description Checks the credentials and returns the account id and balance, plus a bearer token when enabled.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Account details"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decode(r, &req); err != nil {
			writeBadRequest(w)
			return
		}

		account, token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			UserID:   account.ID.String(),
			Username: account.Username,
			Balance:  account.Balance.InexactFloat64(),
			Token:    token,
		})
	}
}
