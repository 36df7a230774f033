package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-puzzle-ledger/internal/logger"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/services"
)

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

type errorMapping struct {
	err     error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{services.ErrInvalidUsername, http.StatusBadRequest, "Invalid username"},
	{services.ErrInvalidPassword, http.StatusBadRequest, "Password must be at least 6 characters"},
	{services.ErrInvalidAmount, http.StatusBadRequest, "Invalid amount"},
	{services.ErrInsufficientFunds, http.StatusBadRequest, "Insufficient funds"},
	{services.ErrSelfTransfer, http.StatusBadRequest, "Cannot send to yourself"},
	{services.ErrWrongAnswer, http.StatusBadRequest, "Wrong answer"},
	{services.ErrInvalidCredentials, http.StatusUnauthorized, "Unauthorized"},
	{services.ErrPuzzleNotFound, http.StatusNotFound, "Invalid problem"},
	{services.ErrReceiverNotFound, http.StatusNotFound, "Receiver not found"},
	{services.ErrUserAlreadyExists, http.StatusConflict, "Username already exists"},
	{services.ErrRateLimited, http.StatusTooManyRequests, "Too many requests"},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto its status code. Unknown errors are
// logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			writeJSON(w, m.status, ErrorResponse{Error: m.message})
			return
		}
	}

	logger.Log.Errorw("internal server error", "method", r.Method, "uri", r.RequestURI, "error", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

func writeBadRequest(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}
