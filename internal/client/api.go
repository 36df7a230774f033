// Package client talks to the ledger server on behalf of a miner.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Account is the login result.
type Account struct {
	UserID   string  `json:"user_id"`
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`
	Token    string  `json:"token,omitempty"`
}

// Puzzle is an issued problem.
type Puzzle struct {
	ProblemID string `json:"problem_id"`
	Problem   string `json:"problem"`
}

// MineResult is the payout of a redemption.
type MineResult struct {
	Reward  float64 `json:"reward"`
	Balance float64 `json:"balance"`
}

// Transaction is one row of the history.
type Transaction struct {
	TransactionID int64     `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	TargetID      *string   `json:"target_id"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Timestamp     time.Time `json:"timestamp"`
}

type credentials struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// API is a thin JSON client for the ledger endpoints.
type API struct {
	baseURL string
	http    *http.Client
}

// NewAPI creates a client for the server at baseURL. A nil httpClient uses a
// client with a 10 second timeout.
func NewAPI(baseURL string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &API{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Register creates an account and returns its id.
func (a *API) Register(ctx context.Context, username, password string) (string, error) {
	var resp struct {
		UserID string `json:"user_id"`
	}
	err := a.post(ctx, "/register", map[string]string{"username": username, "password": password}, &resp)
	return resp.UserID, err
}

// Login returns the account id and current balance.
func (a *API) Login(ctx context.Context, username, password string) (*Account, error) {
	var acc Account
	if err := a.post(ctx, "/login", map[string]string{"username": username, "password": password}, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// Problem requests a new puzzle.
func (a *API) Problem(ctx context.Context, userID, password string) (*Puzzle, error) {
	var p Puzzle
	if err := a.post(ctx, "/problem", credentials{userID, password}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Mine redeems a puzzle with its answer.
func (a *API) Mine(ctx context.Context, userID, password, problemID string, answer int64) (*MineResult, error) {
	req := struct {
		credentials
		ProblemID string `json:"problem_id"`
		Answer    int64  `json:"answer"`
	}{credentials{userID, password}, problemID, answer}

	var res MineResult
	if err := a.post(ctx, "/mine", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Transfer sends amount, a decimal string, to receiver.
func (a *API) Transfer(ctx context.Context, userID, password, receiver, amount string) error {
	req := struct {
		credentials
		Receiver string `json:"receiver"`
		Amount   string `json:"amount"`
	}{credentials{userID, password}, receiver, amount}
	return a.post(ctx, "/transfer", req, nil)
}

// Transactions returns the newest transactions first.
func (a *API) Transactions(ctx context.Context, userID, password string) ([]Transaction, error) {
	var txns []Transaction
	if err := a.post(ctx, "/transactions", credentials{userID, password}, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

func (a *API) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) != nil || e.Error == "" {
			e.Error = strings.TrimSpace(string(data))
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
