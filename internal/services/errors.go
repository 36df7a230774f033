package services

import "errors"

// Validation errors.
var (
	ErrInvalidUsername   = errors.New("invalid username")
	ErrInvalidPassword   = errors.New("password must be at least 6 characters")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSelfTransfer      = errors.New("cannot send to yourself")
	ErrWrongAnswer       = errors.New("wrong answer")
)

var (
	// ErrInvalidCredentials is returned for an unknown account or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when the username is taken.
	ErrUserAlreadyExists = errors.New("username already exists")
	// ErrPuzzleNotFound is returned when the puzzle is unknown, foreign or already redeemed.
	ErrPuzzleNotFound = errors.New("invalid problem")
	// ErrReceiverNotFound is returned when the transfer receiver does not exist.
	ErrReceiverNotFound = errors.New("receiver not found")
	// ErrRateLimited is returned when an account redeems too fast.
	ErrRateLimited = errors.New("too many requests")
)
