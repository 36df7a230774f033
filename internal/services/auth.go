package services

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/logger"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/repositories"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.AccountDB, error)
	GetByUsername(ctx context.Context, username string) (*models.AccountDB, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, account *models.AccountDB) error
}

// TokenGenerator issues bearer tokens on login.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

type registration struct {
	Username string `validate:"required,max=20"`
	Password string `validate:"min=6"`
}

// AuthService handles registration, login and per-request authentication.
type AuthService struct {
	reader   AccountReader
	writer   AccountWriter
	tokens   TokenGenerator
	validate *validator.Validate
}

// NewAuthService creates a new AuthService. tokens may be nil, in which case
// Login returns no token.
func NewAuthService(reader AccountReader, writer AccountWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		tokens:   tokens,
		validate: validator.New(),
	}
}

// Register creates an account with a zero balance and returns its id.
func (svc *AuthService) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	if err := svc.validate.Struct(registration{Username: username, Password: password}); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && verrs[0].Field() == "Password" {
			return uuid.Nil, ErrInvalidPassword
		}
		return uuid.Nil, ErrInvalidUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return uuid.Nil, ErrInvalidPassword
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return uuid.Nil, err
	}

	account := &models.AccountDB{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		Balance:      decimal.Zero,
		CreatedAt:    time.Now().UTC(),
	}

	if err := svc.writer.Save(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.Log.Infow("username already exists", "username", username)
			return uuid.Nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save account", "username", username, "error", err)
		return uuid.Nil, err
	}

	logger.Log.Infow("account registered", "account_id", account.ID, "username", username)
	return account.ID, nil
}

// Login checks the username and password and returns the account. The token is
// empty when no TokenGenerator is configured.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.AccountDB, string, error) {
	account, err := svc.Authenticate(ctx, username, password)
	if err != nil {
		return nil, "", err
	}

	if svc.tokens == nil {
		return account, "", nil
	}

	token, err := svc.tokens.Generate(ctx, account.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "account_id", account.ID, "error", err)
		return nil, "", err
	}
	return account, token, nil
}

// Authenticate resolves identifier, an account id or a username, and checks
// credential against the stored hash. The hash check is skipped when ctx carries
// a verified bearer token for the same account.
func (svc *AuthService) Authenticate(ctx context.Context, identifier, credential string) (*models.AccountDB, error) {
	var (
		account *models.AccountDB
		err     error
	)
	if id, parseErr := uuid.Parse(identifier); parseErr == nil {
		account, err = svc.reader.GetByID(ctx, id)
	} else {
		account, err = svc.reader.GetByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get account", "error", err)
		return nil, err
	}

	if bearer, ok := jwt.UserIDFromContext(ctx); ok && bearer == account.ID {
		return account, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(credential)); err != nil {
		logger.Log.Infow("invalid credentials", "account_id", account.ID)
		return nil, ErrInvalidCredentials
	}
	return account, nil
}
