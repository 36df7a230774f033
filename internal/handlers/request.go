package handlers

//go:generate mockgen -source=request.go -destination=request_mock_test.go -package=handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-puzzle-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-puzzle-ledger/internal/models"
)

// Authenticator resolves the credentials carried by every request body.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier, credential string) (*models.AccountDB, error)
}

// Credentials identify the caller on every authenticated endpoint.
type Credentials struct {
	// Account id returned by /register or /login
	// required: true
	// default: 3fa85f64-5717-4562-b3fc-2c963f66afa6
	UserID string `json:"user_id"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// authenticate checks the credentials. With a verified bearer token the
// user_id may be omitted.
func (c Credentials) authenticate(ctx context.Context, auth Authenticator) (*models.AccountDB, error) {
	identifier := c.UserID
	if identifier == "" {
		if id, ok := jwt.UserIDFromContext(ctx); ok {
			identifier = id.String()
		}
	}
	return auth.Authenticate(ctx, identifier, c.Password)
}

// Numeric accepts either a JSON number or a JSON string and keeps its text.
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = Numeric(num)
	return nil
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
