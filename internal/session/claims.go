package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the role claim carried in the token payload.
//
// The enum is open: the backend may mint roles this client has never heard
// of, and an unknown role is still an authenticated user (with the least
// privileged UI affordances).
type Role string

const (
	RoleAdmin     Role = "admin"
	RolePublisher Role = "publisher"
	RoleCustomer  Role = "customer"
)

// Claims are the token payload fields the dashboard reads.
//
// They gate which controls are shown, nothing more. The token signature is
// never checked here — the backend re-validates every request, so a
// tampered payload can only misrender the UI, not bypass authorization.
type Claims struct {
	Role   Role  `json:"role"`
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// ErrInvalidToken is returned when the stored token cannot be decoded into
// usable claims. Callers treat it the same as a missing token.
var ErrInvalidToken = errors.New("invalid session token")

// DecodeClaims extracts the payload claims from a bearer token without
// verifying its signature. Malformed segments, bad base64, bad JSON, or a
// missing role claim all yield ErrInvalidToken.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Role == "" {
		return nil, fmt.Errorf("%w: missing role claim", ErrInvalidToken)
	}
	return claims, nil
}
