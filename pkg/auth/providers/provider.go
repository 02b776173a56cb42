// Package providers verifies the identity tokens attached to score submissions.
package providers

import (
	"context"
	"errors"
)

// ErrInvalidToken is returned for tokens a provider does not accept.
var ErrInvalidToken = errors.New("invalid token")

type AuthProvider interface {
	VerifyToken(ctx context.Context, idToken string) (*TokenClaims, error)
}

type TokenClaims struct {
	UID string `json:"uid"`
	// Name is the display name of the account, if the provider knows it.
	Name string `json:"name,omitempty"`
}
