// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPurpose scopes a signed token to the flow that may consume it.
type TokenPurpose string

const (
	PurposeSession    TokenPurpose = "session"
	PurposeActivation TokenPurpose = "activation"
	PurposeReset      TokenPurpose = "reset"
)

// Claims defines the custom claims carried by every signed token.
type Claims struct {
	CID     int64        `json:"cid"`
	Email   string       `json:"email"`
	Purpose TokenPurpose `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating signed tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateSessionTokens creates a new access token and refresh token pair.
	GenerateSessionTokens(cid int64, email string) (accessToken string, refreshToken string, err error)

	// GenerateActivationToken creates a short-lived token proving control
	// of a registered email.
	GenerateActivationToken(cid int64, email string) (string, error)

	// GenerateResetToken creates a short-lived token authorizing a
	// password reset.
	GenerateResetToken(cid int64, email string) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the cache lifetime for access tokens.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the cache lifetime for refresh tokens.
	RefreshTokenTTL() time.Duration

	// ScopedTokenTTL returns the lifetime for activation and reset tokens.
	ScopedTokenTTL() time.Duration
}
