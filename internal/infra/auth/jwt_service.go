// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/config"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/service"
)

const (
	sessionTTL = time.Hour * 24 * 7 // signed expiry for access and refresh tokens
	accessTTL  = time.Hour          // cache lifetime for access tokens
	refreshTTL = time.Hour * 24 * 7 // cache lifetime for refresh tokens
	scopedTTL  = time.Hour          // activation and reset tokens
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{secret: cfg.SecretKey.JWT}, nil
}

// GenerateSessionTokens creates a new access token and refresh token pair.
// Both carry the same session claims and a 7 day signed expiry.
func (s *jwtService) GenerateSessionTokens(cid int64, email string) (string, string, error) {
	accessToken, err := s.generateToken(cid, email, service.PurposeSession, sessionTTL)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := s.generateToken(cid, email, service.PurposeSession, sessionTTL)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateActivationToken creates a one hour activation token.
func (s *jwtService) GenerateActivationToken(cid int64, email string) (string, error) {
	return s.generateToken(cid, email, service.PurposeActivation, scopedTTL)
}

// GenerateResetToken creates a one hour password reset token.
func (s *jwtService) GenerateResetToken(cid int64, email string) (string, error) {
	return s.generateToken(cid, email, service.PurposeReset, scopedTTL)
}

// ValidateToken checks the signature and expiry of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

// AccessTokenTTL returns the cache lifetime for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return accessTTL
}

// RefreshTokenTTL returns the cache lifetime for refresh tokens.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return refreshTTL
}

// ScopedTokenTTL returns the lifetime for activation and reset tokens.
func (s *jwtService) ScopedTokenTTL() time.Duration {
	return scopedTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(cid int64, email string, purpose service.TokenPurpose, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		CID:     cid,
		Email:   email,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
