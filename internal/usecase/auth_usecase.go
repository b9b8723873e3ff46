package usecase

import (
	"context"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Image     string `json:"image"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordInput carries a reset token with the replacement password.
type ResetPasswordInput struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// --- Output DTOs ---

// TokenPair is a freshly signed access and refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginOutput returns the signed tokens after a successful login.
type LoginOutput struct {
	Tokens TokenPair    `json:"tokens"`
	User   *entity.User `json:"user"`
}

// SessionOutput echoes the identity carried by a validated access token.
type SessionOutput struct {
	CID   int64  `json:"cid"`
	Email string `json:"email"`
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Register creates an inactive account and dispatches the
	// activation email.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login verifies the credentials and returns a fresh token pair.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// ActivateAccount consumes an activation token and marks the
	// account active and verified.
	ActivateAccount(ctx context.Context, token string) error

	// Refresh rotates the token pair presented through a valid,
	// cache-recognized refresh token.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout drops the cached session tokens. Logging out twice is
	// not an error.
	Logout(ctx context.Context, cid int64) error

	// ForgotPassword dispatches a reset email for the given address.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes a reset token and replaces the password.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}
