package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/middleware"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/response"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
)

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "Account registered, check your email to activate it")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// ActivateAccount consumes the token issued by the activation mail.
func (h *AuthHandler) ActivateAccount(c echo.Context) error {
	var input struct {
		Token string `json:"token" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activation input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.ActivateAccount(c.Request().Context(), input.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account activated successfully")
}

// Refresh rotates a token pair presented through the refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var input struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	tokens, err := h.uc.Refresh(c.Request().Context(), input.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokens, "Token refreshed successfully")
}

// Logout drops the cached session of the authenticated account.
func (h *AuthHandler) Logout(c echo.Context) error {
	cid, ok := c.Get(middleware.KeyCID).(int64)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid identity in token")
	}

	if err := h.uc.Logout(c.Request().Context(), cid); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// ForgotPassword dispatches a password reset mail.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot password input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset email sent")
}

// ResetPassword consumes a reset token and replaces the password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

// Session echoes the identity carried by the validated access token.
func (h *AuthHandler) Session(c echo.Context) error {
	cid, ok := c.Get(middleware.KeyCID).(int64)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid identity in token")
	}
	email, _ := c.Get(middleware.KeyEmail).(string)

	return response.Success(c, http.StatusOK, usecase.SessionOutput{CID: cid, Email: email}, "Session is valid")
}
