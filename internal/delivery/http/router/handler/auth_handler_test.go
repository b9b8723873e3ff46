package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/response"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/validator"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
	domainerrors "github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/errors"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
)

// stubAuthUsecase implements usecase.AuthUsecase through assignable
// function fields. Calls to unassigned fields panic so a test only
// exercises the paths it declares.
type stubAuthUsecase struct {
	RegisterFn        func(ctx context.Context, input usecase.RegisterInput) (*entity.User, error)
	LoginFn           func(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error)
	ActivateAccountFn func(ctx context.Context, token string) error
	RefreshFn         func(ctx context.Context, refreshToken string) (*usecase.TokenPair, error)
	LogoutFn          func(ctx context.Context, cid int64) error
	ForgotPasswordFn  func(ctx context.Context, email string) error
	ResetPasswordFn   func(ctx context.Context, input usecase.ResetPasswordInput) error
}

func (s *stubAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	return s.RegisterFn(ctx, input)
}

func (s *stubAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.LoginFn(ctx, input)
}

func (s *stubAuthUsecase) ActivateAccount(ctx context.Context, token string) error {
	return s.ActivateAccountFn(ctx, token)
}

func (s *stubAuthUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	return s.RefreshFn(ctx, refreshToken)
}

func (s *stubAuthUsecase) Logout(ctx context.Context, cid int64) error {
	return s.LogoutFn(ctx, cid)
}

func (s *stubAuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	return s.ForgotPasswordFn(ctx, email)
}

func (s *stubAuthUsecase) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	return s.ResetPasswordFn(ctx, input)
}

func activationRequest(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPut, "/auth/activate-account", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestActivateAccount_BindsTokenFromBody(t *testing.T) {
	var received string
	h := NewAuthHandler(&stubAuthUsecase{
		ActivateAccountFn: func(_ context.Context, token string) error {
			received = token

			return nil
		},
	})

	c, rec := activationRequest(t, `{"token":"signed-activation-token"}`)
	require.NoError(t, h.ActivateAccount(c))

	assert.Equal(t, "signed-activation-token", received)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Account activated successfully", body.Message)
}

func TestActivateAccount_MissingTokenFailsValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{})

	c, _ := activationRequest(t, `{}`)
	err := h.ActivateAccount(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestActivateAccount_UsecaseErrorIsPropagated(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{
		ActivateAccountFn: func(_ context.Context, _ string) error {
			return domainerrors.ErrTokenExpired
		},
	})

	c, _ := activationRequest(t, `{"token":"stale"}`)
	err := h.ActivateAccount(c)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}
