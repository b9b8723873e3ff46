package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/config"
	deliverycontext "github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/context"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
	domainerrors "github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/errors"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/repository"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/service"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/util"
)

// Cache key suffixes for the per-customer token entries.
const (
	suffixAccessToken  = "access_token"
	suffixRefreshToken = "refresh_token"
	suffixEmailToken   = "email_token"
	suffixResetToken   = "reset_token"
)

func accessKey(cid int64) string  { return fmt.Sprintf("%d_%s", cid, suffixAccessToken) }
func refreshKey(cid int64) string { return fmt.Sprintf("%d_%s", cid, suffixRefreshToken) }
func emailKey(cid int64) string   { return fmt.Sprintf("%d_%s", cid, suffixEmailToken) }
func resetKey(cid int64) string   { return fmt.Sprintf("%d_%s", cid, suffixResetToken) }

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	tokenSvc service.TokenService
	cache    service.TokenCache
	hasher   service.PasswordHasher
	mailer   service.Mailer
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	userRepo repository.UserRepository,
	tokenSvc service.TokenService,
	cache service.TokenCache,
	hasher service.PasswordHasher,
	mailer service.Mailer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
		cache:    cache,
		hasher:   hasher,
		mailer:   mailer,
		cfg:      cfg,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive account and dispatches the activation
// email. The account persists even when the email cannot be sent; the
// caller is told about the failed dispatch so the flow can be retried
// through forgot-password or a fresh activation request.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Registering user", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrEmailAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		CID:        util.GenerateUID(),
		Image:      input.Image,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Password:   hash,
		Phone:      input.Phone,
		Address:    input.Address,
		IsVerified: false,
		Status:     entity.UserStatusInactive,
		Role:       entity.RoleUser,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	if err := srv.sendActivationMail(ctx, user); err != nil {
		srv.log(ctx).Error("Activation mail failed", slog.Int64("cid", user.CID), slog.Any("error", err))

		return nil, domainerrors.ErrActivationMailFailed.WithDetails(err.Error())
	}
	srv.log(ctx).Info("Registered user", slog.Int64("cid", user.CID))

	return user, nil
}

// sendActivationMail signs an activation token, checkpoints it in the
// cache and emails the activation link.
func (srv *authService) sendActivationMail(ctx context.Context, user *entity.User) error {
	token, err := srv.tokenSvc.GenerateActivationToken(user.CID, user.Email)
	if err != nil {
		return errors.Wrap(err, "failed to generate activation token")
	}

	if err := srv.cache.Set(ctx, emailKey(user.CID), token, srv.tokenSvc.ScopedTokenTTL()); err != nil {
		return errors.Wrap(err, "failed to cache activation token")
	}

	body := fmt.Sprintf("Hello %s,\n\nPlease confirm your email address by visiting the link below:\n\n%s/activate?token=%s\n\nThe link expires in one hour.",
		user.FirstName, srv.cfg.Frontend.BaseURL, token)

	return srv.mailer.SendMail(ctx, body, user.Email, "Email Confirmation!")
}

// Login verifies the credentials and returns a fresh token pair. The
// pair is handed out signed but uncached; a cache entry appears only
// once the client exercises the refresh flow.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Logging in user", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	switch user.Status {
	case entity.UserStatusBanned:
		return nil, domainerrors.ErrUserBanned
	case entity.UserStatusInactive:
		return nil, domainerrors.ErrUserNotActive
	case entity.UserStatusActive:
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenSvc.GenerateSessionTokens(user.CID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}
	srv.log(ctx).Info("Logged in user", slog.Int64("cid", user.CID))

	return &usecase.LoginOutput{
		Tokens: usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken},
		User:   user,
	}, nil
}

// ActivateAccount consumes an activation token: the signature alone
// authorizes the activation, so a valid token keeps working even if
// the cached copy from registration has been evicted.
func (srv *authService) ActivateAccount(ctx context.Context, token string) error {
	claims, err := srv.validateToken(token, service.PurposeActivation)
	if err != nil {
		return err
	}

	user, err := srv.userRepo.FindByCID(ctx, claims.CID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}
	switch user.Status {
	case entity.UserStatusActive:
		return domainerrors.ErrUserAlreadyActive
	case entity.UserStatusBanned:
		return domainerrors.ErrUserBanned
	}

	active := entity.UserStatusActive
	verified := true
	if _, err := srv.userRepo.UpdateByCID(ctx, claims.CID, repository.UserPatch{
		Status:     &active,
		IsVerified: &verified,
	}); err != nil {
		return errors.Wrap(err, "failed to activate user")
	}

	if err := srv.cache.Del(ctx, emailKey(claims.CID)); err != nil {
		srv.log(ctx).Warn("Failed to drop consumed activation token", slog.Int64("cid", claims.CID), slog.Any("error", err))
	}
	srv.log(ctx).Info("Activated user", slog.Int64("cid", claims.CID))

	return nil
}

// Refresh rotates the token pair. The presented refresh token must
// verify and byte-match the cached checkpoint; a hit on a stale or
// foreign token is a mismatch, never a silent reissue. The fresh pair
// overwrites the cache so the previous refresh token stops working.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	claims, err := srv.validateToken(refreshToken, service.PurposeSession)
	if err != nil {
		return nil, err
	}

	cached, err := srv.cache.Get(ctx, refreshKey(claims.CID))
	if err != nil {
		if errors.Is(err, service.ErrCacheMiss) {
			return nil, domainerrors.ErrRefreshTokenMismatch
		}

		return nil, errors.Wrap(err, "failed to read cached refresh token")
	}
	if cached != refreshToken {
		return nil, domainerrors.ErrRefreshTokenMismatch
	}

	accessToken, newRefreshToken, err := srv.tokenSvc.GenerateSessionTokens(claims.CID, claims.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session tokens")
	}

	if err := srv.cache.Set(ctx, accessKey(claims.CID), accessToken, srv.tokenSvc.AccessTokenTTL()); err != nil {
		return nil, errors.Wrap(err, "failed to cache access token")
	}
	if err := srv.cache.Set(ctx, refreshKey(claims.CID), newRefreshToken, srv.tokenSvc.RefreshTokenTTL()); err != nil {
		return nil, errors.Wrap(err, "failed to cache refresh token")
	}
	srv.log(ctx).Info("Rotated session tokens", slog.Int64("cid", claims.CID))

	return &usecase.TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

// Logout drops the cached session tokens. Missing entries are fine, so
// logging out twice succeeds.
func (srv *authService) Logout(ctx context.Context, cid int64) error {
	if err := srv.cache.Del(ctx, accessKey(cid), refreshKey(cid)); err != nil {
		return errors.Wrap(err, "failed to drop session tokens")
	}
	srv.log(ctx).Info("Logged out user", slog.Int64("cid", cid))

	return nil
}

// ForgotPassword signs a reset token, checkpoints it and emails the
// reset link.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	token, err := srv.tokenSvc.GenerateResetToken(user.CID, user.Email)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	if err := srv.cache.Set(ctx, resetKey(user.CID), token, srv.tokenSvc.ScopedTokenTTL()); err != nil {
		return errors.Wrap(err, "failed to cache reset token")
	}

	body := fmt.Sprintf("Hello %s,\n\nA password reset was requested for your account. Visit the link below to choose a new password:\n\n%s/reset-password?token=%s\n\nThe link expires in one hour. If you did not request this, ignore this email.",
		user.FirstName, srv.cfg.Frontend.BaseURL, token)

	if err := srv.mailer.SendMail(ctx, body, user.Email, "Password Reset"); err != nil {
		srv.log(ctx).Error("Reset mail failed", slog.Int64("cid", user.CID), slog.Any("error", err))

		return domainerrors.ErrResetMailFailed.WithDetails(err.Error())
	}
	srv.log(ctx).Info("Sent password reset mail", slog.Int64("cid", user.CID))

	return nil
}

// ResetPassword consumes a reset token and replaces the password. The
// cached checkpoint is deleted afterwards, so presenting the same token
// a second time fails even inside its signed lifetime.
func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	claims, err := srv.validateToken(input.Token, service.PurposeReset)
	if err != nil {
		return err
	}

	cached, err := srv.cache.Get(ctx, resetKey(claims.CID))
	if err != nil {
		if errors.Is(err, service.ErrCacheMiss) {
			return domainerrors.ErrTokenExpired
		}

		return errors.Wrap(err, "failed to read cached reset token")
	}
	if cached != input.Token {
		return domainerrors.ErrTokenInvalid
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if _, err := srv.userRepo.UpdateByCID(ctx, claims.CID, repository.UserPatch{Password: &hash}); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update password")
	}

	if err := srv.cache.Del(ctx, resetKey(claims.CID)); err != nil {
		return errors.Wrap(err, "failed to drop consumed reset token")
	}
	srv.log(ctx).Info("Reset password", slog.Int64("cid", claims.CID))

	return nil
}

// validateToken checks signature, expiry and purpose of a presented
// token, translating verification failures into the error taxonomy.
func (srv *authService) validateToken(token string, purpose service.TokenPurpose) (*service.Claims, error) {
	claims, err := srv.tokenSvc.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid
	}
	if claims.Purpose != purpose {
		return nil, domainerrors.ErrTokenInvalid
	}

	return claims, nil
}
