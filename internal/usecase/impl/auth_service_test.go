package impl

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EhsanulSakib/wool-e-commerce-backend/config"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
	domainerrors "github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/errors"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/repository"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/service"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Frontend.BaseURL = "https://shop.example"

	return cfg
}

func sessionTokenService() *stubTokenService {
	return &stubTokenService{
		GenerateSessionTokensFn: func(cid int64, _ string) (string, string, error) {
			return "access-new", "refresh-new", nil
		},
		GenerateActivationTokenFn: func(_ int64, _ string) (string, error) {
			return "activation-token", nil
		},
		GenerateResetTokenFn: func(_ int64, _ string) (string, error) {
			return "reset-token", nil
		},
		ValidateTokenFn: func(token string) (*service.Claims, error) {
			switch token {
			case "refresh-cached", "refresh-foreign":
				return &service.Claims{CID: 1234567890, Email: "a@b.c", Purpose: service.PurposeSession}, nil
			case "activation-token":
				return &service.Claims{CID: 1234567890, Email: "a@b.c", Purpose: service.PurposeActivation}, nil
			case "reset-token":
				return &service.Claims{CID: 1234567890, Email: "a@b.c", Purpose: service.PurposeReset}, nil
			case "expired":
				return nil, errors.Wrap(jwt.ErrTokenExpired, "failed to parse token")
			default:
				return nil, errors.New("failed to parse token")
			}
		},
	}
}

func TestRegister_EmailConflict(t *testing.T) {
	users := &stubUserRepo{
		FindByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
			return &entity.User{Email: email}, nil
		},
	}

	srv := NewAuthService(users, sessionTokenService(), newMemoryCache(), &stubHasher{}, &stubMailer{}, testConfig(), discardLogger())

	_, err := srv.Register(context.Background(), usecase.RegisterInput{Email: "a@b.c", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestRegister_PersistsInactiveUserAndCachesActivationToken(t *testing.T) {
	var created *entity.User
	users := &stubUserRepo{
		FindByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
		CreateFn: func(_ context.Context, user *entity.User) error {
			created = user

			return nil
		},
	}
	cache := newMemoryCache()
	mailer := &stubMailer{}

	srv := NewAuthService(users, sessionTokenService(), cache, &stubHasher{}, mailer, testConfig(), discardLogger())

	user, err := srv.Register(context.Background(), usecase.RegisterInput{
		FirstName: "Rimi",
		LastName:  "Akter",
		Email:     "a@b.c",
		Password:  "secret1",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, entity.UserStatusInactive, user.Status)
	assert.False(t, user.IsVerified)
	assert.Equal(t, "hashed:secret1", user.Password)
	assert.Equal(t, []string{"a@b.c"}, mailer.Sent)

	cached, err := cache.Get(context.Background(), emailKey(user.CID))
	require.NoError(t, err)
	assert.Equal(t, "activation-token", cached)
}

func TestRegister_MailFailureKeepsUserPersisted(t *testing.T) {
	var created *entity.User
	users := &stubUserRepo{
		FindByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
		CreateFn: func(_ context.Context, user *entity.User) error {
			created = user

			return nil
		},
	}
	mailer := &stubMailer{
		SendMailFn: func(_ context.Context, _, _, _ string) error {
			return errors.New("smtp refused")
		},
	}

	srv := NewAuthService(users, sessionTokenService(), newMemoryCache(), &stubHasher{}, mailer, testConfig(), discardLogger())

	_, err := srv.Register(context.Background(), usecase.RegisterInput{Email: "a@b.c", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrActivationMailFailed)
	assert.NotNil(t, created, "user must stay persisted when the mail dispatch fails")
}

func TestLogin_StatusAndPasswordChecks(t *testing.T) {
	activeUser := &entity.User{CID: 1, Email: "a@b.c", Password: "hashed:right", Status: entity.UserStatusActive}

	tests := []struct {
		name     string
		user     *entity.User
		password string
		wantErr  error
	}{
		{"unknown email", nil, "x", domainerrors.ErrUserNotFound},
		{"banned", &entity.User{Status: entity.UserStatusBanned}, "x", domainerrors.ErrUserBanned},
		{"inactive", &entity.User{Status: entity.UserStatusInactive}, "x", domainerrors.ErrUserNotActive},
		{"wrong password", activeUser, "wrong", domainerrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &stubUserRepo{
				FindByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
					if tt.user == nil {
						return nil, repository.ErrUserNotFound
					}

					return tt.user, nil
				},
			}

			srv := NewAuthService(users, sessionTokenService(), newMemoryCache(), &stubHasher{}, &stubMailer{}, testConfig(), discardLogger())

			_, err := srv.Login(context.Background(), usecase.LoginInput{Email: "a@b.c", Password: tt.password})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogin_ReturnsTokensWithoutCaching(t *testing.T) {
	users := &stubUserRepo{
		FindByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
			return &entity.User{CID: 1234567890, Email: "a@b.c", Password: "hashed:right", Status: entity.UserStatusActive}, nil
		},
	}
	cache := newMemoryCache()

	srv := NewAuthService(users, sessionTokenService(), cache, &stubHasher{}, &stubMailer{}, testConfig(), discardLogger())

	out, err := srv.Login(context.Background(), usecase.LoginInput{Email: "a@b.c", Password: "right"})
	require.NoError(t, err)

	assert.Equal(t, "access-new", out.Tokens.AccessToken)
	assert.Equal(t, "refresh-new", out.Tokens.RefreshToken)
	assert.Empty(t, cache.entries, "login hands out signed tokens without caching them")
}

func TestActivateAccount_Succeeds(t *testing.T) {
	var patched repository.UserPatch
	users := &stubUserRepo{
		FindByCIDFn: func(_ context.Context, cid int64) (*entity.User, error) {
			return &entity.User{CID: cid, Status: entity.UserStatusInactive}, nil
		},
		UpdateByCIDFn: func(_ context.Context, _ int64, patch repository.UserPatch) (*entity.User, error) {
			patched = patch

			return &entity.User{}, nil
		},
	}
	cache := newMemoryCache()
	require.NoError(t, cache.Set(context.Background(), emailKey(1234567890), "activation-token", 0))

	srv := NewAuthService(users, sessionTokenService(), cache, &stubHasher{}, &stubMailer{}, testConfig(), discardLogger())

	require.NoError(t, srv.ActivateAccount(context.Background(), "activation-token"))

	require.NotNil(t, patched.Status)
	assert.Equal(t, entity.UserStatusActive, *patched.Status)
	require.NotNil(t, patched.IsVerified)
	assert.True(t, *patched.IsVerified)

	_, err := cache.Get(context.Background(), emailKey(1234567890))
	assert.ErrorIs(t, err, service.ErrCacheMiss, "consumed activation token must be dropped")
}

func TestActivateAccount_SucceedsWithoutCachedCopy(t *testing.T) {
	// The cached copy from registration is a courtesy, not a checkpoint:
	// a still-valid signed token activates the account even after the
	// cache entry is evicted.
	var patched repository.UserPatch
	users := &stubUserRepo{
		FindByCIDFn: func(_ context.Context, cid int64) (*entity.User, error) {
			return &entity.User{CID: cid, Status: entity.UserStatusInactive}, nil
		},
		UpdateByCIDFn: func(_ context.Context, _ int64, patch repository.UserPatch) (*entity.User, error) {
			patched = patch

			return &entity.User{}, nil
		},
	}

	srv := NewAuthService(users, sessionTokenService(), newMemoryCache(), &stubHasher{}, &stubMailer{}, testConfig(), discardLogger())

	require.NoError(t, srv.ActivateAccount(context.Background(), "activation-token"))

	require.NotNil(t, patched.Status)
	assert.Equal(t, entity.UserStatusActive, *patched.Status)
}

func TestActivateAccount_AlreadyActive(t *testing.T) {
	users := &stubUserRepo{
		FindByCIDFn: func(_ context.Context, cid int64) (*entity.User, error) {
			return &entity.User{CID: cid, Status: entity.UserStatusActive}, nil
		},
	}

	srv := NewAuthService(users, sessionTokenService(), newMemoryCache(), &stubHasher{}, &stubMailer{}, testConfig(), discardLogger())

	err := srv.ActivateAccount(context.Background(), "activation-token")
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyActive)
}

func TestActivateAccount_BannedUser(t *testing.T) {
	users := &stubUserRepo{
		FindByCIDFn: func(_ context.Context, cid int64) (*entity.User, error) {
			return &entity.User{CID: cid, Status: entity.UserStatusBanned}, nil
		},
	}

	srv := NewAuthService(users, sessionTokenService(), newMemoryCache(), &stubHasher{}, &stubMailer{}, testConfig(), discardLogger())

	err := srv.ActivateAccount(context.Background(), "activation-token")
	assert.ErrorIs(t, err, domainerrors.ErrUserBanned)
}

func TestRefresh_CacheMissIsMismatch(t *testing.T) {
	srv := NewAuthService(&stubUserRepo{}, sessionTokenService(), newMemoryCache(), &stubHasher{}, &stubMailer{}, testConfig(), discardLogger())

	_, err := srv.Refresh(context.Background(), "refresh-cached")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenMismatch)
}

func TestRefresh_ForeignTokenIsMismatch(t *testing.T) {
	cache := newMemoryCache()
	require.NoError(t, cache.Set(context.Background(), refreshKey(1234567890), "refresh-cached", 0))

	srv := NewAuthService(&stubUserRepo{}, sessionTokenService(), cache, &stubHasher{}, &stubMailer{}, testConfig(), discardLogger())

	// Verifies fine, but is not the cached checkpoint.
	_, err := srv.Refresh(context.Background(), "refresh-foreign")
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenMismatch)
}

func TestRefresh_RotatesPairAndOverwritesCache(t *testing.T) {
	cache := newMemoryCache()
	require.NoError(t, cache.Set(context.Background(), refreshKey(1234567890), "refresh-cached", 0))

	srv := NewAuthService(&stubUserRepo{}, sessionTokenService(), cache, &stubHasher{}, &stubMailer{}, testConfig(), discardLogger())

	pair, err := srv.Refresh(context.Background(), "refresh-cached")
	require.NoError(t, err)

	assert.Equal(t, "access-new", pair.AccessToken)
	assert.Equal(t, "refresh-new", pair.RefreshToken)

	cachedRefresh, err := cache.Get(context.Background(), refreshKey(1234567890))
	require.NoError(t, err)
	assert.Equal(t, "refresh-new", cachedRefresh, "old refresh token must stop working")

	cachedAccess, err := cache.Get(context.Background(), accessKey(1234567890))
	require.NoError(t, err)
	assert.Equal(t, "access-new", cachedAccess)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	srv := NewAuthService(&stubUserRepo{}, sessionTokenService(), newMemoryCache(), &stubHasher{}, &stubMailer{}, testConfig(), discardLogger())

	_, err := srv.Refresh(context.Background(), "expired")
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestLogout_IsIdempotent(t *testing.T) {
	cache := newMemoryCache()
	require.NoError(t, cache.Set(context.Background(), accessKey(7), "a", 0))
	require.NoError(t, cache.Set(context.Background(), refreshKey(7), "r", 0))

	srv := NewAuthService(&stubUserRepo{}, sessionTokenService(), cache, &stubHasher{}, &stubMailer{}, testConfig(), discardLogger())

	require.NoError(t, srv.Logout(context.Background(), 7))
	assert.Empty(t, cache.entries)

	// Second logout finds nothing to delete and still succeeds.
	require.NoError(t, srv.Logout(context.Background(), 7))
}

func TestResetPassword_ConsumesTokenExactlyOnce(t *testing.T) {
	var patched repository.UserPatch
	users := &stubUserRepo{
		UpdateByCIDFn: func(_ context.Context, _ int64, patch repository.UserPatch) (*entity.User, error) {
			patched = patch

			return &entity.User{}, nil
		},
	}
	cache := newMemoryCache()
	require.NoError(t, cache.Set(context.Background(), resetKey(1234567890), "reset-token", 0))

	srv := NewAuthService(users, sessionTokenService(), cache, &stubHasher{}, &stubMailer{}, testConfig(), discardLogger())

	input := usecase.ResetPasswordInput{Token: "reset-token", Password: "brand-new"}
	require.NoError(t, srv.ResetPassword(context.Background(), input))

	require.NotNil(t, patched.Password)
	assert.Equal(t, "hashed:brand-new", *patched.Password)

	// The checkpoint is gone, so replaying the same token fails even
	// though its signature is still valid.
	err := srv.ResetPassword(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestForgotPassword_CachesTokenAndSendsMail(t *testing.T) {
	users := &stubUserRepo{
		FindByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
			return &entity.User{CID: 1234567890, Email: "a@b.c", FirstName: "Rimi"}, nil
		},
	}
	cache := newMemoryCache()
	mailer := &stubMailer{}

	srv := NewAuthService(users, sessionTokenService(), cache, &stubHasher{}, mailer, testConfig(), discardLogger())

	require.NoError(t, srv.ForgotPassword(context.Background(), "a@b.c"))

	cached, err := cache.Get(context.Background(), resetKey(1234567890))
	require.NoError(t, err)
	assert.Equal(t, "reset-token", cached)
	assert.Equal(t, []string{"a@b.c"}, mailer.Sent)
}
