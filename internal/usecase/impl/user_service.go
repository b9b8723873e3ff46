package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/context"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
	domainerrors "github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/errors"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/repository"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/service"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/util"
)

// userService implements the UserUsecase interface for account
// administration.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) GetUser(ctx context.Context, cid string) (*entity.User, error) {
	customerID, err := parseUID("cid", cid)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByCID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context, pageQuery usecase.PageQuery) (*usecase.UserListOutput, error) {
	page, limit, err := parsePagination(pageQuery)
	if err != nil {
		return nil, err
	}

	users, err := srv.userRepo.List(ctx, skipOf(page, limit), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	if users == nil {
		users = []*entity.User{}
	}

	total, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	return &usecase.UserListOutput{
		Users: users,
		Meta:  usecase.NewPageMeta(page, limit, total),
	}, nil
}

// CreateUser provisions an account directly: active, verified, no
// email round-trip. Registration is the self-service counterpart.
func (srv *userService) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
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

	role := input.Role
	if role == "" {
		role = entity.RoleUser
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
		IsVerified: true,
		Status:     entity.UserStatusActive,
		Role:       role,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	srv.log(ctx).Info("Created user", slog.Int64("cid", user.CID))

	return user, nil
}

func (srv *userService) UpdateUser(ctx context.Context, cid string, input usecase.UpdateUserInput) (*entity.User, error) {
	customerID, err := parseUID("cid", cid)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.UpdateByCID(ctx, customerID, repository.UserPatch{
		Image:     input.Image,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Address:   input.Address,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

func (srv *userService) UpdateUserRole(ctx context.Context, cid string, input usecase.UpdateUserRoleInput) (*entity.User, error) {
	customerID, err := parseUID("cid", cid)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.UpdateByCID(ctx, customerID, repository.UserPatch{Role: &input.Role})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user role")
	}
	srv.log(ctx).Info("Updated user role", slog.Int64("cid", customerID), slog.String("role", string(input.Role)))

	return user, nil
}

func (srv *userService) UpdateUserStatus(ctx context.Context, cid string, input usecase.UpdateUserStatusInput) (*entity.User, error) {
	customerID, err := parseUID("cid", cid)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.UpdateByCID(ctx, customerID, repository.UserPatch{Status: &input.Status})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user status")
	}
	srv.log(ctx).Info("Updated user status", slog.Int64("cid", customerID), slog.String("status", string(input.Status)))

	return user, nil
}

// DeleteUsers removes the named accounts. Asking to delete zero
// existing accounts is reported as not found.
func (srv *userService) DeleteUsers(ctx context.Context, input usecase.DeleteUsersInput) (int64, error) {
	deleted, err := srv.userRepo.DeleteByCIDs(ctx, input.CIDs)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete users")
	}
	if deleted == 0 {
		return 0, domainerrors.ErrUserNotFound
	}
	srv.log(ctx).Info("Deleted users", slog.Int64("count", deleted))

	return deleted, nil
}
