package usecase

import (
	"context"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// CreateUserInput defines the data for an administrative user create.
// Unlike registration, the account starts active with no email round-trip.
type CreateUserInput struct {
	Image     string          `json:"image"`
	FirstName string          `json:"firstName" validate:"required"`
	LastName  string          `json:"lastName" validate:"required"`
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required,min=6"`
	Phone     string          `json:"phone"`
	Address   string          `json:"address"`
	Role      entity.UserRole `json:"role"`
}

// UpdateUserInput carries the profile fields a user update may set.
type UpdateUserInput struct {
	Image     *string `json:"image"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// UpdateUserRoleInput changes the authorization role of an account.
type UpdateUserRoleInput struct {
	Role entity.UserRole `json:"role" validate:"required,oneof=user staff admin"`
}

// UpdateUserStatusInput changes the lifecycle state of an account.
type UpdateUserStatusInput struct {
	Status entity.UserStatus `json:"status" validate:"required,oneof=active inactive banned"`
}

// DeleteUsersInput names the accounts of a bulk delete.
type DeleteUsersInput struct {
	CIDs []int64 `json:"cids" validate:"required,min=1"`
}

// UserListOutput is one page of users with its metadata.
type UserListOutput struct {
	Users []*entity.User `json:"users"`
	Meta  PageMeta       `json:"meta"`
}

// UserUsecase defines the interface for account administration.
type UserUsecase interface {
	GetUser(ctx context.Context, cid string) (*entity.User, error)
	ListUsers(ctx context.Context, page PageQuery) (*UserListOutput, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, cid string, input UpdateUserInput) (*entity.User, error)
	UpdateUserRole(ctx context.Context, cid string, input UpdateUserRoleInput) (*entity.User, error)
	UpdateUserStatus(ctx context.Context, cid string, input UpdateUserStatusInput) (*entity.User, error)
	DeleteUsers(ctx context.Context, input DeleteUsersInput) (int64, error)
}
