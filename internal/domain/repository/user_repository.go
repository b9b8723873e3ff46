package repository

import (
	"context"
	"errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the given filter.
var ErrUserNotFound = errors.New("user not found")

// UserPatch carries the fields a user update may set.
type UserPatch struct {
	Image      *string
	FirstName  *string
	LastName   *string
	Password   *string
	Phone      *string
	Address    *string
	IsVerified *bool
	Status     *entity.UserStatus
	Role       *entity.UserRole
}

// UserRepository is the persistence gateway for the users collection.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByCID returns the user with the given customer id.
	FindByCID(ctx context.Context, cid int64) (*entity.User, error)

	// FindByEmail returns the user registered with the given email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns users ordered by creation time.
	List(ctx context.Context, skip, limit int64) ([]*entity.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// UpdateByCID applies the patch and returns the updated user.
	UpdateByCID(ctx context.Context, cid int64, patch UserPatch) (*entity.User, error)

	// DeleteByCIDs removes the users with the given customer ids and
	// returns the number of deleted documents.
	DeleteByCIDs(ctx context.Context, cids []int64) (int64, error)
}
