package repository

import (
	"context"
	"errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// ErrReviewNotFound is returned when no review matches the given filter.
var ErrReviewNotFound = errors.New("review not found")

// ReviewFilter carries the optional search predicates for review listings.
type ReviewFilter struct {
	ProductUID *int64
}

// ReviewPatch carries the fields a review update may set.
type ReviewPatch struct {
	Rating  *float64
	Comment *string
}

// ReviewRepository is the persistence gateway for the reviews collection.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByUID(ctx context.Context, uid int64) (*entity.Review, error)
	List(ctx context.Context, filter ReviewFilter, skip, limit int64) ([]*entity.Review, error)
	Count(ctx context.Context, filter ReviewFilter) (int64, error)

	// ListRatings returns the rating of every review matching the
	// filter, not only the current page.
	ListRatings(ctx context.Context, filter ReviewFilter) ([]float64, error)

	UpdateByUID(ctx context.Context, uid int64, patch ReviewPatch) (*entity.Review, error)
	DeleteByUID(ctx context.Context, uid int64) (*entity.Review, error)
}
