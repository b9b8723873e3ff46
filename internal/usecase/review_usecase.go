package usecase

import (
	"context"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// CreateReviewInput defines the data required to post a review.
type CreateReviewInput struct {
	ProductUID int64   `json:"product_uid" validate:"required"`
	UserName   string  `json:"user_name" validate:"required"`
	Rating     float64 `json:"rating" validate:"gte=0,lte=5"`
	Comment    string  `json:"comment"`
}

// UpdateReviewInput carries the fields a review update may set.
type UpdateReviewInput struct {
	Rating  *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Comment *string  `json:"comment"`
}

// ReviewListQuery carries the raw search parameters for review listings.
type ReviewListQuery struct {
	PageQuery

	ProductUID string
}

// ReviewListOutput is one page of reviews plus the rating summary. The
// average covers every review matching the filter, not just the page.
type ReviewListOutput struct {
	Reviews       []*entity.Review `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
	Meta          PageMeta         `json:"meta"`
}

// ReviewUsecase defines the interface for review operations.
type ReviewUsecase interface {
	GetReview(ctx context.Context, uid string) (*entity.Review, error)
	ListReviews(ctx context.Context, query ReviewListQuery) (*ReviewListOutput, error)
	CreateReview(ctx context.Context, input CreateReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, uid string, input UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, uid string) (*entity.Review, error)
}
