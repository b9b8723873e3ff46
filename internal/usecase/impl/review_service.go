package impl

import (
	"context"
	"log/slog"
	"math"

	"github.com/pkg/errors"

	deliverycontext "github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/context"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
	domainerrors "github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/errors"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/repository"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/util"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetReview returns the review with the given uid.
func (srv *reviewService) GetReview(ctx context.Context, uid string) (*entity.Review, error) {
	reviewUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	review, err := srv.reviewRepo.FindByUID(ctx, reviewUID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// ListReviews returns one page of reviews plus the mean rating over the
// whole filtered set, rounded to two decimals. An empty page is
// reported as not found even when earlier pages held data.
func (srv *reviewService) ListReviews(ctx context.Context, query usecase.ReviewListQuery) (*usecase.ReviewListOutput, error) {
	page, limit, err := parsePagination(query.PageQuery)
	if err != nil {
		return nil, err
	}

	productUID, err := parseOptionalInt64("product_uid", query.ProductUID)
	if err != nil {
		return nil, err
	}
	filter := repository.ReviewFilter{ProductUID: productUID}

	reviews, err := srv.reviewRepo.List(ctx, filter, skipOf(page, limit), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}
	if len(reviews) == 0 {
		return nil, domainerrors.ErrNoReviewsFound
	}

	ratings, err := srv.reviewRepo.ListRatings(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	average, err := meanRating(ratings)
	if err != nil {
		return nil, err
	}

	total, err := srv.reviewRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count reviews")
	}

	return &usecase.ReviewListOutput{
		Reviews:       reviews,
		AverageRating: average,
		Meta:          usecase.NewPageMeta(page, limit, total),
	}, nil
}

// CreateReview posts a review for an existing product.
func (srv *reviewService) CreateReview(ctx context.Context, input usecase.CreateReviewInput) (*entity.Review, error) {
	if _, err := srv.productRepo.FindByUID(ctx, input.ProductUID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	review := &entity.Review{
		UID:        util.GenerateUID(),
		ProductUID: input.ProductUID,
		UserName:   input.UserName,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}
	srv.log(ctx).Info("Created review", slog.Int64("uid", review.UID), slog.Int64("product_uid", review.ProductUID))

	return review, nil
}

// UpdateReview applies a patch to a review.
func (srv *reviewService) UpdateReview(ctx context.Context, uid string, input usecase.UpdateReviewInput) (*entity.Review, error) {
	reviewUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	review, err := srv.reviewRepo.UpdateByUID(ctx, reviewUID, repository.ReviewPatch{
		Rating:  input.Rating,
		Comment: input.Comment,
	})
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// DeleteReview removes a review and returns the deleted document.
func (srv *reviewService) DeleteReview(ctx context.Context, uid string) (*entity.Review, error) {
	reviewUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	review, err := srv.reviewRepo.DeleteByUID(ctx, reviewUID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to delete review")
	}
	srv.log(ctx).Info("Deleted review", slog.Int64("uid", reviewUID))

	return review, nil
}

// meanRating computes the arithmetic mean rounded to two decimals. A
// result outside [0, 5] or NaN means stored data violates the rating
// bounds, which is an internal fault, not a client error.
func meanRating(ratings []float64) (float64, error) {
	if len(ratings) == 0 {
		return 0, nil
	}

	var sum float64
	for _, rating := range ratings {
		sum += rating
	}

	mean := math.Round(sum/float64(len(ratings))*100) / 100
	if math.IsNaN(mean) || mean < 0 || mean > 5 {
		return 0, domainerrors.ErrInternalError.WithDetails("computed average rating is out of bounds")
	}

	return mean, nil
}
