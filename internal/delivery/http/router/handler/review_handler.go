package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/response"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
)

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// GetReview returns one review.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	review, err := h.uc.GetReview(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review retrieved successfully")
}

// ListReviews returns a page of reviews with the mean rating over the
// whole filtered set.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	query := usecase.ReviewListQuery{
		PageQuery:  pageQuery(c),
		ProductUID: c.QueryParam("product_uid"),
	}

	output, err := h.uc.ListReviews(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Reviews retrieved successfully")
}

// CreateReview posts a review for an existing product.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var input usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// UpdateReview applies a patch to a review.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	var input usecase.UpdateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review update input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), c.QueryParam("uid"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}

// DeleteReview removes a review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	review, err := h.uc.DeleteReview(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review deleted successfully")
}
