package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/response"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
)

// VariantHandler holds dependencies for variant handlers.
type VariantHandler struct {
	uc usecase.VariantUsecase
}

// NewVariantHandler is the constructor for VariantHandler, injected by Fx.
func NewVariantHandler(uc usecase.VariantUsecase) *VariantHandler {
	return &VariantHandler{uc: uc}
}

// GetVariant returns one variant.
func (h *VariantHandler) GetVariant(c echo.Context) error {
	variant, err := h.uc.GetVariant(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, variant, "Variant retrieved successfully")
}

// ListVariants returns a filtered, paginated page of variants.
func (h *VariantHandler) ListVariants(c echo.Context) error {
	query := usecase.VariantListQuery{
		PageQuery:    pageQuery(c),
		AttributeUID: c.QueryParam("attribute_uid"),
		Name:         c.QueryParam("name"),
		Status:       c.QueryParam("status"),
	}

	output, err := h.uc.ListVariants(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Variants retrieved successfully")
}

// ListAllVariants returns every variant without pagination.
func (h *VariantHandler) ListAllVariants(c echo.Context) error {
	variants, err := h.uc.ListAllVariants(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, variants, "Variants retrieved successfully")
}

// CreateVariant adds a variant under an existing attribute.
func (h *VariantHandler) CreateVariant(c echo.Context) error {
	var input usecase.CreateVariantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid variant input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	variant, err := h.uc.CreateVariant(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, variant, "Variant created successfully")
}

// UpdateVariant applies a patch to a variant.
func (h *VariantHandler) UpdateVariant(c echo.Context) error {
	var input usecase.UpdateVariantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid variant update input")
	}

	variant, err := h.uc.UpdateVariant(c.Request().Context(), c.QueryParam("uid"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, variant, "Variant updated successfully")
}

// DeleteVariant removes a variant.
func (h *VariantHandler) DeleteVariant(c echo.Context) error {
	variant, err := h.uc.DeleteVariant(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, variant, "Variant deleted successfully")
}
