package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/response"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
)

// ProductHandler holds dependencies for catalog item handlers.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// GetProduct returns one product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// ListProducts returns a filtered, paginated page of products.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	query := usecase.ProductListQuery{
		PageQuery: pageQuery(c),
		Name:      c.QueryParam("name"),
		Status:    c.QueryParam("status"),
		PriceMin:  c.QueryParam("price_min"),
		PriceMax:  c.QueryParam("price_max"),
	}

	output, err := h.uc.ListProducts(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved successfully")
}

// CreateProduct adds a catalog item.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct applies a patch to a product.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product update input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), c.QueryParam("uid"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes a product.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	product, err := h.uc.DeleteProduct(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product deleted successfully")
}
