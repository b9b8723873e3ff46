package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/response"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
)

// AttributeHandler holds dependencies for attribute handlers.
type AttributeHandler struct {
	uc usecase.AttributeUsecase
}

// NewAttributeHandler is the constructor for AttributeHandler, injected by Fx.
func NewAttributeHandler(uc usecase.AttributeUsecase) *AttributeHandler {
	return &AttributeHandler{uc: uc}
}

// GetAttribute returns one attribute.
func (h *AttributeHandler) GetAttribute(c echo.Context) error {
	attribute, err := h.uc.GetAttribute(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, attribute, "Attribute retrieved successfully")
}

// ListAttributes returns a paginated page of attributes.
func (h *AttributeHandler) ListAttributes(c echo.Context) error {
	output, err := h.uc.ListAttributes(c.Request().Context(), pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Attributes retrieved successfully")
}

// CreateAttribute adds an attribute.
func (h *AttributeHandler) CreateAttribute(c echo.Context) error {
	var input usecase.CreateAttributeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attribute input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	attribute, err := h.uc.CreateAttribute(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, attribute, "Attribute created successfully")
}

// UpdateAttribute applies a patch to an attribute.
func (h *AttributeHandler) UpdateAttribute(c echo.Context) error {
	var input usecase.UpdateAttributeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid attribute update input")
	}

	attribute, err := h.uc.UpdateAttribute(c.Request().Context(), c.QueryParam("uid"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, attribute, "Attribute updated successfully")
}

// DeleteAttribute removes an attribute.
func (h *AttributeHandler) DeleteAttribute(c echo.Context) error {
	attribute, err := h.uc.DeleteAttribute(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, attribute, "Attribute deleted successfully")
}
