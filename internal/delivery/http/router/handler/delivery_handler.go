package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/response"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
)

// DeliveryHandler holds dependencies for delivery-related handlers.
type DeliveryHandler struct {
	uc usecase.DeliveryUsecase
}

// NewDeliveryHandler is the constructor for DeliveryHandler, injected by Fx.
func NewDeliveryHandler(uc usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// CreateDelivery runs the order-delivery handshake.
func (h *DeliveryHandler) CreateDelivery(c echo.Context) error {
	var input usecase.CreateDeliveryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	delivery, err := h.uc.CreateDelivery(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, delivery, "Delivery created successfully")
}

// UpdateDelivery re-validates the handshake preconditions.
func (h *DeliveryHandler) UpdateDelivery(c echo.Context) error {
	var input usecase.UpdateDeliveryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery update input")
	}

	delivery, err := h.uc.UpdateDelivery(c.Request().Context(), c.QueryParam("uid"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery updated successfully")
}

// GetDelivery returns one delivery.
func (h *DeliveryHandler) GetDelivery(c echo.Context) error {
	delivery, err := h.uc.GetDelivery(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery retrieved successfully")
}

// ListDeliveries returns a filtered, paginated page of deliveries.
func (h *DeliveryHandler) ListDeliveries(c echo.Context) error {
	query := usecase.DeliveryListQuery{
		PageQuery:      pageQuery(c),
		Status:         c.QueryParam("status"),
		OrderUID:       c.QueryParam("order_uid"),
		TrackingNumber: c.QueryParam("tracking_number"),
		City:           c.QueryParam("delivery_city"),
		State:          c.QueryParam("delivery_state"),
		Country:        c.QueryParam("delivery_country"),
		PostalCode:     c.QueryParam("delivery_postal_code"),
	}

	output, err := h.uc.ListDeliveries(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Deliveries retrieved successfully")
}

// DeleteDelivery removes a delivery.
func (h *DeliveryHandler) DeleteDelivery(c echo.Context) error {
	delivery, err := h.uc.DeleteDelivery(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery deleted successfully")
}
