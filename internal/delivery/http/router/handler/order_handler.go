package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/response"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// GetOrder returns the denormalized view of one order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListOrders returns a filtered, paginated page of orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	query := usecase.OrderListQuery{
		PageQuery:    pageQuery(c),
		Status:       c.QueryParam("status"),
		CID:          c.QueryParam("cid"),
		OrderDate:    c.QueryParam("order_date"),
		DeliveryDate: c.QueryParam("delivery_date"),
		City:         c.QueryParam("city"),
	}

	output, err := h.uc.ListOrders(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Orders retrieved successfully")
}

// ListUserOrders returns the orders of one customer.
func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	output, err := h.uc.ListUserOrders(c.Request().Context(), c.QueryParam("cid"), pageQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Orders retrieved successfully")
}

// CreateOrder places a new order.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// UpdateOrder applies a patch to an order.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	var input usecase.UpdateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order update input")
	}

	order, err := h.uc.UpdateOrder(c.Request().Context(), c.QueryParam("uid"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}

// DeleteOrder removes an order.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	order, err := h.uc.DeleteOrder(c.Request().Context(), c.QueryParam("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order deleted successfully")
}
