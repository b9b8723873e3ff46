package usecase

import (
	"context"
	"time"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// --- Input DTOs ---

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	CID            int64                  `json:"cid" validate:"required"`
	Products       []entity.OrderLine     `json:"products" validate:"required,min=1,dive"`
	AddressDetails entity.AddressDetails  `json:"address_details" validate:"required"`
	PaymentDetails *entity.PaymentDetails `json:"payment_details"`
	DeliveryDate   *time.Time             `json:"delivery_date"`
}

// UpdateOrderInput carries the fields a generic order update may set.
// Nil fields are left untouched.
type UpdateOrderInput struct {
	Status         *entity.OrderStatus    `json:"status"`
	DeliveryDate   *time.Time             `json:"delivery_date"`
	AddressDetails *entity.AddressDetails `json:"address_details"`
	PaymentDetails *entity.PaymentDetails `json:"payment_details"`
}

// OrderListQuery carries the raw search parameters for order listings.
type OrderListQuery struct {
	PageQuery

	Status       string
	CID          string
	OrderDate    string
	DeliveryDate string
	City         string
}

// --- Output DTOs ---

// OrderListOutput is one page of denormalized orders with its metadata.
type OrderListOutput struct {
	Orders []*entity.AggregatedOrder `json:"orders"`
	Meta   PageMeta                  `json:"meta"`
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// GetOrder returns the denormalized view of one order.
	GetOrder(ctx context.Context, uid string) (*entity.AggregatedOrder, error)

	// ListOrders returns a filtered, paginated page of denormalized
	// orders. An empty page is a valid result, not an error.
	ListOrders(ctx context.Context, query OrderListQuery) (*OrderListOutput, error)

	// ListUserOrders returns the denormalized orders of one customer.
	ListUserOrders(ctx context.Context, cid string, page PageQuery) (*OrderListOutput, error)

	// CreateOrder places a new pending order dated now.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)

	// UpdateOrder applies a generic patch to an order.
	UpdateOrder(ctx context.Context, uid string, input UpdateOrderInput) (*entity.Order, error)

	// DeleteOrder removes an order and returns the deleted document.
	DeleteOrder(ctx context.Context, uid string) (*entity.Order, error)
}
