// Package repository defines the persistence gateway contracts consumed
// by the use case layer. Implementations live under internal/infra.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// ErrOrderNotFound is returned when no order matches the given filter.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter carries the optional search predicates for order listings.
// Absent fields are omitted from the query entirely.
type OrderFilter struct {
	Status           *entity.OrderStatus
	CID              *int64
	OrderDateFrom    *time.Time
	DeliveryDateFrom *time.Time
	City             string
}

// OrderPatch carries the fields a generic order update may set.
type OrderPatch struct {
	Status         *entity.OrderStatus
	DeliveryDate   *time.Time
	AddressDetails *entity.AddressDetails
	PaymentDetails *entity.PaymentDetails
}

// OrderRepository is the persistence gateway for the orders collection.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByUID returns the raw order document.
	FindByUID(ctx context.Context, uid int64) (*entity.Order, error)

	// AggregateByUID returns the denormalized view of one order, with
	// each line item joined to its product, attribute and variant records.
	AggregateByUID(ctx context.Context, uid int64) (*entity.AggregatedOrder, error)

	// AggregateList returns denormalized orders matching the filter,
	// newest order date first.
	AggregateList(ctx context.Context, filter OrderFilter, skip, limit int64) ([]*entity.AggregatedOrder, error)

	// Count returns the number of orders matching the filter.
	Count(ctx context.Context, filter OrderFilter) (int64, error)

	// UpdateByUID applies the patch and returns the updated order.
	UpdateByUID(ctx context.Context, uid int64, patch OrderPatch) (*entity.Order, error)

	// UpdateStatus transitions the order status.
	UpdateStatus(ctx context.Context, uid int64, status entity.OrderStatus) error

	// DeleteByUID removes the order and returns the deleted document.
	DeleteByUID(ctx context.Context, uid int64) (*entity.Order, error)
}
