package repository

import (
	"context"
	"errors"
	"time"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// Sentinel errors for the deliveries collection.
var (
	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrDuplicateKey     = errors.New("duplicate key")
)

// DeliveryFilter carries the optional search predicates for delivery listings.
type DeliveryFilter struct {
	Status         *entity.DeliveryStatus
	OrderUID       *int64
	TrackingNumber string
	City           string
	State          string
	Country        string
	PostalCode     *int
}

// DeliveryPatch carries the fields a delivery update may set.
type DeliveryPatch struct {
	Status           *entity.DeliveryStatus
	TrackingNumber   *string
	DeliveredAt      *time.Time
	Note             *string
	DeliveryManName  *string
	DeliveryManPhone *string
}

// DeliveryRepository is the persistence gateway for the deliveries collection.
type DeliveryRepository interface {
	// Create persists a new delivery. A uniqueness violation on the
	// delivery natural key is reported as ErrDuplicateKey.
	Create(ctx context.Context, delivery *entity.Delivery) error

	// FindByUID returns the delivery with the given uid.
	FindByUID(ctx context.Context, uid int64) (*entity.Delivery, error)

	// List returns deliveries matching the filter, newest first.
	List(ctx context.Context, filter DeliveryFilter, skip, limit int64) ([]*entity.Delivery, error)

	// Count returns the number of deliveries matching the filter.
	Count(ctx context.Context, filter DeliveryFilter) (int64, error)

	// DeleteByUID removes the delivery and returns the deleted document.
	DeleteByUID(ctx context.Context, uid int64) (*entity.Delivery, error)
}
