package usecase

import (
	"context"
	"time"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// --- Input DTOs ---

// CreateDeliveryInput defines the data required to create a delivery
// for a pending order.
type CreateDeliveryInput struct {
	OrderUID           int64     `json:"order_uid" validate:"required"`
	TrackingNumber     string    `json:"tracking_number" validate:"required"`
	DeliveryDate       time.Time `json:"delivery_date" validate:"required"`
	DeliveryAddrLine   string    `json:"delivery_address_line" validate:"required"`
	DeliveryCity       string    `json:"delivery_city" validate:"required"`
	DeliveryState      string    `json:"delivery_state" validate:"required"`
	DeliveryCountry    string    `json:"delivery_country" validate:"required"`
	DeliveryPostalCode int       `json:"delivery_postal_code" validate:"required"`
	DeliveryManName    string    `json:"delivery_man_name"`
	DeliveryManPhone   string    `json:"delivery_man_phone"`
	Note               string    `json:"note"`
}

// UpdateDeliveryInput carries the fields a delivery update may set.
type UpdateDeliveryInput struct {
	Status           *entity.DeliveryStatus `json:"status"`
	TrackingNumber   *string                `json:"tracking_number"`
	DeliveredAt      *time.Time             `json:"delivered_at"`
	Note             *string                `json:"note"`
	DeliveryManName  *string                `json:"delivery_man_name"`
	DeliveryManPhone *string                `json:"delivery_man_phone"`
}

// DeliveryListQuery carries the raw search parameters for delivery listings.
type DeliveryListQuery struct {
	PageQuery

	Status         string
	OrderUID       string
	TrackingNumber string
	City           string
	State          string
	Country        string
	PostalCode     string
}

// --- Output DTOs ---

// DeliveryListOutput is one page of deliveries with its metadata.
type DeliveryListOutput struct {
	Deliveries []*entity.Delivery `json:"deliveries"`
	Meta       PageMeta           `json:"meta"`
}

// DeliveryUsecase defines the interface for delivery-related business
// operations.
type DeliveryUsecase interface {
	// CreateDelivery runs the order-delivery handshake: the parent
	// order must exist and be pending; confirming the order and
	// inserting the delivery happen atomically.
	CreateDelivery(ctx context.Context, input CreateDeliveryInput) (*entity.Delivery, error)

	// UpdateDelivery re-validates the handshake preconditions for an
	// existing delivery and returns it unchanged when they hold.
	UpdateDelivery(ctx context.Context, uid string, input UpdateDeliveryInput) (*entity.Delivery, error)

	// GetDelivery returns the delivery with the given uid.
	GetDelivery(ctx context.Context, uid string) (*entity.Delivery, error)

	// ListDeliveries returns a filtered, paginated page of deliveries.
	// An empty result is reported as not found.
	ListDeliveries(ctx context.Context, query DeliveryListQuery) (*DeliveryListOutput, error)

	// DeleteDelivery removes a delivery and returns the deleted document.
	DeleteDelivery(ctx context.Context, uid string) (*entity.Delivery, error)
}
