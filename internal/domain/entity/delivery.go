package entity

import "time"

// DeliveryStatus is the delivery lifecycle state.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusShipped   DeliveryStatus = "shipped"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
)

// DeliveryStatuses lists every valid delivery status, used for filter validation.
var DeliveryStatuses = []DeliveryStatus{
	DeliveryStatusPending,
	DeliveryStatusShipped,
	DeliveryStatusDelivered,
	DeliveryStatusCancelled,
}

// Delivery is a shipment record for one order. OrderUID is a logical
// foreign reference: the store does not enforce it, the delivery
// service validates it before every dependent write.
type Delivery struct {
	UID                int64          `bson:"uid" json:"uid"`
	OrderUID           int64          `bson:"order_uid" json:"order_uid"`
	TrackingNumber     string         `bson:"tracking_number" json:"tracking_number"`
	DeliveryDate       time.Time      `bson:"delivery_date" json:"delivery_date"`
	DeliveredAt        *time.Time     `bson:"delivered_at,omitempty" json:"delivered_at,omitempty"`
	DeliveryAddrLine   string         `bson:"delivery_address_line" json:"delivery_address_line"`
	DeliveryCity       string         `bson:"delivery_city" json:"delivery_city"`
	DeliveryState      string         `bson:"delivery_state" json:"delivery_state"`
	DeliveryCountry    string         `bson:"delivery_country" json:"delivery_country"`
	DeliveryPostalCode int            `bson:"delivery_postal_code" json:"delivery_postal_code"`
	DeliveryManName    string         `bson:"delivery_man_name" json:"delivery_man_name"`
	DeliveryManPhone   string         `bson:"delivery_man_phone" json:"delivery_man_phone"`
	Note               string         `bson:"note,omitempty" json:"note,omitempty"`
	Status             DeliveryStatus `bson:"status" json:"status"`
	CreatedAt          time.Time      `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt          time.Time      `bson:"updatedAt,omitempty" json:"updatedAt"`
}
