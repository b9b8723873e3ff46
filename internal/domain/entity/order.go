package entity

import "time"

// OrderStatus is the order lifecycle state. Transitions are not
// free-form: pending -> confirmed happens only through delivery
// creation, and delivered/cancelled are terminal.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every valid order status, used for filter validation.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// PaymentMethod enumerates the accepted payment channels.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// PaymentStatus is the state of the embedded payment snapshot.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// OrderLine is one ordered product reference with its quantity. The
// product is referenced by value (uid), not by a document relation.
type OrderLine struct {
	ProductUID int64 `bson:"product_uid" json:"product_uid"`
	Quantity   int   `bson:"quantity" json:"quantity"`
}

// PaymentDetails is the payment snapshot embedded in an order.
type PaymentDetails struct {
	Method        PaymentMethod `bson:"method" json:"method"`
	Currency      string        `bson:"currency" json:"currency"`
	Amount        float64       `bson:"amount" json:"amount"`
	TransactionID string        `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaymentStatus PaymentStatus `bson:"payment_status" json:"payment_status"`
}

// AddressDetails is the shipping address snapshot embedded in an order.
type AddressDetails struct {
	Name        string `bson:"name" json:"name"`
	Phone       string `bson:"phone" json:"phone"`
	City        string `bson:"city" json:"city"`
	State       string `bson:"state" json:"state"`
	Country     string `bson:"country" json:"country"`
	PostalCode  int    `bson:"postal_code" json:"postal_code"`
	AddressLine string `bson:"address_line" json:"address_line"`
}

// Order is a customer order with embedded address and payment snapshots.
type Order struct {
	UID            int64           `bson:"uid" json:"uid"`
	CID            int64           `bson:"cid" json:"cid"`
	Products       []OrderLine     `bson:"products" json:"products"`
	AddressDetails AddressDetails  `bson:"address_details" json:"address_details"`
	PaymentDetails *PaymentDetails `bson:"payment_details,omitempty" json:"payment_details,omitempty"`
	OrderDate      time.Time       `bson:"order_date" json:"order_date"`
	DeliveryDate   *time.Time      `bson:"delivery_date,omitempty" json:"delivery_date,omitempty"`
	Status         OrderStatus     `bson:"status" json:"status"`
	CreatedAt      time.Time       `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// AggregatedOrderLine is an order line enriched with its resolved product.
type AggregatedOrderLine struct {
	ProductUID int64              `bson:"product_uid" json:"product_uid"`
	Quantity   int                `bson:"quantity" json:"quantity"`
	Details    *AggregatedProduct `bson:"details,omitempty" json:"details,omitempty"`
}

// AggregatedProduct is a product joined with its attribute and variant records.
type AggregatedProduct struct {
	Product          `bson:",inline"`
	AttributeDetails []Attribute `bson:"attribute_details" json:"attribute_details"`
	VariantDetails   []Variant   `bson:"variant_details" json:"variant_details"`
}

// AggregatedOrder is the denormalized order view produced by the
// aggregation pipeline: original scalars plus resolved line items.
type AggregatedOrder struct {
	UID            int64                 `bson:"uid" json:"uid"`
	CID            int64                 `bson:"cid" json:"cid"`
	Products       []AggregatedOrderLine `bson:"products" json:"products"`
	AddressDetails AddressDetails        `bson:"address_details" json:"address_details"`
	PaymentDetails *PaymentDetails       `bson:"payment_details,omitempty" json:"payment_details,omitempty"`
	OrderDate      time.Time             `bson:"order_date" json:"order_date"`
	DeliveryDate   *time.Time            `bson:"delivery_date,omitempty" json:"delivery_date,omitempty"`
	Status         OrderStatus           `bson:"status" json:"status"`
	CreatedAt      time.Time             `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time             `bson:"updatedAt,omitempty" json:"updatedAt"`
}
