package entity

import "time"

// AttributeStatus marks whether an attribute is selectable.
type AttributeStatus string

const (
	AttributeStatusActive   AttributeStatus = "active"
	AttributeStatusInactive AttributeStatus = "inactive"
)

// Attribute is a product attribute, e.g. "color" or "size".
type Attribute struct {
	UID       int64           `bson:"uid" json:"uid"`
	Name      string          `bson:"name" json:"name"`
	Status    AttributeStatus `bson:"status" json:"status"`
	CreatedAt time.Time       `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time       `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// VariantStatus marks whether a variant is selectable.
type VariantStatus string

const (
	VariantStatusActive   VariantStatus = "active"
	VariantStatusInactive VariantStatus = "inactive"
)

// Variant is a concrete value of an attribute, e.g. "red" for "color".
type Variant struct {
	UID          int64         `bson:"uid" json:"uid"`
	AttributeUID int64         `bson:"attribute_uid" json:"attribute_uid"`
	Name         string        `bson:"name" json:"name"`
	Status       VariantStatus `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt,omitempty" json:"updatedAt"`
}
