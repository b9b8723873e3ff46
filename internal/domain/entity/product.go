package entity

import "time"

// ProductStatus marks stock availability.
type ProductStatus string

const (
	ProductStatusInStock    ProductStatus = "instock"
	ProductStatusOutOfStock ProductStatus = "outofstock"
)

// ProductStatuses lists every valid product status, used for filter validation.
var ProductStatuses = []ProductStatus{ProductStatusInStock, ProductStatusOutOfStock}

// ProductDetail pairs an attribute with a variant by value. Both sides
// are referenced by uid, not by document relation.
type ProductDetail struct {
	AttributeUID int64 `bson:"attribute_uid" json:"attribute_uid"`
	VariantUID   int64 `bson:"variant_uid" json:"variant_uid"`
}

// Product is a catalog item.
type Product struct {
	UID            int64           `bson:"uid" json:"uid"`
	Name           string          `bson:"name" json:"name"`
	Images         []string        `bson:"images" json:"images"`
	Description    string          `bson:"description" json:"description"`
	ProductDetails []ProductDetail `bson:"product_details" json:"product_details"`
	Price          float64         `bson:"price" json:"price"`
	Discount       float64         `bson:"discount,omitempty" json:"discount"`
	Quantity       int             `bson:"quantity" json:"quantity"`
	Status         ProductStatus   `bson:"status" json:"status"`
	CreatedAt      time.Time       `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updatedAt,omitempty" json:"updatedAt"`
}
