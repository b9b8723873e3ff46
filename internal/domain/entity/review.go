package entity

import "time"

// Review is a customer rating for a product.
type Review struct {
	UID        int64     `bson:"uid" json:"uid"`
	ProductUID int64     `bson:"product_uid" json:"product_uid"`
	UserName   string    `bson:"user_name" json:"user_name"`
	Rating     float64   `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment" json:"comment"`
	CreatedAt  time.Time `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`
}
