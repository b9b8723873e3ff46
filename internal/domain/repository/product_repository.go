package repository

import (
	"context"
	"errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// ErrProductNotFound is returned when no product matches the given filter.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter carries the optional search predicates for product listings.
type ProductFilter struct {
	Status   *entity.ProductStatus
	Name     string
	PriceMin *float64
	PriceMax *float64
}

// ProductPatch carries the fields a product update may set.
type ProductPatch struct {
	Name           *string
	Images         []string
	Description    *string
	ProductDetails []entity.ProductDetail
	Price          *float64
	Discount       *float64
	Quantity       *int
	Status         *entity.ProductStatus
}

// ProductRepository is the persistence gateway for the products collection.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByUID(ctx context.Context, uid int64) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter, skip, limit int64) ([]*entity.Product, error)
	Count(ctx context.Context, filter ProductFilter) (int64, error)
	UpdateByUID(ctx context.Context, uid int64, patch ProductPatch) (*entity.Product, error)
	DeleteByUID(ctx context.Context, uid int64) (*entity.Product, error)
}
