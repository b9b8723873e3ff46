package usecase

import (
	"context"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// CreateProductInput defines the data required to add a catalog item.
type CreateProductInput struct {
	Name           string                 `json:"name" validate:"required"`
	Images         []string               `json:"images"`
	Description    string                 `json:"description"`
	ProductDetails []entity.ProductDetail `json:"product_details" validate:"dive"`
	Price          float64                `json:"price" validate:"required,gt=0"`
	Discount       float64                `json:"discount" validate:"gte=0"`
	Quantity       int                    `json:"quantity" validate:"gte=0"`
	Status         entity.ProductStatus   `json:"status"`
}

// UpdateProductInput carries the fields a product update may set.
type UpdateProductInput struct {
	Name           *string                `json:"name"`
	Images         []string               `json:"images"`
	Description    *string                `json:"description"`
	ProductDetails []entity.ProductDetail `json:"product_details"`
	Price          *float64               `json:"price"`
	Discount       *float64               `json:"discount"`
	Quantity       *int                   `json:"quantity"`
	Status         *entity.ProductStatus  `json:"status"`
}

// ProductListQuery carries the raw search parameters for product listings.
type ProductListQuery struct {
	PageQuery

	Name     string
	Status   string
	PriceMin string
	PriceMax string
}

// ProductListOutput is one page of products with its metadata.
type ProductListOutput struct {
	Products []*entity.Product `json:"products"`
	Meta     PageMeta          `json:"meta"`
}

// ProductUsecase defines the interface for catalog item operations.
type ProductUsecase interface {
	GetProduct(ctx context.Context, uid string) (*entity.Product, error)
	ListProducts(ctx context.Context, query ProductListQuery) (*ProductListOutput, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, uid string, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, uid string) (*entity.Product, error)
}
