package usecase

import (
	"context"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// CreateVariantInput defines the data required to add a variant. The
// parent attribute must exist.
type CreateVariantInput struct {
	Name         string               `json:"name" validate:"required"`
	AttributeUID int64                `json:"attribute_uid" validate:"required"`
	Status       entity.VariantStatus `json:"status"`
}

// UpdateVariantInput carries the fields a variant update may set.
type UpdateVariantInput struct {
	Name         *string               `json:"name"`
	AttributeUID *int64                `json:"attribute_uid"`
	Status       *entity.VariantStatus `json:"status"`
}

// VariantListQuery carries the raw search parameters for variant listings.
type VariantListQuery struct {
	PageQuery

	AttributeUID string
	Name         string
	Status       string
}

// VariantListOutput is one page of variants with its metadata.
type VariantListOutput struct {
	Variants []*entity.Variant `json:"variants"`
	Meta     PageMeta          `json:"meta"`
}

// VariantUsecase defines the interface for variant operations.
type VariantUsecase interface {
	GetVariant(ctx context.Context, uid string) (*entity.Variant, error)
	ListVariants(ctx context.Context, query VariantListQuery) (*VariantListOutput, error)
	ListAllVariants(ctx context.Context) ([]*entity.Variant, error)
	CreateVariant(ctx context.Context, input CreateVariantInput) (*entity.Variant, error)
	UpdateVariant(ctx context.Context, uid string, input UpdateVariantInput) (*entity.Variant, error)
	DeleteVariant(ctx context.Context, uid string) (*entity.Variant, error)
}
