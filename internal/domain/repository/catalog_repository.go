package repository

import (
	"context"
	"errors"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// Sentinel errors for the attributes and variants collections.
var (
	ErrAttributeNotFound = errors.New("attribute not found")
	ErrVariantNotFound   = errors.New("variant not found")
)

// AttributePatch carries the fields an attribute update may set.
type AttributePatch struct {
	Name   *string
	Status *entity.AttributeStatus
}

// AttributeRepository is the persistence gateway for the attributes collection.
type AttributeRepository interface {
	Create(ctx context.Context, attribute *entity.Attribute) error
	FindByUID(ctx context.Context, uid int64) (*entity.Attribute, error)
	List(ctx context.Context, skip, limit int64) ([]*entity.Attribute, error)
	Count(ctx context.Context) (int64, error)
	UpdateByUID(ctx context.Context, uid int64, patch AttributePatch) (*entity.Attribute, error)
	DeleteByUID(ctx context.Context, uid int64) (*entity.Attribute, error)
}

// VariantFilter carries the optional search predicates for variant listings.
type VariantFilter struct {
	AttributeUID *int64
	Name         string
	Status       *entity.VariantStatus
}

// VariantPatch carries the fields a variant update may set.
type VariantPatch struct {
	Name         *string
	AttributeUID *int64
	Status       *entity.VariantStatus
}

// VariantRepository is the persistence gateway for the variants collection.
type VariantRepository interface {
	Create(ctx context.Context, variant *entity.Variant) error
	FindByUID(ctx context.Context, uid int64) (*entity.Variant, error)
	List(ctx context.Context, filter VariantFilter, skip, limit int64) ([]*entity.Variant, error)
	ListAll(ctx context.Context) ([]*entity.Variant, error)
	Count(ctx context.Context, filter VariantFilter) (int64, error)
	UpdateByUID(ctx context.Context, uid int64, patch VariantPatch) (*entity.Variant, error)
	DeleteByUID(ctx context.Context, uid int64) (*entity.Variant, error)
}
