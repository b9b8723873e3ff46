package usecase

import (
	"context"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
)

// CreateAttributeInput defines the data required to add an attribute.
type CreateAttributeInput struct {
	Name   string                 `json:"name" validate:"required"`
	Status entity.AttributeStatus `json:"status"`
}

// UpdateAttributeInput carries the fields an attribute update may set.
type UpdateAttributeInput struct {
	Name   *string                 `json:"name"`
	Status *entity.AttributeStatus `json:"status"`
}

// AttributeListOutput is one page of attributes with its metadata.
type AttributeListOutput struct {
	Attributes []*entity.Attribute `json:"attributes"`
	Meta       PageMeta            `json:"meta"`
}

// AttributeUsecase defines the interface for attribute operations.
type AttributeUsecase interface {
	GetAttribute(ctx context.Context, uid string) (*entity.Attribute, error)
	ListAttributes(ctx context.Context, page PageQuery) (*AttributeListOutput, error)
	CreateAttribute(ctx context.Context, input CreateAttributeInput) (*entity.Attribute, error)
	UpdateAttribute(ctx context.Context, uid string, input UpdateAttributeInput) (*entity.Attribute, error)
	DeleteAttribute(ctx context.Context, uid string) (*entity.Attribute, error)
}
