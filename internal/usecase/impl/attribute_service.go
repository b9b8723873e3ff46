package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/context"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
	domainerrors "github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/errors"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/repository"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/util"
)

// attributeService implements the AttributeUsecase interface.
type attributeService struct {
	attributeRepo repository.AttributeRepository
	logger        *slog.Logger
}

// NewAttributeService is the constructor for attributeService.
func NewAttributeService(attributeRepo repository.AttributeRepository, logger *slog.Logger) usecase.AttributeUsecase {
	return &attributeService{attributeRepo: attributeRepo, logger: logger}
}

func (srv *attributeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *attributeService) GetAttribute(ctx context.Context, uid string) (*entity.Attribute, error) {
	attributeUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	attribute, err := srv.attributeRepo.FindByUID(ctx, attributeUID)
	if err != nil {
		if errors.Is(err, repository.ErrAttributeNotFound) {
			return nil, domainerrors.ErrAttributeNotFound
		}

		return nil, errors.Wrap(err, "failed to find attribute")
	}

	return attribute, nil
}

func (srv *attributeService) ListAttributes(ctx context.Context, pageQuery usecase.PageQuery) (*usecase.AttributeListOutput, error) {
	page, limit, err := parsePagination(pageQuery)
	if err != nil {
		return nil, err
	}

	attributes, err := srv.attributeRepo.List(ctx, skipOf(page, limit), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list attributes")
	}
	if attributes == nil {
		attributes = []*entity.Attribute{}
	}

	total, err := srv.attributeRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count attributes")
	}

	return &usecase.AttributeListOutput{
		Attributes: attributes,
		Meta:       usecase.NewPageMeta(page, limit, total),
	}, nil
}

func (srv *attributeService) CreateAttribute(ctx context.Context, input usecase.CreateAttributeInput) (*entity.Attribute, error) {
	status := input.Status
	if status == "" {
		status = entity.AttributeStatusActive
	}

	attribute := &entity.Attribute{
		UID:    util.GenerateUID(),
		Name:   input.Name,
		Status: status,
	}

	if err := srv.attributeRepo.Create(ctx, attribute); err != nil {
		return nil, errors.Wrap(err, "failed to create attribute")
	}
	srv.log(ctx).Info("Created attribute", slog.Int64("uid", attribute.UID), slog.String("name", attribute.Name))

	return attribute, nil
}

func (srv *attributeService) UpdateAttribute(ctx context.Context, uid string, input usecase.UpdateAttributeInput) (*entity.Attribute, error) {
	attributeUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	attribute, err := srv.attributeRepo.UpdateByUID(ctx, attributeUID, repository.AttributePatch{
		Name:   input.Name,
		Status: input.Status,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAttributeNotFound) {
			return nil, domainerrors.ErrAttributeNotFound
		}

		return nil, errors.Wrap(err, "failed to update attribute")
	}

	return attribute, nil
}

func (srv *attributeService) DeleteAttribute(ctx context.Context, uid string) (*entity.Attribute, error) {
	attributeUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	attribute, err := srv.attributeRepo.DeleteByUID(ctx, attributeUID)
	if err != nil {
		if errors.Is(err, repository.ErrAttributeNotFound) {
			return nil, domainerrors.ErrAttributeNotFound
		}

		return nil, errors.Wrap(err, "failed to delete attribute")
	}
	srv.log(ctx).Info("Deleted attribute", slog.Int64("uid", attributeUID))

	return attribute, nil
}
