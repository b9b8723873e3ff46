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

// variantService implements the VariantUsecase interface.
type variantService struct {
	variantRepo   repository.VariantRepository
	attributeRepo repository.AttributeRepository
	logger        *slog.Logger
}

// NewVariantService is the constructor for variantService.
func NewVariantService(
	variantRepo repository.VariantRepository,
	attributeRepo repository.AttributeRepository,
	logger *slog.Logger,
) usecase.VariantUsecase {
	return &variantService{
		variantRepo:   variantRepo,
		attributeRepo: attributeRepo,
		logger:        logger,
	}
}

func (srv *variantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *variantService) GetVariant(ctx context.Context, uid string) (*entity.Variant, error) {
	variantUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	variant, err := srv.variantRepo.FindByUID(ctx, variantUID)
	if err != nil {
		if errors.Is(err, repository.ErrVariantNotFound) {
			return nil, domainerrors.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant")
	}

	return variant, nil
}

func (srv *variantService) ListVariants(ctx context.Context, query usecase.VariantListQuery) (*usecase.VariantListOutput, error) {
	page, limit, err := parsePagination(query.PageQuery)
	if err != nil {
		return nil, err
	}

	status, err := parseVariantStatus(query.Status)
	if err != nil {
		return nil, err
	}

	attributeUID, err := parseOptionalInt64("attribute_uid", query.AttributeUID)
	if err != nil {
		return nil, err
	}

	filter := repository.VariantFilter{
		AttributeUID: attributeUID,
		Name:         query.Name,
		Status:       status,
	}

	variants, err := srv.variantRepo.List(ctx, filter, skipOf(page, limit), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list variants")
	}
	if variants == nil {
		variants = []*entity.Variant{}
	}

	total, err := srv.variantRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count variants")
	}

	return &usecase.VariantListOutput{
		Variants: variants,
		Meta:     usecase.NewPageMeta(page, limit, total),
	}, nil
}

func (srv *variantService) ListAllVariants(ctx context.Context) ([]*entity.Variant, error) {
	variants, err := srv.variantRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list variants")
	}
	if variants == nil {
		variants = []*entity.Variant{}
	}

	return variants, nil
}

// CreateVariant adds a variant under an existing attribute.
func (srv *variantService) CreateVariant(ctx context.Context, input usecase.CreateVariantInput) (*entity.Variant, error) {
	if _, err := srv.attributeRepo.FindByUID(ctx, input.AttributeUID); err != nil {
		if errors.Is(err, repository.ErrAttributeNotFound) {
			return nil, domainerrors.ErrAttributeNotFound
		}

		return nil, errors.Wrap(err, "failed to find attribute")
	}

	status := input.Status
	if status == "" {
		status = entity.VariantStatusActive
	}

	variant := &entity.Variant{
		UID:          util.GenerateUID(),
		AttributeUID: input.AttributeUID,
		Name:         input.Name,
		Status:       status,
	}

	if err := srv.variantRepo.Create(ctx, variant); err != nil {
		return nil, errors.Wrap(err, "failed to create variant")
	}
	srv.log(ctx).Info("Created variant", slog.Int64("uid", variant.UID), slog.String("name", variant.Name))

	return variant, nil
}

func (srv *variantService) UpdateVariant(ctx context.Context, uid string, input usecase.UpdateVariantInput) (*entity.Variant, error) {
	variantUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	if input.AttributeUID != nil {
		if _, err := srv.attributeRepo.FindByUID(ctx, *input.AttributeUID); err != nil {
			if errors.Is(err, repository.ErrAttributeNotFound) {
				return nil, domainerrors.ErrAttributeNotFound
			}

			return nil, errors.Wrap(err, "failed to find attribute")
		}
	}

	variant, err := srv.variantRepo.UpdateByUID(ctx, variantUID, repository.VariantPatch{
		Name:         input.Name,
		AttributeUID: input.AttributeUID,
		Status:       input.Status,
	})
	if err != nil {
		if errors.Is(err, repository.ErrVariantNotFound) {
			return nil, domainerrors.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to update variant")
	}

	return variant, nil
}

func (srv *variantService) DeleteVariant(ctx context.Context, uid string) (*entity.Variant, error) {
	variantUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	variant, err := srv.variantRepo.DeleteByUID(ctx, variantUID)
	if err != nil {
		if errors.Is(err, repository.ErrVariantNotFound) {
			return nil, domainerrors.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to delete variant")
	}
	srv.log(ctx).Info("Deleted variant", slog.Int64("uid", variantUID))

	return variant, nil
}
