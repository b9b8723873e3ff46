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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo   repository.ProductRepository
	attributeRepo repository.AttributeRepository
	variantRepo   repository.VariantRepository
	logger        *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	attributeRepo repository.AttributeRepository,
	variantRepo repository.VariantRepository,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo:   productRepo,
		attributeRepo: attributeRepo,
		variantRepo:   variantRepo,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProduct returns the product with the given uid.
func (srv *productService) GetProduct(ctx context.Context, uid string) (*entity.Product, error) {
	productUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByUID(ctx, productUID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts returns a filtered, paginated page of products.
func (srv *productService) ListProducts(ctx context.Context, query usecase.ProductListQuery) (*usecase.ProductListOutput, error) {
	page, limit, err := parsePagination(query.PageQuery)
	if err != nil {
		return nil, err
	}

	filter, err := buildProductFilter(query)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.List(ctx, filter, skipOf(page, limit), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	if products == nil {
		products = []*entity.Product{}
	}

	total, err := srv.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	return &usecase.ProductListOutput{
		Products: products,
		Meta:     usecase.NewPageMeta(page, limit, total),
	}, nil
}

// CreateProduct adds a catalog item. Every referenced attribute and
// variant must exist; references are by value, so this is the only
// place they are checked.
func (srv *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	if err := srv.checkDetails(ctx, input.ProductDetails); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entity.ProductStatusInStock
	}

	product := &entity.Product{
		UID:            util.GenerateUID(),
		Name:           input.Name,
		Images:         input.Images,
		Description:    input.Description,
		ProductDetails: input.ProductDetails,
		Price:          input.Price,
		Discount:       input.Discount,
		Quantity:       input.Quantity,
		Status:         status,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.log(ctx).Info("Created product", slog.Int64("uid", product.UID), slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct applies a patch to a product.
func (srv *productService) UpdateProduct(ctx context.Context, uid string, input usecase.UpdateProductInput) (*entity.Product, error) {
	productUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	if input.ProductDetails != nil {
		if err := srv.checkDetails(ctx, input.ProductDetails); err != nil {
			return nil, err
		}
	}

	product, err := srv.productRepo.UpdateByUID(ctx, productUID, repository.ProductPatch{
		Name:           input.Name,
		Images:         input.Images,
		Description:    input.Description,
		ProductDetails: input.ProductDetails,
		Price:          input.Price,
		Discount:       input.Discount,
		Quantity:       input.Quantity,
		Status:         input.Status,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}
	srv.log(ctx).Info("Updated product", slog.Int64("uid", productUID))

	return product, nil
}

// DeleteProduct removes a product and returns the deleted document.
func (srv *productService) DeleteProduct(ctx context.Context, uid string) (*entity.Product, error) {
	productUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.DeleteByUID(ctx, productUID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to delete product")
	}
	srv.log(ctx).Info("Deleted product", slog.Int64("uid", productUID))

	return product, nil
}

// checkDetails verifies each attribute/variant pair referenced by a
// product.
func (srv *productService) checkDetails(ctx context.Context, details []entity.ProductDetail) error {
	for _, detail := range details {
		if _, err := srv.attributeRepo.FindByUID(ctx, detail.AttributeUID); err != nil {
			if errors.Is(err, repository.ErrAttributeNotFound) {
				return domainerrors.ErrAttributeNotFound
			}

			return errors.Wrap(err, "failed to find attribute")
		}

		if _, err := srv.variantRepo.FindByUID(ctx, detail.VariantUID); err != nil {
			if errors.Is(err, repository.ErrVariantNotFound) {
				return domainerrors.ErrVariantNotFound
			}

			return errors.Wrap(err, "failed to find variant")
		}
	}

	return nil
}

// buildProductFilter parses the raw product search parameters into a
// typed filter.
func buildProductFilter(query usecase.ProductListQuery) (repository.ProductFilter, error) {
	status, err := parseProductStatus(query.Status)
	if err != nil {
		return repository.ProductFilter{}, err
	}

	priceMin, err := parseOptionalFloat("price_min", query.PriceMin)
	if err != nil {
		return repository.ProductFilter{}, err
	}

	priceMax, err := parseOptionalFloat("price_max", query.PriceMax)
	if err != nil {
		return repository.ProductFilter{}, err
	}

	return repository.ProductFilter{
		Status:   status,
		Name:     query.Name,
		PriceMin: priceMin,
		PriceMax: priceMax,
	}, nil
}
