package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/context"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
	domainerrors "github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/errors"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/repository"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/util"
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	txManager    repository.TransactionManager
	deliveryRepo repository.DeliveryRepository
	logger       *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(
	txManager repository.TransactionManager,
	deliveryRepo repository.DeliveryRepository,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return &deliveryService{
		txManager:    txManager,
		deliveryRepo: deliveryRepo,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDelivery runs the order-delivery handshake in one transaction:
// the parent order must exist and be pending, the order flips to
// confirmed and the delivery is inserted. Either both writes land or
// neither does. Under concurrent attempts on the same order exactly one
// handshake wins; the loser observes a non-pending order or a duplicate
// delivery key.
func (srv *deliveryService) CreateDelivery(ctx context.Context, input usecase.CreateDeliveryInput) (*entity.Delivery, error) {
	srv.log(ctx).Info("Creating delivery", slog.Int64("order_uid", input.OrderUID))

	delivery := &entity.Delivery{
		UID:                util.GenerateUID(),
		OrderUID:           input.OrderUID,
		TrackingNumber:     input.TrackingNumber,
		DeliveryDate:       input.DeliveryDate,
		DeliveryAddrLine:   input.DeliveryAddrLine,
		DeliveryCity:       input.DeliveryCity,
		DeliveryState:      input.DeliveryState,
		DeliveryCountry:    input.DeliveryCountry,
		DeliveryPostalCode: input.DeliveryPostalCode,
		DeliveryManName:    input.DeliveryManName,
		DeliveryManPhone:   input.DeliveryManPhone,
		Note:               input.Note,
		Status:             entity.DeliveryStatusPending,
	}

	err := srv.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		order, err := repos.OrderRepo().FindByUID(ctx, input.OrderUID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		if order.Status != entity.OrderStatusPending {
			return domainerrors.ErrOrderNotPending.WithDetails(
				fmt.Sprintf("order %d is %s", order.UID, order.Status))
		}

		if err := repos.OrderRepo().UpdateStatus(ctx, order.UID, entity.OrderStatusConfirmed); err != nil {
			return errors.Wrap(err, "failed to confirm order")
		}

		if err := repos.DeliveryRepo().Create(ctx, delivery); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return domainerrors.ErrDeliveryExists
			}

			return errors.Wrap(err, "failed to insert delivery")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create delivery", slog.Int64("order_uid", input.OrderUID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Created delivery", slog.Int64("uid", delivery.UID), slog.Int64("order_uid", input.OrderUID))

	return delivery, nil
}

// UpdateDelivery re-validates an existing delivery against its parent
// order: both must exist and the order must not sit in confirmed. The
// patch itself is not applied; when every guard passes the stored
// delivery is returned unchanged.
func (srv *deliveryService) UpdateDelivery(ctx context.Context, uid string, _ usecase.UpdateDeliveryInput) (*entity.Delivery, error) {
	deliveryUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	var delivery *entity.Delivery

	err = srv.txManager.Execute(ctx, func(ctx context.Context, repos repository.RepositoryFactory) error {
		delivery, err = repos.DeliveryRepo().FindByUID(ctx, deliveryUID)
		if err != nil {
			if errors.Is(err, repository.ErrDeliveryNotFound) {
				return domainerrors.ErrDeliveryNotFound
			}

			return errors.Wrap(err, "failed to find delivery")
		}

		order, err := repos.OrderRepo().FindByUID(ctx, delivery.OrderUID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		if order.Status == entity.OrderStatusConfirmed {
			return domainerrors.ErrOrderAlreadyConfirmed.WithDetails(
				fmt.Sprintf("order %d is already confirmed", order.UID))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return delivery, nil
}

// GetDelivery returns the delivery with the given uid.
func (srv *deliveryService) GetDelivery(ctx context.Context, uid string) (*entity.Delivery, error) {
	deliveryUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	delivery, err := srv.deliveryRepo.FindByUID(ctx, deliveryUID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, domainerrors.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery")
	}

	return delivery, nil
}

// ListDeliveries returns a filtered, paginated page of deliveries. An
// empty result is reported as not found.
func (srv *deliveryService) ListDeliveries(ctx context.Context, query usecase.DeliveryListQuery) (*usecase.DeliveryListOutput, error) {
	page, limit, err := parsePagination(query.PageQuery)
	if err != nil {
		return nil, err
	}

	filter, err := buildDeliveryFilter(query)
	if err != nil {
		return nil, err
	}

	deliveries, err := srv.deliveryRepo.List(ctx, filter, skipOf(page, limit), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}
	if len(deliveries) == 0 {
		return nil, domainerrors.ErrNoDeliveriesFound
	}

	total, err := srv.deliveryRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count deliveries")
	}

	return &usecase.DeliveryListOutput{
		Deliveries: deliveries,
		Meta:       usecase.NewPageMeta(page, limit, total),
	}, nil
}

// DeleteDelivery removes a delivery and returns the deleted document.
func (srv *deliveryService) DeleteDelivery(ctx context.Context, uid string) (*entity.Delivery, error) {
	deliveryUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	delivery, err := srv.deliveryRepo.DeleteByUID(ctx, deliveryUID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, domainerrors.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to delete delivery")
	}
	srv.log(ctx).Info("Deleted delivery", slog.Int64("uid", deliveryUID))

	return delivery, nil
}

// buildDeliveryFilter parses the raw delivery search parameters into a
// typed filter. Numeric and enum values are validated, never passed
// through raw.
func buildDeliveryFilter(query usecase.DeliveryListQuery) (repository.DeliveryFilter, error) {
	status, err := parseDeliveryStatus(query.Status)
	if err != nil {
		return repository.DeliveryFilter{}, err
	}

	orderUID, err := parseOptionalInt64("order_uid", query.OrderUID)
	if err != nil {
		return repository.DeliveryFilter{}, err
	}

	postalCode, err := parseOptionalInt("postal_code", query.PostalCode)
	if err != nil {
		return repository.DeliveryFilter{}, err
	}

	return repository.DeliveryFilter{
		Status:         status,
		OrderUID:       orderUID,
		TrackingNumber: query.TrackingNumber,
		City:           query.City,
		State:          query.State,
		Country:        query.Country,
		PostalCode:     postalCode,
	}, nil
}
