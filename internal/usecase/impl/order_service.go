package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	deliverycontext "github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/context"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
	domainerrors "github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/errors"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/repository"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/util"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(orderRepo repository.OrderRepository, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{orderRepo: orderRepo, logger: logger}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrder returns the denormalized view of one order.
func (srv *orderService) GetOrder(ctx context.Context, uid string) (*entity.AggregatedOrder, error) {
	orderUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.AggregateByUID(ctx, orderUID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to aggregate order")
	}

	return order, nil
}

// ListOrders returns a filtered, paginated page of denormalized orders.
// An empty page is a valid result carrying only metadata.
func (srv *orderService) ListOrders(ctx context.Context, query usecase.OrderListQuery) (*usecase.OrderListOutput, error) {
	page, limit, err := parsePagination(query.PageQuery)
	if err != nil {
		return nil, err
	}

	filter, err := buildOrderFilter(query)
	if err != nil {
		return nil, err
	}

	return srv.list(ctx, filter, page, limit)
}

// ListUserOrders returns the denormalized orders of one customer.
func (srv *orderService) ListUserOrders(ctx context.Context, cid string, pageQuery usecase.PageQuery) (*usecase.OrderListOutput, error) {
	customerID, err := parseUID("cid", cid)
	if err != nil {
		return nil, err
	}

	page, limit, err := parsePagination(pageQuery)
	if err != nil {
		return nil, err
	}

	return srv.list(ctx, repository.OrderFilter{CID: &customerID}, page, limit)
}

func (srv *orderService) list(ctx context.Context, filter repository.OrderFilter, page, limit int64) (*usecase.OrderListOutput, error) {
	orders, err := srv.orderRepo.AggregateList(ctx, filter, skipOf(page, limit), limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders")
	}
	if orders == nil {
		orders = []*entity.AggregatedOrder{}
	}

	total, err := srv.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	return &usecase.OrderListOutput{
		Orders: orders,
		Meta:   usecase.NewPageMeta(page, limit, total),
	}, nil
}

// CreateOrder places a new pending order dated now.
func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		UID:            util.GenerateUID(),
		CID:            input.CID,
		Products:       input.Products,
		AddressDetails: input.AddressDetails,
		PaymentDetails: input.PaymentDetails,
		OrderDate:      time.Now(),
		DeliveryDate:   input.DeliveryDate,
		Status:         entity.OrderStatusPending,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}
	srv.log(ctx).Info("Created order", slog.Int64("uid", order.UID), slog.Int64("cid", order.CID))

	return order, nil
}

// UpdateOrder applies a generic patch to an order. The patch bypasses
// the handshake guard, so callers are trusted with status writes.
func (srv *orderService) UpdateOrder(ctx context.Context, uid string, input usecase.UpdateOrderInput) (*entity.Order, error) {
	orderUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.UpdateByUID(ctx, orderUID, repository.OrderPatch{
		Status:         input.Status,
		DeliveryDate:   input.DeliveryDate,
		AddressDetails: input.AddressDetails,
		PaymentDetails: input.PaymentDetails,
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order")
	}
	srv.log(ctx).Info("Updated order", slog.Int64("uid", orderUID))

	return order, nil
}

// DeleteOrder removes an order and returns the deleted document.
func (srv *orderService) DeleteOrder(ctx context.Context, uid string) (*entity.Order, error) {
	orderUID, err := parseUID("uid", uid)
	if err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.DeleteByUID(ctx, orderUID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to delete order")
	}
	srv.log(ctx).Info("Deleted order", slog.Int64("uid", orderUID))

	return order, nil
}

// buildOrderFilter parses the raw order search parameters into a typed
// filter. Numeric, date and enum values are validated, never passed
// through raw.
func buildOrderFilter(query usecase.OrderListQuery) (repository.OrderFilter, error) {
	status, err := parseOrderStatus(query.Status)
	if err != nil {
		return repository.OrderFilter{}, err
	}

	cid, err := parseOptionalInt64("cid", query.CID)
	if err != nil {
		return repository.OrderFilter{}, err
	}

	orderDate, err := parseOptionalDate("order_date", query.OrderDate)
	if err != nil {
		return repository.OrderFilter{}, err
	}

	deliveryDate, err := parseOptionalDate("delivery_date", query.DeliveryDate)
	if err != nil {
		return repository.OrderFilter{}, err
	}

	return repository.OrderFilter{
		Status:           status,
		CID:              cid,
		OrderDateFrom:    orderDate,
		DeliveryDateFrom: deliveryDate,
		City:             query.City,
	}, nil
}
