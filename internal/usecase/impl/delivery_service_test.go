package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
	domainerrors "github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/errors"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/repository"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func createDeliveryInput(orderUID int64) usecase.CreateDeliveryInput {
	return usecase.CreateDeliveryInput{
		OrderUID:           orderUID,
		TrackingNumber:     "TRK-100",
		DeliveryDate:       time.Now().Add(48 * time.Hour),
		DeliveryAddrLine:   "12 Mirpur Road",
		DeliveryCity:       "Dhaka",
		DeliveryState:      "Dhaka",
		DeliveryCountry:    "Bangladesh",
		DeliveryPostalCode: 1207,
	}
}

func TestCreateDelivery_ConfirmsPendingOrderAndInserts(t *testing.T) {
	var confirmedUID int64
	var confirmedStatus entity.OrderStatus
	var inserted *entity.Delivery

	tx := &stubTxManager{
		orders: &stubOrderRepo{
			FindByUIDFn: func(_ context.Context, uid int64) (*entity.Order, error) {
				return &entity.Order{UID: uid, Status: entity.OrderStatusPending}, nil
			},
			UpdateStatusFn: func(_ context.Context, uid int64, status entity.OrderStatus) error {
				confirmedUID = uid
				confirmedStatus = status

				return nil
			},
		},
		deliveries: &stubDeliveryRepo{
			CreateFn: func(_ context.Context, delivery *entity.Delivery) error {
				inserted = delivery

				return nil
			},
		},
	}

	srv := NewDeliveryService(tx, tx.deliveries, discardLogger())

	delivery, err := srv.CreateDelivery(context.Background(), createDeliveryInput(9876543210))
	require.NoError(t, err)

	assert.Equal(t, int64(9876543210), confirmedUID)
	assert.Equal(t, entity.OrderStatusConfirmed, confirmedStatus)
	require.NotNil(t, inserted)
	assert.Equal(t, delivery, inserted)
	assert.Equal(t, entity.DeliveryStatusPending, delivery.Status)
	assert.Equal(t, int64(9876543210), delivery.OrderUID)
	assert.NotZero(t, delivery.UID)
}

func TestCreateDelivery_OrderMissing(t *testing.T) {
	tx := &stubTxManager{
		orders: &stubOrderRepo{
			FindByUIDFn: func(_ context.Context, _ int64) (*entity.Order, error) {
				return nil, repository.ErrOrderNotFound
			},
		},
		deliveries: &stubDeliveryRepo{},
	}

	srv := NewDeliveryService(tx, tx.deliveries, discardLogger())

	_, err := srv.CreateDelivery(context.Background(), createDeliveryInput(1))
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestCreateDelivery_OrderNotPending(t *testing.T) {
	for _, status := range []entity.OrderStatus{
		entity.OrderStatusConfirmed,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			tx := &stubTxManager{
				orders: &stubOrderRepo{
					FindByUIDFn: func(_ context.Context, uid int64) (*entity.Order, error) {
						return &entity.Order{UID: uid, Status: status}, nil
					},
				},
				deliveries: &stubDeliveryRepo{},
			}

			srv := NewDeliveryService(tx, tx.deliveries, discardLogger())

			_, err := srv.CreateDelivery(context.Background(), createDeliveryInput(7))
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "ORDER_NOT_PENDING", appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), string(status))
		})
	}
}

func TestCreateDelivery_DuplicateKey(t *testing.T) {
	tx := &stubTxManager{
		orders: &stubOrderRepo{
			FindByUIDFn: func(_ context.Context, uid int64) (*entity.Order, error) {
				return &entity.Order{UID: uid, Status: entity.OrderStatusPending}, nil
			},
			UpdateStatusFn: func(_ context.Context, _ int64, _ entity.OrderStatus) error {
				return nil
			},
		},
		deliveries: &stubDeliveryRepo{
			CreateFn: func(_ context.Context, _ *entity.Delivery) error {
				return repository.ErrDuplicateKey
			},
		},
	}

	srv := NewDeliveryService(tx, tx.deliveries, discardLogger())

	_, err := srv.CreateDelivery(context.Background(), createDeliveryInput(7))
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryExists)
}

func TestUpdateDelivery_GuardsOnlyAndReturnsStoredDelivery(t *testing.T) {
	stored := &entity.Delivery{UID: 1111111111, OrderUID: 2222222222, TrackingNumber: "TRK-1"}

	tx := &stubTxManager{
		orders: &stubOrderRepo{
			FindByUIDFn: func(_ context.Context, uid int64) (*entity.Order, error) {
				return &entity.Order{UID: uid, Status: entity.OrderStatusPending}, nil
			},
		},
		deliveries: &stubDeliveryRepo{
			FindByUIDFn: func(_ context.Context, _ int64) (*entity.Delivery, error) {
				return stored, nil
			},
		},
	}

	srv := NewDeliveryService(tx, tx.deliveries, discardLogger())

	newTracking := "TRK-REPLACED"
	delivery, err := srv.UpdateDelivery(context.Background(), "1111111111", usecase.UpdateDeliveryInput{
		TrackingNumber: &newTracking,
	})
	require.NoError(t, err)

	// The patch must not be applied.
	assert.Equal(t, stored, delivery)
	assert.Equal(t, "TRK-1", delivery.TrackingNumber)
}

func TestUpdateDelivery_ParentOrderConfirmed(t *testing.T) {
	tx := &stubTxManager{
		orders: &stubOrderRepo{
			FindByUIDFn: func(_ context.Context, uid int64) (*entity.Order, error) {
				return &entity.Order{UID: uid, Status: entity.OrderStatusConfirmed}, nil
			},
		},
		deliveries: &stubDeliveryRepo{
			FindByUIDFn: func(_ context.Context, uid int64) (*entity.Delivery, error) {
				return &entity.Delivery{UID: uid, OrderUID: 5}, nil
			},
		},
	}

	srv := NewDeliveryService(tx, tx.deliveries, discardLogger())

	_, err := srv.UpdateDelivery(context.Background(), "42", usecase.UpdateDeliveryInput{})
	assert.ErrorIs(t, err, domainerrors.ErrOrderAlreadyConfirmed)
}

func TestUpdateDelivery_OnlyConfirmedParentIsRejected(t *testing.T) {
	// Every parent state except confirmed passes the guard.
	for _, status := range []entity.OrderStatus{
		entity.OrderStatusPending,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			stored := &entity.Delivery{UID: 42, OrderUID: 5, TrackingNumber: "TRK-1"}

			tx := &stubTxManager{
				orders: &stubOrderRepo{
					FindByUIDFn: func(_ context.Context, uid int64) (*entity.Order, error) {
						return &entity.Order{UID: uid, Status: status}, nil
					},
				},
				deliveries: &stubDeliveryRepo{
					FindByUIDFn: func(_ context.Context, _ int64) (*entity.Delivery, error) {
						return stored, nil
					},
				},
			}

			srv := NewDeliveryService(tx, tx.deliveries, discardLogger())

			delivery, err := srv.UpdateDelivery(context.Background(), "42", usecase.UpdateDeliveryInput{})
			require.NoError(t, err)
			assert.Equal(t, stored, delivery)
		})
	}
}

func TestUpdateDelivery_DeliveryMissing(t *testing.T) {
	tx := &stubTxManager{
		orders: &stubOrderRepo{},
		deliveries: &stubDeliveryRepo{
			FindByUIDFn: func(_ context.Context, _ int64) (*entity.Delivery, error) {
				return nil, repository.ErrDeliveryNotFound
			},
		},
	}

	srv := NewDeliveryService(tx, tx.deliveries, discardLogger())

	_, err := srv.UpdateDelivery(context.Background(), "42", usecase.UpdateDeliveryInput{})
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryNotFound)
}

func TestListDeliveries_EmptyResultIsNotFound(t *testing.T) {
	deliveries := &stubDeliveryRepo{
		ListFn: func(_ context.Context, _ repository.DeliveryFilter, _, _ int64) ([]*entity.Delivery, error) {
			return nil, nil
		},
	}

	srv := NewDeliveryService(&stubTxManager{}, deliveries, discardLogger())

	_, err := srv.ListDeliveries(context.Background(), usecase.DeliveryListQuery{})
	assert.ErrorIs(t, err, domainerrors.ErrNoDeliveriesFound)
}

func TestListDeliveries_InvalidStatusFilter(t *testing.T) {
	srv := NewDeliveryService(&stubTxManager{}, &stubDeliveryRepo{}, discardLogger())

	_, err := srv.ListDeliveries(context.Background(), usecase.DeliveryListQuery{Status: "teleported"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestListDeliveries_ParsesNumericFilters(t *testing.T) {
	var captured repository.DeliveryFilter

	deliveries := &stubDeliveryRepo{
		ListFn: func(_ context.Context, filter repository.DeliveryFilter, _, _ int64) ([]*entity.Delivery, error) {
			captured = filter

			return []*entity.Delivery{{UID: 1}}, nil
		},
		CountFn: func(_ context.Context, _ repository.DeliveryFilter) (int64, error) {
			return 1, nil
		},
	}

	srv := NewDeliveryService(&stubTxManager{}, deliveries, discardLogger())

	out, err := srv.ListDeliveries(context.Background(), usecase.DeliveryListQuery{
		OrderUID:   "9876543210",
		PostalCode: "1207",
	})
	require.NoError(t, err)

	require.NotNil(t, captured.OrderUID)
	assert.Equal(t, int64(9876543210), *captured.OrderUID)
	require.NotNil(t, captured.PostalCode)
	assert.Equal(t, 1207, *captured.PostalCode)
	assert.Equal(t, int64(1), out.Meta.Total)
}
