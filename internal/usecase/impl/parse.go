// Package impl contains the application-specific business rules implementations.
package impl

import (
	"slices"
	"strconv"
	"time"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
	domainerrors "github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/errors"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
)

const (
	defaultPage  int64 = 1
	defaultLimit int64 = 25
)

// parsePagination validates the raw page and limit parameters before
// any query runs. Both must be positive integers; absent values fall
// back to the defaults. A malformed value is rejected, never silently
// corrected.
func parsePagination(query usecase.PageQuery) (page, limit int64, err error) {
	page = defaultPage
	if query.Page != "" {
		page, err = strconv.ParseInt(query.Page, 10, 64)
		if err != nil || page < 1 {
			return 0, 0, domainerrors.ErrInvalidPagination.WithDetails("page must be a positive integer")
		}
	}

	limit = defaultLimit
	if query.Limit != "" {
		limit, err = strconv.ParseInt(query.Limit, 10, 64)
		if err != nil || limit < 1 {
			return 0, 0, domainerrors.ErrInvalidPagination.WithDetails("limit must be a positive integer")
		}
	}

	return page, limit, nil
}

// parseUID parses a required numeric identifier from the query string.
func parseUID(name, raw string) (int64, error) {
	if raw == "" {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " is required")
	}

	uid, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a numeric identifier")
	}

	return uid, nil
}

// parseOptionalInt64 parses an optional numeric filter value.
func parseOptionalInt64(name, raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be numeric")
	}

	return &value, nil
}

// parseOptionalInt parses an optional numeric filter value.
func parseOptionalInt(name, raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be numeric")
	}

	return &value, nil
}

// parseOptionalFloat parses an optional numeric filter value.
func parseOptionalFloat(name, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be numeric")
	}

	return &value, nil
}

// parseOptionalDate parses an optional date filter value, accepting
// RFC 3339 timestamps or plain yyyy-mm-dd dates.
func parseOptionalDate(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if value, err := time.Parse(layout, raw); err == nil {
			return &value, nil
		}
	}

	return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be an RFC 3339 timestamp or yyyy-mm-dd date")
}

// parseOrderStatus validates an optional order status filter against
// the status enum.
func parseOrderStatus(raw string) (*entity.OrderStatus, error) {
	if raw == "" {
		return nil, nil
	}

	status := entity.OrderStatus(raw)
	if !slices.Contains(entity.OrderStatuses, status) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of the order statuses")
	}

	return &status, nil
}

// parseDeliveryStatus validates an optional delivery status filter
// against the status enum.
func parseDeliveryStatus(raw string) (*entity.DeliveryStatus, error) {
	if raw == "" {
		return nil, nil
	}

	status := entity.DeliveryStatus(raw)
	if !slices.Contains(entity.DeliveryStatuses, status) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be one of the delivery statuses")
	}

	return &status, nil
}

// parseProductStatus validates an optional product status filter
// against the status enum.
func parseProductStatus(raw string) (*entity.ProductStatus, error) {
	if raw == "" {
		return nil, nil
	}

	status := entity.ProductStatus(raw)
	if !slices.Contains(entity.ProductStatuses, status) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be instock or outofstock")
	}

	return &status, nil
}

// parseVariantStatus validates an optional variant status filter.
func parseVariantStatus(raw string) (*entity.VariantStatus, error) {
	if raw == "" {
		return nil, nil
	}

	status := entity.VariantStatus(raw)
	if status != entity.VariantStatusActive && status != entity.VariantStatusInactive {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be active or inactive")
	}

	return &status, nil
}

// skipOf converts one-based page numbers to a document offset.
func skipOf(page, limit int64) int64 {
	return (page - 1) * limit
}
