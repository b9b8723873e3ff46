package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/repository"
)

func TestBuildOrderFilter_Empty(t *testing.T) {
	assert.Equal(t, bson.M{}, buildOrderFilter(repository.OrderFilter{}))
}

func TestBuildOrderFilter_AllPredicates(t *testing.T) {
	status := entity.OrderStatusPending
	cid := int64(1234567890)
	orderFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	deliveryFrom := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	query := buildOrderFilter(repository.OrderFilter{
		Status:           &status,
		CID:              &cid,
		OrderDateFrom:    &orderFrom,
		DeliveryDateFrom: &deliveryFrom,
		City:             "dha",
	})

	assert.Equal(t, bson.M{
		"status":               status,
		"cid":                  cid,
		"order_date":           bson.M{"$gte": orderFrom},
		"delivery_date":        bson.M{"$gte": deliveryFrom},
		"address_details.city": bson.M{"$regex": "dha", "$options": "i"},
	}, query)
}

func TestBuildDeliveryFilter_TextPredicatesAreCaseInsensitive(t *testing.T) {
	query := buildDeliveryFilter(repository.DeliveryFilter{
		TrackingNumber: "TRK",
		City:           "dhaka",
		State:          "dhaka",
		Country:        "bang",
	})

	for _, key := range []string{"tracking_number", "delivery_city", "delivery_state", "delivery_country"} {
		predicate, ok := query[key].(bson.M)
		assert.True(t, ok, key)
		assert.Equal(t, "i", predicate["$options"], key)
	}
}

func TestBuildDeliveryFilter_ExactPredicates(t *testing.T) {
	status := entity.DeliveryStatusShipped
	orderUID := int64(9876543210)
	postalCode := 1207

	query := buildDeliveryFilter(repository.DeliveryFilter{
		Status:     &status,
		OrderUID:   &orderUID,
		PostalCode: &postalCode,
	})

	assert.Equal(t, bson.M{
		"status":               status,
		"order_uid":            orderUID,
		"delivery_postal_code": postalCode,
	}, query)
}

func TestBuildProductFilter_PriceRangeFolds(t *testing.T) {
	minPrice := 10.5
	maxPrice := 99.9

	query := buildProductFilter(repository.ProductFilter{PriceMin: &minPrice, PriceMax: &maxPrice})

	assert.Equal(t, bson.M{"price": bson.M{"$gte": minPrice, "$lte": maxPrice}}, query)
}

func TestBuildProductFilter_PriceMinOnly(t *testing.T) {
	minPrice := 10.0

	query := buildProductFilter(repository.ProductFilter{PriceMin: &minPrice})

	assert.Equal(t, bson.M{"price": bson.M{"$gte": minPrice}}, query)
}

func TestBuildVariantFilter(t *testing.T) {
	attributeUID := int64(1111111111)
	status := entity.VariantStatusActive

	query := buildVariantFilter(repository.VariantFilter{
		AttributeUID: &attributeUID,
		Name:         "red",
		Status:       &status,
	})

	assert.Equal(t, bson.M{
		"attribute_uid": attributeUID,
		"name":          bson.M{"$regex": "red", "$options": "i"},
		"status":        status,
	}, query)
}

func TestBuildReviewFilter(t *testing.T) {
	productUID := int64(2222222222)

	assert.Equal(t, bson.M{}, buildReviewFilter(repository.ReviewFilter{}))
	assert.Equal(t, bson.M{"product_uid": productUID}, buildReviewFilter(repository.ReviewFilter{ProductUID: &productUID}))
}

func TestTouch_StampsUpdatedAt(t *testing.T) {
	set := touch(bson.M{"status": entity.OrderStatusConfirmed})

	assert.Contains(t, set, "updatedAt")
	assert.Contains(t, set, "status")
}
