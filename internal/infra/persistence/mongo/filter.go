package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/repository"
)

// regexContains builds a case-insensitive substring predicate.
func regexContains(value string) bson.M {
	return bson.M{"$regex": value, "$options": "i"}
}

// buildOrderFilter translates the order search predicates into a query
// document. Absent fields are omitted so they do not constrain the query.
func buildOrderFilter(filter repository.OrderFilter) bson.M {
	query := bson.M{}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.CID != nil {
		query["cid"] = *filter.CID
	}
	if filter.OrderDateFrom != nil {
		query["order_date"] = bson.M{"$gte": *filter.OrderDateFrom}
	}
	if filter.DeliveryDateFrom != nil {
		query["delivery_date"] = bson.M{"$gte": *filter.DeliveryDateFrom}
	}
	if filter.City != "" {
		query["address_details.city"] = regexContains(filter.City)
	}

	return query
}

// buildDeliveryFilter translates the delivery search predicates into a
// query document.
func buildDeliveryFilter(filter repository.DeliveryFilter) bson.M {
	query := bson.M{}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.OrderUID != nil {
		query["order_uid"] = *filter.OrderUID
	}
	if filter.TrackingNumber != "" {
		query["tracking_number"] = regexContains(filter.TrackingNumber)
	}
	if filter.City != "" {
		query["delivery_city"] = regexContains(filter.City)
	}
	if filter.State != "" {
		query["delivery_state"] = regexContains(filter.State)
	}
	if filter.Country != "" {
		query["delivery_country"] = regexContains(filter.Country)
	}
	if filter.PostalCode != nil {
		query["delivery_postal_code"] = *filter.PostalCode
	}

	return query
}

// buildProductFilter translates the product search predicates into a
// query document. Min and max price fold into one range predicate.
func buildProductFilter(filter repository.ProductFilter) bson.M {
	query := bson.M{}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.Name != "" {
		query["name"] = regexContains(filter.Name)
	}
	if filter.PriceMin != nil || filter.PriceMax != nil {
		price := bson.M{}
		if filter.PriceMin != nil {
			price["$gte"] = *filter.PriceMin
		}
		if filter.PriceMax != nil {
			price["$lte"] = *filter.PriceMax
		}
		query["price"] = price
	}

	return query
}

// buildVariantFilter translates the variant search predicates into a
// query document.
func buildVariantFilter(filter repository.VariantFilter) bson.M {
	query := bson.M{}
	if filter.AttributeUID != nil {
		query["attribute_uid"] = *filter.AttributeUID
	}
	if filter.Name != "" {
		query["name"] = regexContains(filter.Name)
	}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}

	return query
}

// buildReviewFilter translates the review search predicates into a
// query document.
func buildReviewFilter(filter repository.ReviewFilter) bson.M {
	query := bson.M{}
	if filter.ProductUID != nil {
		query["product_uid"] = *filter.ProductUID
	}

	return query
}

// setField adds a non-nil patch field to the update document.
func setField[T any](set bson.M, key string, value *T) {
	if value != nil {
		set[key] = *value
	}
}

// touch stamps the update document so updatedAt tracks every write.
func touch(set bson.M) bson.M {
	set["updatedAt"] = time.Now()

	return set
}
