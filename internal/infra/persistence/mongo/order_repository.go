package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/entity"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/repository"
)

// orderRepository implements repository.OrderRepository on the orders
// collection.
type orderRepository struct {
	coll *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{coll: db.Collection(collOrders)}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return errors.Wrap(err, "failed to insert order")
	}

	return nil
}

func (r *orderRepository) FindByUID(ctx context.Context, uid int64) (*entity.Order, error) {
	var order entity.Order
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return &order, nil
}

func (r *orderRepository) AggregateByUID(ctx context.Context, uid int64) (*entity.AggregatedOrder, error) {
	pipeline := buildOrderPipeline(bson.M{"uid": uid}, 0, 0)

	orders, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, repository.ErrOrderNotFound
	}

	return orders[0], nil
}

func (r *orderRepository) AggregateList(ctx context.Context, filter repository.OrderFilter, skip, limit int64) ([]*entity.AggregatedOrder, error) {
	pipeline := buildOrderPipeline(buildOrderFilter(filter), skip, limit)

	return r.aggregate(ctx, pipeline)
}

func (r *orderRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*entity.AggregatedOrder, error) {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders")
	}

	var orders []*entity.AggregatedOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, errors.Wrap(err, "failed to decode aggregated orders")
	}

	return orders, nil
}

func (r *orderRepository) Count(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, buildOrderFilter(filter))

	return count, errors.Wrap(err, "failed to count orders")
}

func (r *orderRepository) UpdateByUID(ctx context.Context, uid int64, patch repository.OrderPatch) (*entity.Order, error) {
	set := bson.M{}
	setField(set, "status", patch.Status)
	setField(set, "delivery_date", patch.DeliveryDate)
	setField(set, "address_details", patch.AddressDetails)
	setField(set, "payment_details", patch.PaymentDetails)

	var order entity.Order
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": touch(set)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update order")
	}

	return &order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, uid int64, status entity.OrderStatus) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": touch(bson.M{"status": status})},
	)
	if err != nil {
		return errors.Wrap(err, "failed to update order status")
	}
	if result.MatchedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) DeleteByUID(ctx context.Context, uid int64) (*entity.Order, error) {
	var order entity.Order
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"uid": uid}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to delete order")
	}

	return &order, nil
}

// buildOrderPipeline assembles the denormalization pipeline: unwind the
// line items, join each to its product (itself joined to attributes and
// variants), then regroup into one document per order. Every unwind
// preserves empty and missing arrays so an order with no products, or a
// line whose product was removed, still comes back intact. A limit of
// zero skips pagination, which also skips the sort stage used for
// stable page order.
func buildOrderPipeline(match bson.M, skip, limit int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$products",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         collProducts,
			"localField":   "products.product_uid",
			"foreignField": "uid",
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$lookup", Value: bson.M{
					"from":         collAttributes,
					"localField":   "product_details.attribute_uid",
					"foreignField": "uid",
					"as":           "attribute_details",
				}}},
				bson.D{{Key: "$lookup", Value: bson.M{
					"from":         collVariants,
					"localField":   "product_details.variant_uid",
					"foreignField": "uid",
					"as":           "variant_details",
				}}},
			},
			"as": "products.details",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$products.details",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":             "$_id",
			"uid":             bson.M{"$first": "$uid"},
			"cid":             bson.M{"$first": "$cid"},
			"products":        bson.M{"$push": "$products"},
			"address_details": bson.M{"$first": "$address_details"},
			"payment_details": bson.M{"$first": "$payment_details"},
			"order_date":      bson.M{"$first": "$order_date"},
			"delivery_date":   bson.M{"$first": "$delivery_date"},
			"status":          bson.M{"$first": "$status"},
			"createdAt":       bson.M{"$first": "$createdAt"},
			"updatedAt":       bson.M{"$first": "$updatedAt"},
		}}},
	}

	if limit > 0 {
		pipeline = append(pipeline,
			bson.D{{Key: "$sort", Value: bson.M{"order_date": -1}}},
			bson.D{{Key: "$skip", Value: skip}},
			bson.D{{Key: "$limit", Value: limit}},
		)
	}

	return pipeline
}
