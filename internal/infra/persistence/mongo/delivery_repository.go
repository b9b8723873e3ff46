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

// deliveryRepository implements repository.DeliveryRepository on the
// deliveries collection.
type deliveryRepository struct {
	coll *mongo.Collection
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *mongo.Database) repository.DeliveryRepository {
	return &deliveryRepository{coll: db.Collection(collDeliveries)}
}

func (r *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	now := time.Now()
	delivery.CreatedAt = now
	delivery.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, delivery); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateKey
		}

		return errors.Wrap(err, "failed to insert delivery")
	}

	return nil
}

func (r *deliveryRepository) FindByUID(ctx context.Context, uid int64) (*entity.Delivery, error) {
	var delivery entity.Delivery
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&delivery); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery")
	}

	return &delivery, nil
}

func (r *deliveryRepository) List(ctx context.Context, filter repository.DeliveryFilter, skip, limit int64) ([]*entity.Delivery, error) {
	cursor, err := r.coll.Find(ctx, buildDeliveryFilter(filter), options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	var deliveries []*entity.Delivery
	if err := cursor.All(ctx, &deliveries); err != nil {
		return nil, errors.Wrap(err, "failed to decode deliveries")
	}

	return deliveries, nil
}

func (r *deliveryRepository) Count(ctx context.Context, filter repository.DeliveryFilter) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, buildDeliveryFilter(filter))

	return count, errors.Wrap(err, "failed to count deliveries")
}

func (r *deliveryRepository) DeleteByUID(ctx context.Context, uid int64) (*entity.Delivery, error) {
	var delivery entity.Delivery
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"uid": uid}).Decode(&delivery); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to delete delivery")
	}

	return &delivery, nil
}
