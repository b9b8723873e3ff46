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

// attributeRepository implements repository.AttributeRepository on the
// attributes collection.
type attributeRepository struct {
	coll *mongo.Collection
}

// NewAttributeRepository is the constructor for attributeRepository.
func NewAttributeRepository(db *mongo.Database) repository.AttributeRepository {
	return &attributeRepository{coll: db.Collection(collAttributes)}
}

func (r *attributeRepository) Create(ctx context.Context, attribute *entity.Attribute) error {
	now := time.Now()
	attribute.CreatedAt = now
	attribute.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, attribute); err != nil {
		return errors.Wrap(err, "failed to insert attribute")
	}

	return nil
}

func (r *attributeRepository) FindByUID(ctx context.Context, uid int64) (*entity.Attribute, error) {
	var attribute entity.Attribute
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&attribute); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAttributeNotFound
		}

		return nil, errors.Wrap(err, "failed to find attribute")
	}

	return &attribute, nil
}

func (r *attributeRepository) List(ctx context.Context, skip, limit int64) ([]*entity.Attribute, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list attributes")
	}

	var attributes []*entity.Attribute
	if err := cursor.All(ctx, &attributes); err != nil {
		return nil, errors.Wrap(err, "failed to decode attributes")
	}

	return attributes, nil
}

func (r *attributeRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})

	return count, errors.Wrap(err, "failed to count attributes")
}

func (r *attributeRepository) UpdateByUID(ctx context.Context, uid int64, patch repository.AttributePatch) (*entity.Attribute, error) {
	set := bson.M{}
	setField(set, "name", patch.Name)
	setField(set, "status", patch.Status)

	var attribute entity.Attribute
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": touch(set)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&attribute)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAttributeNotFound
		}

		return nil, errors.Wrap(err, "failed to update attribute")
	}

	return &attribute, nil
}

func (r *attributeRepository) DeleteByUID(ctx context.Context, uid int64) (*entity.Attribute, error) {
	var attribute entity.Attribute
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"uid": uid}).Decode(&attribute); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAttributeNotFound
		}

		return nil, errors.Wrap(err, "failed to delete attribute")
	}

	return &attribute, nil
}
