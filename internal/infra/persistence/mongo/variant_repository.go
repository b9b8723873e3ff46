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

// variantRepository implements repository.VariantRepository on the
// variants collection.
type variantRepository struct {
	coll *mongo.Collection
}

// NewVariantRepository is the constructor for variantRepository.
func NewVariantRepository(db *mongo.Database) repository.VariantRepository {
	return &variantRepository{coll: db.Collection(collVariants)}
}

func (r *variantRepository) Create(ctx context.Context, variant *entity.Variant) error {
	now := time.Now()
	variant.CreatedAt = now
	variant.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, variant); err != nil {
		return errors.Wrap(err, "failed to insert variant")
	}

	return nil
}

func (r *variantRepository) FindByUID(ctx context.Context, uid int64) (*entity.Variant, error) {
	var variant entity.Variant
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&variant); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant")
	}

	return &variant, nil
}

func (r *variantRepository) List(ctx context.Context, filter repository.VariantFilter, skip, limit int64) ([]*entity.Variant, error) {
	return r.find(ctx, buildVariantFilter(filter), options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit),
	)
}

func (r *variantRepository) ListAll(ctx context.Context) ([]*entity.Variant, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *variantRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*entity.Variant, error) {
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list variants")
	}

	var variants []*entity.Variant
	if err := cursor.All(ctx, &variants); err != nil {
		return nil, errors.Wrap(err, "failed to decode variants")
	}

	return variants, nil
}

func (r *variantRepository) Count(ctx context.Context, filter repository.VariantFilter) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, buildVariantFilter(filter))

	return count, errors.Wrap(err, "failed to count variants")
}

func (r *variantRepository) UpdateByUID(ctx context.Context, uid int64, patch repository.VariantPatch) (*entity.Variant, error) {
	set := bson.M{}
	setField(set, "name", patch.Name)
	setField(set, "attribute_uid", patch.AttributeUID)
	setField(set, "status", patch.Status)

	var variant entity.Variant
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": touch(set)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&variant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to update variant")
	}

	return &variant, nil
}

func (r *variantRepository) DeleteByUID(ctx context.Context, uid int64) (*entity.Variant, error) {
	var variant entity.Variant
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"uid": uid}).Decode(&variant); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to delete variant")
	}

	return &variant, nil
}
