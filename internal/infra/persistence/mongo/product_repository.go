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

// productRepository implements repository.ProductRepository on the
// products collection.
type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{coll: db.Collection(collProducts)}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return errors.Wrap(err, "failed to insert product")
	}

	return nil
}

func (r *productRepository) FindByUID(ctx context.Context, uid int64) (*entity.Product, error) {
	var product entity.Product
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return &product, nil
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter, skip, limit int64) ([]*entity.Product, error) {
	cursor, err := r.coll.Find(ctx, buildProductFilter(filter), options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	return products, nil
}

func (r *productRepository) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, buildProductFilter(filter))

	return count, errors.Wrap(err, "failed to count products")
}

func (r *productRepository) UpdateByUID(ctx context.Context, uid int64, patch repository.ProductPatch) (*entity.Product, error) {
	set := bson.M{}
	setField(set, "name", patch.Name)
	setField(set, "description", patch.Description)
	setField(set, "price", patch.Price)
	setField(set, "discount", patch.Discount)
	setField(set, "quantity", patch.Quantity)
	setField(set, "status", patch.Status)
	if patch.Images != nil {
		set["images"] = patch.Images
	}
	if patch.ProductDetails != nil {
		set["product_details"] = patch.ProductDetails
	}

	var product entity.Product
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": touch(set)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return &product, nil
}

func (r *productRepository) DeleteByUID(ctx context.Context, uid int64) (*entity.Product, error) {
	var product entity.Product
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"uid": uid}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to delete product")
	}

	return &product, nil
}
