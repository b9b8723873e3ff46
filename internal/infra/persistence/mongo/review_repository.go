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

// reviewRepository implements repository.ReviewRepository on the
// reviews collection.
type reviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &reviewRepository{coll: db.Collection(collReviews)}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return errors.Wrap(err, "failed to insert review")
	}

	return nil
}

func (r *reviewRepository) FindByUID(ctx context.Context, uid int64) (*entity.Review, error) {
	var review entity.Review
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return &review, nil
}

func (r *reviewRepository) List(ctx context.Context, filter repository.ReviewFilter, skip, limit int64) ([]*entity.Review, error) {
	cursor, err := r.coll.Find(ctx, buildReviewFilter(filter), options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	var reviews []*entity.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, errors.Wrap(err, "failed to decode reviews")
	}

	return reviews, nil
}

func (r *reviewRepository) Count(ctx context.Context, filter repository.ReviewFilter) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, buildReviewFilter(filter))

	return count, errors.Wrap(err, "failed to count reviews")
}

// ListRatings projects the rating of every matching review. The rating
// summary averages over the whole filtered set, not the current page,
// so this deliberately takes no skip or limit.
func (r *reviewRepository) ListRatings(ctx context.Context, filter repository.ReviewFilter) ([]float64, error) {
	cursor, err := r.coll.Find(ctx, buildReviewFilter(filter),
		options.Find().SetProjection(bson.M{"rating": 1}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	var docs []struct {
		Rating float64 `bson:"rating"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode ratings")
	}

	ratings := make([]float64, 0, len(docs))
	for _, doc := range docs {
		ratings = append(ratings, doc.Rating)
	}

	return ratings, nil
}

func (r *reviewRepository) UpdateByUID(ctx context.Context, uid int64, patch repository.ReviewPatch) (*entity.Review, error) {
	set := bson.M{}
	setField(set, "rating", patch.Rating)
	setField(set, "comment", patch.Comment)

	var review entity.Review
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"uid": uid},
		bson.M{"$set": touch(set)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to update review")
	}

	return &review, nil
}

func (r *reviewRepository) DeleteByUID(ctx context.Context, uid int64) (*entity.Review, error) {
	var review entity.Review
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"uid": uid}).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to delete review")
	}

	return &review, nil
}
