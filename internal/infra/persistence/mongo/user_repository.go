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

// userRepository implements repository.UserRepository on the users
// collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(collUsers)}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return errors.Wrap(err, "failed to insert user")
	}

	return nil
}

func (r *userRepository) FindByCID(ctx context.Context, cid int64) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"cid": cid})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) findOne(ctx context.Context, query bson.M) (*entity.User, error) {
	var user entity.User
	if err := r.coll.FindOne(ctx, query).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return &user, nil
}

func (r *userRepository) List(ctx context.Context, skip, limit int64) ([]*entity.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})

	return count, errors.Wrap(err, "failed to count users")
}

func (r *userRepository) UpdateByCID(ctx context.Context, cid int64, patch repository.UserPatch) (*entity.User, error) {
	set := bson.M{}
	setField(set, "image", patch.Image)
	setField(set, "firstName", patch.FirstName)
	setField(set, "lastName", patch.LastName)
	setField(set, "password", patch.Password)
	setField(set, "phone", patch.Phone)
	setField(set, "address", patch.Address)
	setField(set, "is_verified", patch.IsVerified)
	setField(set, "status", patch.Status)
	setField(set, "role", patch.Role)

	var user entity.User
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"cid": cid},
		bson.M{"$set": touch(set)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return &user, nil
}

func (r *userRepository) DeleteByCIDs(ctx context.Context, cids []int64) (int64, error) {
	if len(cids) == 0 {
		return 0, nil
	}

	result, err := r.coll.DeleteMany(ctx, bson.M{"cid": bson.M{"$in": cids}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete users")
	}

	return result.DeletedCount, nil
}
