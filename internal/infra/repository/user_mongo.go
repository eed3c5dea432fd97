package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/movilfix/repairshop-api/internal/models"
)

type UserMongoRepository struct {
	coll *mongo.Collection
}

func NewUserMongoRepository(coll *mongo.Collection) *UserMongoRepository {
	return &UserMongoRepository{coll: coll}
}

func (r *UserMongoRepository) Create(
	ctx context.Context,
	u *models.User,
) error {

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *UserMongoRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserMongoRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var u models.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
