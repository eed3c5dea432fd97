package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/movilfix/repairshop-api/internal/models"
)

type CustomerMongoRepository struct {
	coll *mongo.Collection
}

func NewCustomerMongoRepository(coll *mongo.Collection) *CustomerMongoRepository {
	return &CustomerMongoRepository{coll: coll}
}

func (r *CustomerMongoRepository) Create(
	ctx context.Context,
	c *models.Customer,
) error {

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Repairs == nil {
		c.Repairs = []string{}
	}

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *CustomerMongoRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Customer, error) {

	var c models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerMongoRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.Customer, error) {

	var c models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerMongoRepository) Update(
	ctx context.Context,
	c *models.Customer,
) error {

	c.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateKey
		}
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CustomerMongoRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CustomerMongoRepository) List(ctx context.Context) ([]models.Customer, error) {
	return r.find(ctx, bson.M{})
}

// Search matches a case-insensitive substring against name, email or phone.
// An empty keyword returns all customers.
func (r *CustomerMongoRepository) Search(
	ctx context.Context,
	keyword string,
) ([]models.Customer, error) {

	filter := bson.M{}
	if keyword != "" {
		pattern := regexp.QuoteMeta(keyword)
		filter = bson.M{"$or": bson.A{
			bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"phone": bson.M{"$regex": pattern, "$options": "i"}},
		}}
	}
	return r.find(ctx, filter)
}

func (r *CustomerMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Customer, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Customer, 0)
	for cur.Next(ctx) {
		var c models.Customer
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, cur.Err()
}
