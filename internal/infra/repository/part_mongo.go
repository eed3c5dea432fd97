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

type PartMongoRepository struct {
	coll *mongo.Collection
}

func NewPartMongoRepository(coll *mongo.Collection) *PartMongoRepository {
	return &PartMongoRepository{coll: coll}
}

func (r *PartMongoRepository) Create(
	ctx context.Context,
	p *models.Part,
) error {

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (r *PartMongoRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Part, error) {

	var p models.Part
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PartMongoRepository) GetBySKU(
	ctx context.Context,
	sku string,
) (*models.Part, error) {

	var p models.Part
	if err := r.coll.FindOne(ctx, bson.M{"sku": sku}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PartMongoRepository) Update(
	ctx context.Context,
	p *models.Part,
) error {

	p.UpdatedAt = time.Now()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
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

func (r *PartMongoRepository) Delete(
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

func (r *PartMongoRepository) List(ctx context.Context) ([]models.Part, error) {
	return r.find(ctx, bson.M{})
}

func (r *PartMongoRepository) Search(
	ctx context.Context,
	keyword string,
) ([]models.Part, error) {

	filter := bson.M{}
	if keyword != "" {
		pattern := regexp.QuoteMeta(keyword)
		filter = bson.M{"$or": bson.A{
			bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"sku": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"type": bson.M{"$regex": pattern, "$options": "i"}},
		}}
	}
	return r.find(ctx, filter)
}

// ListLowStock returns every part at or below its minimum stock level.
func (r *PartMongoRepository) ListLowStock(ctx context.Context) ([]models.Part, error) {
	return r.find(ctx, bson.M{
		"$expr": bson.M{"$lte": bson.A{"$stock.current", "$stock.minimum"}},
	})
}

func (r *PartMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Part, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Part, 0)
	for cur.Next(ctx) {
		var p models.Part
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}
