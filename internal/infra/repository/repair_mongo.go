package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/movilfix/repairshop-api/internal/models"
)

// RepairMongoRepository backs the repair lifecycle manager. It spans the
// repairs collection plus the customer/user/part lookups repairs resolve
// against; each write touches a single document.
type RepairMongoRepository struct {
	repairs   *mongo.Collection
	customers *mongo.Collection
	users     *mongo.Collection
	parts     *mongo.Collection
}

func NewRepairMongoRepository(
	repairs *mongo.Collection,
	customers *mongo.Collection,
	users *mongo.Collection,
	parts *mongo.Collection,
) *RepairMongoRepository {
	return &RepairMongoRepository{
		repairs:   repairs,
		customers: customers,
		users:     users,
		parts:     parts,
	}
}

// --------------------------------------------------
// Repair
// --------------------------------------------------

func (r *RepairMongoRepository) CreateRepair(
	ctx context.Context,
	rep *models.Repair,
) error {

	now := time.Now()
	rep.CreatedAt = now
	rep.UpdatedAt = now
	if rep.Parts == nil {
		rep.Parts = []models.RepairPart{}
	}

	_, err := r.repairs.InsertOne(ctx, rep)
	return err
}

func (r *RepairMongoRepository) GetRepair(
	ctx context.Context,
	id string,
) (*models.Repair, error) {

	var rep models.Repair
	if err := r.repairs.FindOne(ctx, bson.M{"_id": id}).Decode(&rep); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &rep, nil
}

func (r *RepairMongoRepository) UpdateRepair(
	ctx context.Context,
	rep *models.Repair,
) error {

	rep.UpdatedAt = time.Now()

	res, err := r.repairs.ReplaceOne(ctx, bson.M{"_id": rep.ID}, rep)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *RepairMongoRepository) ListRepairs(ctx context.Context) ([]models.Repair, error) {
	return r.findRepairs(ctx, bson.M{})
}

func (r *RepairMongoRepository) ListRepairsByIDs(
	ctx context.Context,
	ids []string,
) ([]models.Repair, error) {

	if len(ids) == 0 {
		return []models.Repair{}, nil
	}
	return r.findRepairs(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *RepairMongoRepository) findRepairs(ctx context.Context, filter bson.M) ([]models.Repair, error) {
	cur, err := r.repairs.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.Repair, 0)
	for cur.Next(ctx) {
		var rep models.Repair
		if err := cur.Decode(&rep); err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, cur.Err()
}

// --------------------------------------------------
// Customer back-reference
// --------------------------------------------------

func (r *RepairMongoRepository) AppendCustomerRepair(
	ctx context.Context,
	customerID string,
	repairID string,
) error {

	res, err := r.customers.UpdateOne(ctx,
		bson.M{"_id": customerID},
		bson.M{"$push": bson.M{"repairs": repairID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Reference resolution
// --------------------------------------------------

func (r *RepairMongoRepository) CustomersByIDs(
	ctx context.Context,
	ids []string,
) (map[string]models.Customer, error) {

	out := make(map[string]models.Customer, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.customers.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var c models.Customer
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out[c.ID] = c
	}
	return out, cur.Err()
}

func (r *RepairMongoRepository) UsersByIDs(
	ctx context.Context,
	ids []string,
) (map[string]models.User, error) {

	out := make(map[string]models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	return out, cur.Err()
}

func (r *RepairMongoRepository) PartsByIDs(
	ctx context.Context,
	ids []string,
) (map[string]models.Part, error) {

	out := make(map[string]models.Part, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := r.parts.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var p models.Part
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out[p.ID] = p
	}
	return out, cur.Err()
}

// --------------------------------------------------
// Inventory
// --------------------------------------------------

func (r *RepairMongoRepository) DecrementPartStock(
	ctx context.Context,
	partID string,
	quantity int,
) error {

	res, err := r.parts.UpdateOne(ctx,
		bson.M{"_id": partID},
		bson.M{
			"$inc": bson.M{"stock.current": -quantity},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
