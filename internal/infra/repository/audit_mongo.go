package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/movilfix/repairshop-api/internal/models"
)

type AuditMongoRepository struct {
	coll *mongo.Collection
}

func NewAuditMongoRepository(coll *mongo.Collection) *AuditMongoRepository {
	return &AuditMongoRepository{coll: coll}
}

func (r *AuditMongoRepository) SaveAuditLog(
	ctx context.Context,
	entry *models.AuditLog,
) error {

	_, err := r.coll.InsertOne(ctx, entry)
	return err
}

// ListRecent returns the newest entries first, capped at limit.
func (r *AuditMongoRepository) ListRecent(
	ctx context.Context,
	limit int64,
) ([]models.AuditLog, error) {

	cur, err := r.coll.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.AuditLog, 0)
	for cur.Next(ctx) {
		var entry models.AuditLog
		if err := cur.Decode(&entry); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, cur.Err()
}
