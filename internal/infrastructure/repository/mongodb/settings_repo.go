package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
)

const seedFlagID = "seeded"

// MongoSettingsRepository persists the seed-guard flag in a settings
// collection.
type MongoSettingsRepository struct {
	collection *mongo.Collection
}

func NewMongoSettingsRepository(collection *mongo.Collection) *MongoSettingsRepository {
	return &MongoSettingsRepository{collection: collection}
}

var _ contract.ISettingsRepository = (*MongoSettingsRepository)(nil)

func (r *MongoSettingsRepository) WasSeeded(ctx context.Context) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"_id": seedFlagID}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *MongoSettingsRepository) MarkSeeded(ctx context.Context) error {
	_, err := r.collection.InsertOne(ctx, bson.M{"_id": seedFlagID})
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}
