package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

type MongoTokenRepository struct {
	collection *mongo.Collection
}

func NewMongoTokenRepository(collection *mongo.Collection) *MongoTokenRepository {
	return &MongoTokenRepository{collection: collection}
}

var _ contract.ITokenRepository = (*MongoTokenRepository)(nil)

func (r *MongoTokenRepository) CreateToken(ctx context.Context, token *entity.Token) error {
	_, err := r.collection.InsertOne(ctx, token)
	return err
}

// GetTokenByUserID returns the newest token for the user.
func (r *MongoTokenRepository) GetTokenByUserID(ctx context.Context, userID string) (*entity.Token, error) {
	var token entity.Token
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "token_type": entity.TokenTypeRefresh}, opts).Decode(&token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *MongoTokenRepository) UpdateToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"token_hash": tokenHash,
		"expires_at": expiresAt,
		"revoke":     false,
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *MongoTokenRepository) RevokeToken(ctx context.Context, id string) error {
	// Idempotent: revoking an absent token is a no-op.
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"revoke": true}})
	return err
}
