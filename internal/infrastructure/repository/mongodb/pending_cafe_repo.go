package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
	"github.com/PurpleArcher2/discounts-app/internal/domain/entity"
)

type MongoPendingCafeRepository struct {
	collection *mongo.Collection
}

func NewMongoPendingCafeRepository(collection *mongo.Collection) *MongoPendingCafeRepository {
	return &MongoPendingCafeRepository{collection: collection}
}

var _ contract.IPendingCafeRepository = (*MongoPendingCafeRepository)(nil)

func (r *MongoPendingCafeRepository) CreatePendingCafe(ctx context.Context, req *entity.PendingCafeRequest) error {
	_, err := r.collection.InsertOne(ctx, req)
	return err
}

func (r *MongoPendingCafeRepository) GetPendingCafeByID(ctx context.Context, id string) (*entity.PendingCafeRequest, error) {
	var req entity.PendingCafeRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *MongoPendingCafeRepository) GetPendingCafeByUserID(ctx context.Context, userID string) (*entity.PendingCafeRequest, error) {
	var req entity.PendingCafeRequest
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *MongoPendingCafeRepository) ListPendingCafes(ctx context.Context) ([]entity.PendingCafeRequest, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []entity.PendingCafeRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *MongoPendingCafeRepository) DeletePendingCafe(ctx context.Context, id string) error {
	// Idempotent: deleting an absent request is a no-op.
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
