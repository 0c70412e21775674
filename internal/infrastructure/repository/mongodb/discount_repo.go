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

type MongoDiscountRepository struct {
	collection *mongo.Collection
}

func NewMongoDiscountRepository(collection *mongo.Collection) *MongoDiscountRepository {
	return &MongoDiscountRepository{collection: collection}
}

var _ contract.IDiscountRepository = (*MongoDiscountRepository)(nil)

func (r *MongoDiscountRepository) CreateDiscount(ctx context.Context, discount *entity.Discount) error {
	_, err := r.collection.InsertOne(ctx, discount)
	return err
}

func (r *MongoDiscountRepository) GetDiscountByID(ctx context.Context, id string) (*entity.Discount, error) {
	var discount entity.Discount
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&discount)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &discount, nil
}

func (r *MongoDiscountRepository) ListDiscounts(ctx context.Context) ([]entity.Discount, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoDiscountRepository) ListDiscountsByCafe(ctx context.Context, cafeID string) ([]entity.Discount, error) {
	return r.list(ctx, bson.M{"cafe_id": cafeID})
}

// list returns discounts in creation order; eligibility tie-breaks rely on
// this ordering.
func (r *MongoDiscountRepository) list(ctx context.Context, filter bson.M) ([]entity.Discount, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	discounts := []entity.Discount{}
	if err := cursor.All(ctx, &discounts); err != nil {
		return nil, err
	}
	return discounts, nil
}

func (r *MongoDiscountRepository) UpdateDiscount(ctx context.Context, id string, patch entity.DiscountUpdate) (*entity.Discount, error) {
	set := bson.M{}
	if patch.Percentage != nil {
		set["percentage"] = *patch.Percentage
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ValidUntil != nil {
		set["valid_until"] = *patch.ValidUntil
	}
	if patch.ApplicableFor != nil {
		set["applicable_for"] = patch.ApplicableFor
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}

	filter := bson.M{"_id": id}
	if len(set) > 0 {
		result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, entity.ErrNotFound
		}
	}

	var discount entity.Discount
	if err := r.collection.FindOne(ctx, filter).Decode(&discount); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &discount, nil
}

func (r *MongoDiscountRepository) DeleteDiscount(ctx context.Context, id string) error {
	// Idempotent: deleting an absent discount is a no-op.
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
