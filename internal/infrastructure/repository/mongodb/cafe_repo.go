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

type MongoCafeRepository struct {
	collection *mongo.Collection
}

func NewMongoCafeRepository(collection *mongo.Collection) *MongoCafeRepository {
	return &MongoCafeRepository{collection: collection}
}

var _ contract.ICafeRepository = (*MongoCafeRepository)(nil)

func (r *MongoCafeRepository) CreateCafe(ctx context.Context, cafe *entity.Cafe) error {
	_, err := r.collection.InsertOne(ctx, cafe)
	return err
}

func (r *MongoCafeRepository) GetCafeByID(ctx context.Context, id string) (*entity.Cafe, error) {
	var cafe entity.Cafe
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cafe)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &cafe, nil
}

func (r *MongoCafeRepository) ListCafes(ctx context.Context) ([]entity.Cafe, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	cafes := []entity.Cafe{}
	if err := cursor.All(ctx, &cafes); err != nil {
		return nil, err
	}
	return cafes, nil
}

func (r *MongoCafeRepository) UpdateCafeMood(ctx context.Context, id string, mood entity.Mood) (*entity.Cafe, error) {
	filter := bson.M{"_id": id}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"current_mood": mood}})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, entity.ErrNotFound
	}

	var cafe entity.Cafe
	if err := r.collection.FindOne(ctx, filter).Decode(&cafe); err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (r *MongoCafeRepository) UpdateCafeDetails(ctx context.Context, id string, patch entity.CafeUpdate) (*entity.Cafe, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.Photo != nil {
		set["photo"] = *patch.Photo
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

	var cafe entity.Cafe
	if err := r.collection.FindOne(ctx, filter).Decode(&cafe); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &cafe, nil
}
