package repository

import (
	"context"
	"errors"

	"portfolioapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AchievementRepository interface {
	Create(ctx context.Context, achievement *models.Achievement) error
	GetAll(ctx context.Context) ([]models.Achievement, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Achievement, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Achievement, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type achievementRepository struct {
	collection *mongo.Collection
}

func NewAchievementRepository(db *mongo.Database) AchievementRepository {
	return &achievementRepository{
		collection: db.Collection("achievements"),
	}
}

func (r *achievementRepository) Create(ctx context.Context, achievement *models.Achievement) error {
	achievement.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, achievement)
	return err
}

func (r *achievementRepository) GetAll(ctx context.Context) ([]models.Achievement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	achievements := []models.Achievement{}
	if err = cursor.All(ctx, &achievements); err != nil {
		return nil, err
	}

	return achievements, nil
}

func (r *achievementRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Achievement, error) {
	var achievement models.Achievement
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&achievement)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &achievement, nil
}

func (r *achievementRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Achievement, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var achievement models.Achievement
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&achievement)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &achievement, nil
}

func (r *achievementRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}
