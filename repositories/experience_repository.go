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

type ExperienceRepository interface {
	Create(ctx context.Context, experience *models.Experience) error
	GetAll(ctx context.Context) ([]models.Experience, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Experience, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type experienceRepository struct {
	collection *mongo.Collection
}

func NewExperienceRepository(db *mongo.Database) ExperienceRepository {
	return &experienceRepository{
		collection: db.Collection("experiences"),
	}
}

func (r *experienceRepository) Create(ctx context.Context, experience *models.Experience) error {
	experience.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, experience)
	return err
}

func (r *experienceRepository) GetAll(ctx context.Context) ([]models.Experience, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	experiences := []models.Experience{}
	if err = cursor.All(ctx, &experiences); err != nil {
		return nil, err
	}

	return experiences, nil
}

func (r *experienceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error) {
	var experience models.Experience
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&experience)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &experience, nil
}

func (r *experienceRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Experience, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var experience models.Experience
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&experience)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &experience, nil
}

func (r *experienceRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}
