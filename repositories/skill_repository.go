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

type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	GetAll(ctx context.Context) ([]models.Skill, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Skill, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Skill, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type skillRepository struct {
	collection *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) SkillRepository {
	return &skillRepository{
		collection: db.Collection("skills"),
	}
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	skill.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, skill)
	return err
}

// GetAll returns every skill ordered by category, so the public page can
// render grouped sections in one pass.
func (r *skillRepository) GetAll(ctx context.Context) ([]models.Skill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	skills := []models.Skill{}
	if err = cursor.All(ctx, &skills); err != nil {
		return nil, err
	}

	return skills, nil
}

func (r *skillRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Skill, error) {
	var skill models.Skill
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&skill)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &skill, nil
}

func (r *skillRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Skill, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var skill models.Skill
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&skill)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &skill, nil
}

func (r *skillRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}
