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

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetAll(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Contact, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type contactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(db *mongo.Database) ContactRepository {
	return &contactRepository{
		collection: db.Collection("contacts"),
	}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	contact.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, contact)
	return err
}

// GetAll returns every message, newest submission first.
func (r *contactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contacts := []models.Contact{}
	if err = cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}

	return contacts, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	var contact models.Contact
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &contact, nil
}

func (r *contactRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Contact, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var contact models.Contact
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &contact, nil
}

func (r *contactRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return result.DeletedCount > 0, nil
}
