package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes backs the list sort orders: newest-first for projects,
// experience and achievements, category for skills, newest-first for contacts.
func CreateIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	byCollection := map[string][]mongo.IndexModel{
		"projects": {
			{
				Keys:    bson.D{{Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_created_at"),
			},
		},
		"skills": {
			{
				Keys:    bson.D{{Key: "category", Value: 1}},
				Options: options.Index().SetName("idx_category"),
			},
		},
		"experiences": {
			{
				Keys:    bson.D{{Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_created_at"),
			},
		},
		"achievements": {
			{
				Keys:    bson.D{{Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_created_at"),
			},
		},
		"contacts": {
			{
				Keys:    bson.D{{Key: "submittedAt", Value: -1}},
				Options: options.Index().SetName("idx_submitted_at"),
			},
		},
	}

	for name, indexes := range byCollection {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %v", name, err)
		}
	}

	return nil
}
