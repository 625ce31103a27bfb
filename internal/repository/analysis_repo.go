package repository

import (
	"context"
	"time"

	"hackfest-backend/internal/database"
	"hackfest-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type AnalysisRepo struct {
	collection *mongo.Collection
}

func NewAnalysisRepo() *AnalysisRepo {
	return &AnalysisRepo{
		collection: database.GetCollection("analyses"),
	}
}

func (r *AnalysisRepo) Create(ctx context.Context, run *models.AnalysisRun) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	result, err := r.collection.InsertOne(ctx, run)
	if err != nil {
		return err
	}
	run.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// Latest returns the most recent run, or nil if none exists.
func (r *AnalysisRepo) Latest(ctx context.Context) (*models.AnalysisRun, error) {
	var run models.AnalysisRun
	err := r.collection.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	).Decode(&run)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// EnsureIndexes creates necessary indexes for the analyses collection
func (r *AnalysisRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	return err
}
