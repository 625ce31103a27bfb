package models

import (
	"time"

	"hackfest-backend/internal/sentiment"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AnalysisRun is a persisted sentiment analysis result.
type AnalysisRun struct {
	ID          bson.ObjectID              `bson:"_id,omitempty" json:"id"`
	RunID       string                     `bson:"run_id" json:"run_id"`
	Points      []sentiment.AnalysisPoint  `bson:"points" json:"points"`
	Correlation sentiment.Correlation      `bson:"correlation" json:"correlation"`
	Buckets     sentiment.BucketCounts     `bson:"buckets" json:"buckets"`
	Categories  map[sentiment.Category]int `bson:"categories" json:"categories"`
	Total       int                        `bson:"total" json:"total"`
	Processed   int                        `bson:"processed" json:"processed"`
	Complete    bool                       `bson:"complete" json:"complete"`
	ResetAt     *time.Time                 `bson:"reset_at,omitempty" json:"reset_at,omitempty"`
	CreatedAt   time.Time                  `bson:"created_at" json:"created_at"`
}
