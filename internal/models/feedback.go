package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const MaxOverallRating = 3

type Feedback struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string        `bson:"email" json:"email"`
	QuickFeedback string        `bson:"quick_feedback,omitempty" json:"quick_feedback,omitempty"`
	OverallRating int           `bson:"overall_rating" json:"overall_rating"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}
