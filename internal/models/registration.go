package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Registration is a single attendee signed up for a workshop.
type Registration struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Phone     string        `bson:"phone,omitempty" json:"phone,omitempty"`
	College   string        `bson:"college,omitempty" json:"college,omitempty"`
	Workshop  string        `bson:"workshop" json:"workshop"`
	Payment   *Payment      `bson:"payment,omitempty" json:"payment,omitempty"`
	Manual    bool          `bson:"manual" json:"manual"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}
