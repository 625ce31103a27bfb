package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type TeamStatus string

const (
	TeamStatusPending  TeamStatus = "pending"
	TeamStatusApproved TeamStatus = "approved"
	TeamStatusRejected TeamStatus = "rejected"
)

func (s TeamStatus) Valid() bool {
	switch s {
	case TeamStatusPending, TeamStatusApproved, TeamStatusRejected:
		return true
	}
	return false
}

type Person struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	College string `bson:"college,omitempty" json:"college,omitempty"`
}

type Payment struct {
	TransactionID string    `bson:"transaction_id" json:"transaction_id"`
	ProofURL      string    `bson:"proof_url" json:"proof_url"`
	Verified      bool      `bson:"verified" json:"verified"`
	SubmittedAt   time.Time `bson:"submitted_at" json:"submitted_at"`
}

// Judging criteria, each scored 1..10 by a judge.
const (
	MinCriterionScore = 1
	MaxCriterionScore = 10
)

type Scores struct {
	Innovation   int `bson:"innovation" json:"innovation"`
	Technical    int `bson:"technical" json:"technical"`
	Design       int `bson:"design" json:"design"`
	Impact       int `bson:"impact" json:"impact"`
	Presentation int `bson:"presentation" json:"presentation"`
}

func (s Scores) Values() []int {
	return []int{s.Innovation, s.Technical, s.Design, s.Impact, s.Presentation}
}

func (s Scores) Total() float64 {
	total := 0
	for _, v := range s.Values() {
		total += v
	}
	return float64(total)
}

type Team struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	TeamName  string        `bson:"team_name" json:"team_name"`
	Leader    Person        `bson:"leader" json:"leader"`
	Members   []Person      `bson:"members" json:"members"`
	Track     string        `bson:"track,omitempty" json:"track,omitempty"`
	Payment   *Payment      `bson:"payment,omitempty" json:"payment,omitempty"`
	Scores    *Scores       `bson:"scores,omitempty" json:"scores,omitempty"`
	Score     *float64      `bson:"score,omitempty" json:"score"`
	Comments  string        `bson:"comments,omitempty" json:"comments,omitempty"`
	Status    TeamStatus    `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// Emails lists the leader's and every member's address, in that order.
func (t *Team) Emails() []string {
	emails := make([]string, 0, len(t.Members)+1)
	if t.Leader.Email != "" {
		emails = append(emails, t.Leader.Email)
	}
	for _, m := range t.Members {
		if m.Email != "" {
			emails = append(emails, m.Email)
		}
	}
	return emails
}

// ScoreValue is the judged total, 0 when unscored.
func (t *Team) ScoreValue() float64 {
	if t.Score == nil {
		return 0
	}
	return *t.Score
}
