package repository

import (
	"context"
	"errors"
	"time"

	"hackfest-backend/internal/database"
	"hackfest-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrDuplicate is returned when a unique index rejects an insert.
var ErrDuplicate = errors.New("duplicate record")

type TeamRepo struct {
	collection *mongo.Collection
}

func NewTeamRepo() *TeamRepo {
	return &TeamRepo{
		collection: database.GetCollection("teams"),
	}
}

func (r *TeamRepo) Create(ctx context.Context, team *models.Team) error {
	team.CreatedAt = time.Now()
	team.UpdatedAt = team.CreatedAt
	if team.Status == "" {
		team.Status = models.TeamStatusPending
	}
	result, err := r.collection.InsertOne(ctx, team)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	team.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *TeamRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepo) FindByLeaderEmail(ctx context.Context, email string) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, bson.M{"leader.email": email}).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// List returns all teams in registration order. Ranking imposes its own order.
func (r *TeamRepo) List(ctx context.Context) ([]models.Team, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	teams := []models.Team{}
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// SaveScores overwrites the full sub-score set, derived total and comments.
// Returns (nil, nil) when the team does not exist.
func (r *TeamRepo) SaveScores(ctx context.Context, id bson.ObjectID, scores models.Scores, comments string) (*models.Team, error) {
	total := scores.Total()
	return r.findAndSet(ctx, id, bson.M{
		"scores":   scores,
		"score":    total,
		"comments": comments,
	})
}

func (r *TeamRepo) UpdateStatus(ctx context.Context, id bson.ObjectID, status models.TeamStatus) (*models.Team, error) {
	return r.findAndSet(ctx, id, bson.M{"status": status})
}

func (r *TeamRepo) SetPayment(ctx context.Context, id bson.ObjectID, payment models.Payment) (*models.Team, error) {
	return r.findAndSet(ctx, id, bson.M{"payment": payment})
}

func (r *TeamRepo) findAndSet(ctx context.Context, id bson.ObjectID, fields bson.M) (*models.Team, error) {
	fields["updated_at"] = time.Now()
	var team models.Team
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// Delete reports whether a team was removed.
func (r *TeamRepo) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// EnsureIndexes creates necessary indexes for the teams collection
func (r *TeamRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "leader.email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "members.email", Value: 1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
