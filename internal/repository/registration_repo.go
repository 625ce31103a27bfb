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

type RegistrationRepo struct {
	collection *mongo.Collection
}

func NewRegistrationRepo() *RegistrationRepo {
	return &RegistrationRepo{
		collection: database.GetCollection("registrations"),
	}
}

func (r *RegistrationRepo) Create(ctx context.Context, reg *models.Registration) error {
	reg.CreatedAt = time.Now()
	reg.UpdatedAt = reg.CreatedAt
	result, err := r.collection.InsertOne(ctx, reg)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	reg.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *RegistrationRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Registration, error) {
	var reg models.Registration
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepo) List(ctx context.Context) ([]models.Registration, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	regs := []models.Registration{}
	if err := cursor.All(ctx, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// Update replaces the editable fields. Returns (nil, nil) when not found.
func (r *RegistrationRepo) Update(ctx context.Context, id bson.ObjectID, reg *models.Registration) (*models.Registration, error) {
	var updated models.Registration
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":       reg.Name,
			"email":      reg.Email,
			"phone":      reg.Phone,
			"college":    reg.College,
			"workshop":   reg.Workshop,
			"payment":    reg.Payment,
			"updated_at": time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &updated, nil
}

func (r *RegistrationRepo) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// EnsureIndexes creates necessary indexes for the registrations collection
func (r *RegistrationRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "workshop", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
