package handlers

import (
	"context"

	"hackfest-backend/internal/models"
	"hackfest-backend/internal/sentiment"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// TeamStore is satisfied by *repository.TeamRepo.
type TeamStore interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Team, error)
	FindByLeaderEmail(ctx context.Context, email string) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
	SaveScores(ctx context.Context, id bson.ObjectID, scores models.Scores, comments string) (*models.Team, error)
	UpdateStatus(ctx context.Context, id bson.ObjectID, status models.TeamStatus) (*models.Team, error)
	SetPayment(ctx context.Context, id bson.ObjectID, payment models.Payment) (*models.Team, error)
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
}

// RegistrationStore is satisfied by *repository.RegistrationRepo.
type RegistrationStore interface {
	Create(ctx context.Context, reg *models.Registration) error
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Registration, error)
	List(ctx context.Context) ([]models.Registration, error)
	Update(ctx context.Context, id bson.ObjectID, reg *models.Registration) (*models.Registration, error)
	Delete(ctx context.Context, id bson.ObjectID) (bool, error)
}

// FeedbackStore is satisfied by *repository.FeedbackRepo.
type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	List(ctx context.Context) ([]models.Feedback, error)
}

// AnalysisStore is satisfied by *repository.AnalysisRepo.
type AnalysisStore interface {
	Create(ctx context.Context, run *models.AnalysisRun) error
	Latest(ctx context.Context) (*models.AnalysisRun, error)
}

// AnalysisRunner is satisfied by *sentiment.Analyzer.
type AnalysisRunner interface {
	Run(ctx context.Context, feedback []sentiment.Feedback, teams []sentiment.Team) (sentiment.Report, error)
}
