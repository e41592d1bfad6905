package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prepwise/internal/model"
)

// CompanyFeedbackRepo handles MongoDB operations for cumulative feedback.
// At most one document exists per (interviewId, userId); saving overwrites it.
type CompanyFeedbackRepo interface {
	Save(ctx context.Context, feedback *model.CompanyFeedback) error
	Get(ctx context.Context, interviewID, userID string) (*model.CompanyFeedback, error)
}

type companyFeedbackRepo struct {
	collection *mongo.Collection
}

// NewCompanyFeedbackRepo creates a new cumulative feedback repository
func NewCompanyFeedbackRepo(db *mongo.Database) CompanyFeedbackRepo {
	return &companyFeedbackRepo{
		collection: db.Collection("company_feedback"),
	}
}

func (r *companyFeedbackRepo) Save(ctx context.Context, feedback *model.CompanyFeedback) error {
	filter := bson.M{"interviewId": feedback.InterviewID, "userId": feedback.UserID}

	doc := *feedback
	doc.ID = ""

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, filter, &doc, opts)
	return err
}

func (r *companyFeedbackRepo) Get(ctx context.Context, interviewID, userID string) (*model.CompanyFeedback, error) {
	var feedback model.CompanyFeedback
	err := r.collection.FindOne(ctx, bson.M{"interviewId": interviewID, "userId": userID}).Decode(&feedback)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}
