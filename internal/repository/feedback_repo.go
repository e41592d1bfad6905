package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prepwise/internal/model"
)

// RoundFeedbackRepo handles MongoDB operations for per-round feedback.
// The collection holds at most one document per (interviewId, userId, roundId);
// Upsert replaces in place under that key.
type RoundFeedbackRepo interface {
	GetByRound(ctx context.Context, interviewID, userID, roundID string) (*model.RoundFeedback, error)
	GetByInterview(ctx context.Context, interviewID, userID string) ([]*model.RoundFeedback, error)
	Upsert(ctx context.Context, feedback *model.RoundFeedback) (string, error)
}

type roundFeedbackRepo struct {
	collection *mongo.Collection
}

// NewRoundFeedbackRepo creates a new round feedback repository
func NewRoundFeedbackRepo(db *mongo.Database) RoundFeedbackRepo {
	return &roundFeedbackRepo{
		collection: db.Collection("round_feedback"),
	}
}

func roundKey(interviewID, userID, roundID string) bson.M {
	return bson.M{
		"interviewId": interviewID,
		"userId":      userID,
		"roundId":     roundID,
	}
}

func (r *roundFeedbackRepo) GetByRound(ctx context.Context, interviewID, userID, roundID string) (*model.RoundFeedback, error) {
	var feedback model.RoundFeedback
	err := r.collection.FindOne(ctx, roundKey(interviewID, userID, roundID)).Decode(&feedback)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *roundFeedbackRepo) GetByInterview(ctx context.Context, interviewID, userID string) ([]*model.RoundFeedback, error) {
	filter := bson.M{"interviewId": interviewID, "userId": userID}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var feedbacks []*model.RoundFeedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *roundFeedbackRepo) Upsert(ctx context.Context, feedback *model.RoundFeedback) (string, error) {
	filter := roundKey(feedback.InterviewID, feedback.UserID, feedback.RoundID)

	doc := *feedback
	doc.ID = ""

	opts := options.Replace().SetUpsert(true)
	result, err := r.collection.ReplaceOne(ctx, filter, &doc, opts)
	if err != nil {
		return "", err
	}

	if oid, ok := result.UpsertedID.(primitive.ObjectID); ok {
		feedback.ID = oid.Hex()
		return feedback.ID, nil
	}
	if feedback.ID != "" {
		return feedback.ID, nil
	}

	// Replaced an existing document; read its id back.
	var stored model.RoundFeedback
	if err := r.collection.FindOne(ctx, filter).Decode(&stored); err != nil {
		return "", err
	}
	feedback.ID = stored.ID
	return stored.ID, nil
}
