package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"prepwise/internal/model"
)

// InterviewRepo handles MongoDB operations for interview instances.
// Instances use caller-assigned UUID ids so the provisioner can hand out the
// id it just created without a read-back.
type InterviewRepo interface {
	Create(ctx context.Context, interview *model.InterviewInstance) error
	GetByID(ctx context.Context, id string) (*model.InterviewInstance, error)
	GetByUserID(ctx context.Context, userID string) ([]*model.InterviewInstance, error)
	SetCompletedRounds(ctx context.Context, id string, roundIDs []string) error
}

type interviewRepo struct {
	collection *mongo.Collection
}

// NewInterviewRepo creates a new interview repository
func NewInterviewRepo(db *mongo.Database) InterviewRepo {
	return &interviewRepo{
		collection: db.Collection("interviews"),
	}
}

func (r *interviewRepo) Create(ctx context.Context, interview *model.InterviewInstance) error {
	if interview.CreatedAt.IsZero() {
		interview.CreatedAt = time.Now()
	}
	if interview.CompletedRounds == nil {
		interview.CompletedRounds = []string{}
	}

	_, err := r.collection.InsertOne(ctx, interview)
	return err
}

func (r *interviewRepo) GetByID(ctx context.Context, id string) (*model.InterviewInstance, error) {
	var interview model.InterviewInstance
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&interview)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepo) GetByUserID(ctx context.Context, userID string) ([]*model.InterviewInstance, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interviews []*model.InterviewInstance
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

func (r *interviewRepo) SetCompletedRounds(ctx context.Context, id string, roundIDs []string) error {
	update := bson.M{"$set": bson.M{"completedRounds": roundIDs}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
