package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"prepwise/internal/model"
)

// QuestionBankRepo handles MongoDB operations for question banks
type QuestionBankRepo interface {
	Create(ctx context.Context, bank *model.QuestionBank) (string, error)
	GetByID(ctx context.Context, id string) (*model.QuestionBank, error)
	List(ctx context.Context) ([]*model.QuestionBank, error)
	Update(ctx context.Context, bank *model.QuestionBank) error
	Delete(ctx context.Context, id string) error
}

type questionBankRepo struct {
	collection *mongo.Collection
}

// NewQuestionBankRepo creates a new question bank repository
func NewQuestionBankRepo(db *mongo.Database) QuestionBankRepo {
	return &questionBankRepo{
		collection: db.Collection("question_banks"),
	}
}

func (r *questionBankRepo) Create(ctx context.Context, bank *model.QuestionBank) (string, error) {
	bank.CreatedAt = time.Now()
	bank.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, bank)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	bank.ID = oid.Hex()
	return oid.Hex(), nil
}

func (r *questionBankRepo) GetByID(ctx context.Context, id string) (*model.QuestionBank, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var bank model.QuestionBank
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&bank)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	bank.ID = id
	return &bank, nil
}

func (r *questionBankRepo) List(ctx context.Context) ([]*model.QuestionBank, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var banks []*model.QuestionBank
	if err := cursor.All(ctx, &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

func (r *questionBankRepo) Update(ctx context.Context, bank *model.QuestionBank) error {
	oid, err := primitive.ObjectIDFromHex(bank.ID)
	if err != nil {
		return err
	}

	bank.UpdatedAt = time.Now()

	doc := *bank
	doc.ID = ""
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, &doc)
	return err
}

func (r *questionBankRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
