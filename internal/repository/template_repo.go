package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prepwise/internal/model"
)

// TemplateRepo handles MongoDB operations for interview templates
type TemplateRepo interface {
	Create(ctx context.Context, tmpl *model.InterviewTemplate) (string, error)
	GetByID(ctx context.Context, id string) (*model.InterviewTemplate, error)
	List(ctx context.Context, includeInactive bool) ([]*model.InterviewTemplate, error)
	Update(ctx context.Context, tmpl *model.InterviewTemplate) error
	Delete(ctx context.Context, id string) error
}

type templateRepo struct {
	collection *mongo.Collection
}

// NewTemplateRepo creates a new template repository
func NewTemplateRepo(db *mongo.Database) TemplateRepo {
	return &templateRepo{
		collection: db.Collection("templates"),
	}
}

func (r *templateRepo) Create(ctx context.Context, tmpl *model.InterviewTemplate) (string, error) {
	tmpl.CreatedAt = time.Now()
	tmpl.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, tmpl)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	tmpl.ID = oid.Hex()
	return oid.Hex(), nil
}

func (r *templateRepo) GetByID(ctx context.Context, id string) (*model.InterviewTemplate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var tmpl model.InterviewTemplate
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&tmpl)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tmpl.ID = id
	return &tmpl, nil
}

func (r *templateRepo) List(ctx context.Context, includeInactive bool) ([]*model.InterviewTemplate, error) {
	filter := bson.M{}
	if !includeInactive {
		filter["isActive"] = true
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []*model.InterviewTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepo) Update(ctx context.Context, tmpl *model.InterviewTemplate) error {
	oid, err := primitive.ObjectIDFromHex(tmpl.ID)
	if err != nil {
		return err
	}

	tmpl.UpdatedAt = time.Now()

	// Keep the stored ObjectID; the hex ID field must not go into the document.
	doc := *tmpl
	doc.ID = ""
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, &doc)
	return err
}

func (r *templateRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
