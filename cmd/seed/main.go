package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"prepwise/internal/model"
)

func intPtr(v int) *int { return &v }

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("prepwise")
	now := time.Now()

	aptitudeBank := model.QuestionBank{
		Name: "General Aptitude",
		Kind: model.BankKindAptitude,
		Questions: []model.Question{
			{
				ID:            "q1",
				Prompt:        "A train travels 120 km in 1.5 hours. What is its average speed in km/h?",
				CorrectAnswer: "80",
			},
			{
				ID:            "q2",
				Prompt:        "Which number completes the sequence: 2, 6, 12, 20, __?",
				Options:       []string{"28", "30", "32", "36"},
				CorrectOption: intPtr(1),
			},
			{
				ID:            "q3",
				Prompt:        "If all Bloops are Razzies and all Razzies are Lazzies, are all Bloops Lazzies?",
				Options:       []string{"Yes", "No", "Cannot be determined"},
				CorrectOption: intPtr(0),
			},
			{
				ID:            "q4",
				Prompt:        "What is 15% of 240?",
				CorrectAnswer: "36",
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	codingBank := model.QuestionBank{
		Name: "Fundamentals",
		Kind: model.BankKindCoding,
		Questions: []model.Question{
			{
				ID:         "q1",
				Prompt:     "Read an integer n from stdin and print the sum of 1..n.",
				Difficulty: "easy",
				TestCases: []model.TestCase{
					{Input: "5", ExpectedOutput: "15"},
					{Input: "1", ExpectedOutput: "1"},
					{Input: "100", ExpectedOutput: "5050"},
				},
			},
			{
				ID:         "q2",
				Prompt:     "Read a line from stdin and print it reversed.",
				Difficulty: "easy",
				TestCases: []model.TestCase{
					{Input: "hello", ExpectedOutput: "olleh"},
					{Input: "ab", ExpectedOutput: "ba"},
				},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	aptRes, err := db.Collection("question_banks").InsertOne(ctx, aptitudeBank)
	if err != nil {
		log.Fatalf("Failed to insert aptitude bank: %v", err)
	}
	codeRes, err := db.Collection("question_banks").InsertOne(ctx, codingBank)
	if err != nil {
		log.Fatalf("Failed to insert coding bank: %v", err)
	}
	aptitudeBankID := aptRes.InsertedID.(primitive.ObjectID).Hex()
	codingBankID := codeRes.InsertedID.(primitive.ObjectID).Hex()

	template := model.InterviewTemplate{
		CompanyName: "Acme Corp",
		Description: "Full-loop software engineer interview: aptitude screen, coding exercise, and a behavioral conversation.",
		IsActive:    true,
		Rounds: []model.Round{
			{
				ID:             "r1",
				Name:           "Aptitude Screen",
				Type:           model.RoundTypeAptitude,
				DurationMin:    intPtr(20),
				QuestionBankID: aptitudeBankID,
				QuestionCount:  4,
				PassingScore:   70,
			},
			{
				ID:             "r2",
				Name:           "Coding Exercise",
				Type:           model.RoundTypeCode,
				DurationMin:    intPtr(45),
				QuestionBankID: codingBankID,
				Difficulty:     "easy",
				PassingScore:   60,
			},
			{
				ID:               "r3",
				Name:             "Behavioral Interview",
				Type:             model.RoundTypeVoice,
				PromptTemplateID: "behavioral-v1",
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	tmplRes, err := db.Collection("templates").InsertOne(ctx, template)
	if err != nil {
		log.Fatalf("Failed to insert template: %v", err)
	}
	templateID := tmplRes.InsertedID.(primitive.ObjectID).Hex()

	fmt.Printf("Seeded template '%s' (%s) with %d rounds\n", template.CompanyName, templateID, len(template.Rounds))
}
