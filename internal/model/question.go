package model

import "time"

// BankKind identifies what a question bank contains.
type BankKind string

const (
	BankKindAptitude BankKind = "aptitude"
	BankKindCoding   BankKind = "coding"
	BankKindText     BankKind = "text"
)

// TestCase is one input/expected-output pair for a coding question.
type TestCase struct {
	Input          string `json:"input" bson:"input"`
	ExpectedOutput string `json:"expectedOutput" bson:"expectedOutput"`
}

// Question is a single entry of a question bank.
type Question struct {
	ID            string     `json:"id" bson:"id"`
	Prompt        string     `json:"prompt" bson:"prompt"`
	Options       []string   `json:"options,omitempty" bson:"options,omitempty"`             // multiple choice
	CorrectOption *int       `json:"correctOption,omitempty" bson:"correctOption,omitempty"` // index into Options
	CorrectAnswer string     `json:"correctAnswer,omitempty" bson:"correctAnswer,omitempty"` // free text
	TestCases     []TestCase `json:"testCases,omitempty" bson:"testCases,omitempty"`         // coding
	Difficulty    string     `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
}

// QuestionBank is an admin-curated set of questions.
type QuestionBank struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	Name      string     `json:"name" bson:"name"`
	Kind      BankKind   `json:"kind" bson:"kind"`
	Questions []Question `json:"questions" bson:"questions"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// FindQuestion returns the question with the given id, or nil.
func (b *QuestionBank) FindQuestion(questionID string) *Question {
	for i := range b.Questions {
		if b.Questions[i].ID == questionID {
			return &b.Questions[i]
		}
	}
	return nil
}

// ExecutionResult is the code runner's output for one test case run.
type ExecutionResult struct {
	Stdout string  `json:"stdout"`
	Stderr string  `json:"stderr"`
	Status string  `json:"status"`
	Time   float64 `json:"time"`
	Memory int     `json:"memory"`
}
