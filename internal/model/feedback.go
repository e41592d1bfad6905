package model

import "time"

// SubmittedAnswer is one raw answer as the candidate submitted it.
type SubmittedAnswer struct {
	QuestionID  string `json:"questionId,omitempty" bson:"questionId,omitempty"`
	Value       string `json:"value,omitempty" bson:"value,omitempty"`             // free-text answers, code, transcript turns
	OptionIndex *int   `json:"optionIndex,omitempty" bson:"optionIndex,omitempty"` // multiple-choice answers
}

// CategoryScore is one named grading category from the interview grader.
type CategoryScore struct {
	Name    string `json:"name" bson:"name"`
	Score   int    `json:"score" bson:"score"`
	Comment string `json:"comment,omitempty" bson:"comment,omitempty"`
}

// RoundFeedback is the single feedback document for one candidate's round.
// At most one document exists per (interviewId, userId, roundId); resubmission
// updates it in place and bumps Attempt.
type RoundFeedback struct {
	ID                  string            `json:"id" bson:"_id,omitempty"`
	InterviewID         string            `json:"interviewId" bson:"interviewId"`
	UserID              string            `json:"userId" bson:"userId"`
	TemplateID          string            `json:"templateId" bson:"templateId"`
	RoundID             string            `json:"roundId" bson:"roundId"`
	RoundName           string            `json:"roundName" bson:"roundName"`
	RoundType           RoundType         `json:"roundType" bson:"roundType"`
	Attempt             int               `json:"attempt" bson:"attempt"`
	Score               int               `json:"score" bson:"score"`
	PassingScore        int               `json:"passingScore" bson:"passingScore"`
	Passed              bool              `json:"passed" bson:"passed"`
	Answers             []SubmittedAnswer `json:"answers" bson:"answers"`
	CategoryScores      []CategoryScore   `json:"categoryScores,omitempty" bson:"categoryScores,omitempty"`
	Strengths           []string          `json:"strengths,omitempty" bson:"strengths,omitempty"`
	AreasForImprovement []string          `json:"areasForImprovement,omitempty" bson:"areasForImprovement,omitempty"`
	Assessment          string            `json:"assessment,omitempty" bson:"assessment,omitempty"`
	CreatedAt           time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt" bson:"updatedAt"`
}

// RoundScore is one per-round entry in the cumulative summary.
type RoundScore struct {
	RoundID   string    `json:"roundId" bson:"roundId"`
	RoundName string    `json:"roundName" bson:"roundName"`
	RoundType RoundType `json:"roundType" bson:"roundType"`
	Score     int       `json:"score" bson:"score"`
	Passed    bool      `json:"passed" bson:"passed"`
}

// CompanyFeedback is the cumulative per-interview summary, fully recomputed
// from the current RoundFeedback set after every round feedback write. At most
// one document exists per (interviewId, userId).
type CompanyFeedback struct {
	ID                  string       `json:"id" bson:"_id,omitempty"`
	InterviewID         string       `json:"interviewId" bson:"interviewId"`
	UserID              string       `json:"userId" bson:"userId"`
	TemplateID          string       `json:"templateId" bson:"templateId"`
	CompanyName         string       `json:"companyName" bson:"companyName"`
	TotalRounds         int          `json:"totalRounds" bson:"totalRounds"`
	CompletedRounds     int          `json:"completedRounds" bson:"completedRounds"`
	AverageScore        int          `json:"averageScore" bson:"averageScore"`
	RoundScores         []RoundScore `json:"roundScores" bson:"roundScores"`
	Strengths           []string     `json:"strengths" bson:"strengths"`
	AreasForImprovement []string     `json:"areasForImprovement" bson:"areasForImprovement"`
	FinalAssessment     string       `json:"finalAssessment" bson:"finalAssessment"`
	CreatedAt           time.Time    `json:"createdAt" bson:"createdAt"`
}

// RoundResult carries everything the feedback writer persists for one
// submission: the computed score plus the grader's supporting commentary.
type RoundResult struct {
	Score               int
	Answers             []SubmittedAnswer
	CategoryScores      []CategoryScore
	Strengths           []string
	AreasForImprovement []string
	Assessment          string
}

// RecordOutcome is the feedback writer's result.
type RecordOutcome struct {
	FeedbackID string `json:"feedbackId"`
	IsUpdate   bool   `json:"isUpdate"`
	// SummaryRefreshed is false when the cumulative recompute failed after the
	// round feedback write was already committed.
	SummaryRefreshed bool `json:"summaryRefreshed"`
}
