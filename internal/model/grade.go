package model

// TranscriptMessage is one turn of a voice or text interview conversation.
type TranscriptMessage struct {
	Role    string `json:"role" bson:"role"` // "interviewer" or "candidate"
	Content string `json:"content" bson:"content"`
}

// GradingCategories are the five fixed categories every graded interview is
// scored against.
var GradingCategories = [5]string{
	"Communication Skills",
	"Technical Knowledge",
	"Problem Solving",
	"Cultural Fit",
	"Confidence and Clarity",
}

// InterviewEvaluation is the grader's structured verdict for one transcript.
type InterviewEvaluation struct {
	TotalScore          int             `json:"totalScore"`
	CategoryScores      []CategoryScore `json:"categoryScores"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areasForImprovement"`
	FinalAssessment     string          `json:"finalAssessment"`
}
