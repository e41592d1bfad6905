package model

// SubmitRoundRequest is the request body for submitting one round's work.
// Exactly one of the type-specific sections is consulted, selected by the
// round definition's type.
type SubmitRoundRequest struct {
	// Aptitude rounds
	Answers []SubmittedAnswer `json:"answers,omitempty"`

	// Coding rounds
	QuestionID string `json:"questionId,omitempty"`
	SourceCode string `json:"sourceCode,omitempty"`
	LanguageID string `json:"languageId,omitempty"`

	// Voice and text rounds
	Transcript []TranscriptMessage `json:"transcript,omitempty"`
}
