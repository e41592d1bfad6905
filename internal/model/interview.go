package model

import "time"

// InterviewInstance is one candidate's attempt at a template. There is at
// most one instance per (user, template) pair; the round list is snapshotted
// at creation so later template edits don't change an in-progress interview.
type InterviewInstance struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	TemplateID      string    `json:"templateId" bson:"templateId"`
	UserID          string    `json:"userId" bson:"userId"`
	CompanyName     string    `json:"companyName" bson:"companyName"`
	Rounds          []Round   `json:"rounds" bson:"rounds"`
	CompletedRounds []string  `json:"completedRounds" bson:"completedRounds"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// HasCompletedRound reports whether the round id is already recorded.
func (i *InterviewInstance) HasCompletedRound(roundID string) bool {
	for _, id := range i.CompletedRounds {
		if id == roundID {
			return true
		}
	}
	return false
}
