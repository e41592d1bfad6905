package model

import "time"

// RoundType identifies how a round is conducted and scored.
type RoundType string

const (
	RoundTypeVoice    RoundType = "voice"
	RoundTypeText     RoundType = "text"
	RoundTypeCode     RoundType = "code"
	RoundTypeAptitude RoundType = "aptitude"
)

// Valid reports whether the round type is one of the known variants.
func (t RoundType) Valid() bool {
	switch t {
	case RoundTypeVoice, RoundTypeText, RoundTypeCode, RoundTypeAptitude:
		return true
	}
	return false
}

// Round is one step of an interview template.
type Round struct {
	ID               string    `json:"id" bson:"id"`
	Name             string    `json:"name" bson:"name"`
	Type             RoundType `json:"type" bson:"type"`
	DurationMin      *int      `json:"durationMin,omitempty" bson:"durationMin,omitempty"` // nil for voice rounds
	QuestionBankID   string    `json:"questionBankId,omitempty" bson:"questionBankId,omitempty"`
	QuestionCount    int       `json:"questionCount,omitempty" bson:"questionCount,omitempty"`
	PromptTemplateID string    `json:"promptTemplateId,omitempty" bson:"promptTemplateId,omitempty"` // voice only
	Difficulty       string    `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	PassingScore     int       `json:"passingScore,omitempty" bson:"passingScore,omitempty"` // 0 means unset
}

// EffectivePassingScore resolves the round's passing score against the
// configured default.
func (r *Round) EffectivePassingScore(defaultScore int) int {
	if r.PassingScore > 0 {
		return r.PassingScore
	}
	return defaultScore
}

// InterviewTemplate is an admin-authored company interview definition.
type InterviewTemplate struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	CompanyName string    `json:"companyName" bson:"companyName"`
	LogoURL     string    `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Rounds      []Round   `json:"rounds" bson:"rounds"`
	IsActive    bool      `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// FindRound returns the round with the given id, or nil if the template has
// no such round.
func (t *InterviewTemplate) FindRound(roundID string) *Round {
	for i := range t.Rounds {
		if t.Rounds[i].ID == roundID {
			return &t.Rounds[i]
		}
	}
	return nil
}
