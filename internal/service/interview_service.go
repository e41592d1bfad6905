package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"prepwise/internal/model"
	"prepwise/internal/repository"
)

// InterviewService provisions interview instances and tracks round
// completion.
type InterviewService struct {
	interviewRepo repository.InterviewRepo
	templateRepo  repository.TemplateRepo
}

// NewInterviewService creates a new interview service
func NewInterviewService(interviewRepo repository.InterviewRepo, templateRepo repository.TemplateRepo) *InterviewService {
	return &InterviewService{
		interviewRepo: interviewRepo,
		templateRepo:  templateRepo,
	}
}

// GetOrCreateInterview returns the candidate's instance for a template,
// creating it on first visit. The template's round list is snapshotted onto
// the instance so later template edits don't change an in-progress interview.
// A concurrent double-create is an accepted race; callers treat the first
// instance they read back as canonical.
func (s *InterviewService) GetOrCreateInterview(ctx context.Context, userID, templateID string, isAdmin bool) (*model.InterviewInstance, error) {
	existing, err := s.interviewRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	for _, interview := range existing {
		if interview.TemplateID == templateID {
			return interview, nil
		}
	}

	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}
	if !template.IsActive && !isAdmin {
		return nil, ErrTemplateUnavailable
	}

	rounds := make([]model.Round, len(template.Rounds))
	copy(rounds, template.Rounds)

	interview := &model.InterviewInstance{
		ID:              uuid.New().String(),
		TemplateID:      templateID,
		UserID:          userID,
		CompanyName:     template.CompanyName,
		Rounds:          rounds,
		CompletedRounds: []string{},
		CreatedAt:       time.Now(),
	}

	if err := s.interviewRepo.Create(ctx, interview); err != nil {
		return nil, fmt.Errorf("create interview: %w", err)
	}
	return interview, nil
}

// GetInterview loads one instance by id.
func (s *InterviewService) GetInterview(ctx context.Context, interviewID string) (*model.InterviewInstance, error) {
	interview, err := s.interviewRepo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, fmt.Errorf("load interview: %w", err)
	}
	if interview == nil {
		return nil, ErrInterviewNotFound
	}
	return interview, nil
}

// MarkRoundComplete records a round as finished, exactly once. Marking an
// already-completed round is a successful no-op with no write.
func (s *InterviewService) MarkRoundComplete(ctx context.Context, interviewID, roundID string) error {
	interview, err := s.interviewRepo.GetByID(ctx, interviewID)
	if err != nil {
		return fmt.Errorf("load interview: %w", err)
	}
	if interview == nil {
		return ErrInterviewNotFound
	}

	if interview.HasCompletedRound(roundID) {
		return nil
	}

	updated := append(interview.CompletedRounds, roundID)
	if err := s.interviewRepo.SetCompletedRounds(ctx, interviewID, updated); err != nil {
		return fmt.Errorf("update completed rounds: %w", err)
	}
	return nil
}
