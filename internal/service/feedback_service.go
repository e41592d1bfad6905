package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"prepwise/internal/config"
	"prepwise/internal/model"
	"prepwise/internal/repository"
)

// FeedbackService is the single write path for round results. It upserts the
// one RoundFeedback document per (interview, user, round) and synchronously
// triggers the cumulative recompute.
type FeedbackService struct {
	templateRepo  repository.TemplateRepo
	interviewRepo repository.InterviewRepo
	roundRepo     repository.RoundFeedbackRepo
	aggregator    *AggregateService
	scoring       config.ScoringConfig
	logger        *zap.Logger
}

// NewFeedbackService creates a new round feedback writer
func NewFeedbackService(
	templateRepo repository.TemplateRepo,
	interviewRepo repository.InterviewRepo,
	roundRepo repository.RoundFeedbackRepo,
	aggregator *AggregateService,
	scoring config.ScoringConfig,
	logger *zap.Logger,
) *FeedbackService {
	return &FeedbackService{
		templateRepo:  templateRepo,
		interviewRepo: interviewRepo,
		roundRepo:     roundRepo,
		aggregator:    aggregator,
		scoring:       scoring,
		logger:        logger,
	}
}

// RecordRoundResult persists the result of one round submission. A
// resubmission updates the existing document in place and bumps its attempt
// counter; it never inserts a second document for the same round.
//
// A failed cumulative recompute is logged and reported via SummaryRefreshed
// but does not roll back the committed round result; the caller can retry
// aggregation independently.
func (s *FeedbackService) RecordRoundResult(
	ctx context.Context,
	interviewID, userID, templateID, roundID, roundName string,
	roundType model.RoundType,
	result *model.RoundResult,
) (*model.RecordOutcome, error) {
	if result.Score < 0 || result.Score > 100 {
		return nil, ErrScoreOutOfRange
	}

	interview, err := s.interviewRepo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, fmt.Errorf("load interview: %w", err)
	}
	if interview == nil {
		return nil, ErrInterviewNotFound
	}

	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	round := template.FindRound(roundID)
	if round == nil {
		return nil, ErrRoundNotFound
	}

	passingScore := round.EffectivePassingScore(s.scoring.DefaultPassingScore)

	existing, err := s.roundRepo.GetByRound(ctx, interviewID, userID, roundID)
	if err != nil {
		return nil, fmt.Errorf("load existing feedback: %w", err)
	}

	now := time.Now()
	feedback := &model.RoundFeedback{
		InterviewID:         interviewID,
		UserID:              userID,
		TemplateID:          templateID,
		RoundID:             roundID,
		RoundName:           roundName,
		RoundType:           roundType,
		Attempt:             1,
		Score:               result.Score,
		PassingScore:        passingScore,
		Passed:              result.Score >= passingScore,
		Answers:             result.Answers,
		CategoryScores:      result.CategoryScores,
		Strengths:           result.Strengths,
		AreasForImprovement: result.AreasForImprovement,
		Assessment:          result.Assessment,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	isUpdate := existing != nil
	if isUpdate {
		// Attempt derives from the stored document, never a global counter.
		feedback.ID = existing.ID
		feedback.Attempt = existing.Attempt + 1
		feedback.CreatedAt = existing.CreatedAt
	}

	feedbackID, err := s.roundRepo.Upsert(ctx, feedback)
	if err != nil {
		return nil, fmt.Errorf("save round feedback: %w", err)
	}

	summaryRefreshed := true
	if _, err := s.aggregator.Recompute(ctx, interviewID, userID, templateID); err != nil {
		// The round result is authoritative even with a stale summary.
		summaryRefreshed = false
		s.logger.Error("cumulative recompute failed after round feedback write",
			zap.String("interviewId", interviewID),
			zap.String("userId", userID),
			zap.String("roundId", roundID),
			zap.Error(err))
	}

	return &model.RecordOutcome{
		FeedbackID:       feedbackID,
		IsUpdate:         isUpdate,
		SummaryRefreshed: summaryRefreshed,
	}, nil
}

// GetRoundFeedback returns the feedback document for one round, or nil when
// the round has no feedback yet.
func (s *FeedbackService) GetRoundFeedback(ctx context.Context, interviewID, userID, roundID string) (*model.RoundFeedback, error) {
	return s.roundRepo.GetByRound(ctx, interviewID, userID, roundID)
}
