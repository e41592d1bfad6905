package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"prepwise/internal/cache"
	"prepwise/internal/model"
	"prepwise/internal/repository"
)

const noFeedbackAssessment = "No feedback available yet."

// Heuristic thresholds for deriving strengths and improvement areas from
// per-type mean scores.
const (
	strengthMeanScore    = 80
	improvementMeanScore = 60
)

// AggregateService produces the single cumulative feedback document for an
// interview. Every call is a full recompute from the current round feedback
// set, never an incremental patch, so repeated calls are idempotent.
type AggregateService struct {
	templateRepo  repository.TemplateRepo
	roundRepo     repository.RoundFeedbackRepo
	companyRepo   repository.CompanyFeedbackRepo
	feedbackCache cache.FeedbackCache
	logger        *zap.Logger
}

// NewAggregateService creates a new cumulative aggregator
func NewAggregateService(
	templateRepo repository.TemplateRepo,
	roundRepo repository.RoundFeedbackRepo,
	companyRepo repository.CompanyFeedbackRepo,
	feedbackCache cache.FeedbackCache,
	logger *zap.Logger,
) *AggregateService {
	return &AggregateService{
		templateRepo:  templateRepo,
		roundRepo:     roundRepo,
		companyRepo:   companyRepo,
		feedbackCache: feedbackCache,
		logger:        logger,
	}
}

// Recompute rebuilds the CompanyFeedback document for (interviewID, userID)
// from scratch and upserts it under that key.
func (s *AggregateService) Recompute(ctx context.Context, interviewID, userID, templateID string) (*model.CompanyFeedback, error) {
	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	feedbacks, err := s.roundRepo.GetByInterview(ctx, interviewID, userID)
	if err != nil {
		return nil, fmt.Errorf("load round feedback: %w", err)
	}

	retained := latestPerRound(feedbacks)

	summary := &model.CompanyFeedback{
		InterviewID:         interviewID,
		UserID:              userID,
		TemplateID:          templateID,
		CompanyName:         template.CompanyName,
		TotalRounds:         len(template.Rounds),
		CompletedRounds:     len(retained),
		RoundScores:         []model.RoundScore{},
		Strengths:           []string{},
		AreasForImprovement: []string{},
		CreatedAt:           time.Now(),
	}

	if len(retained) == 0 {
		summary.FinalAssessment = noFeedbackAssessment
	} else {
		s.fillSummary(summary, template, retained)
	}

	if err := s.companyRepo.Save(ctx, summary); err != nil {
		return nil, fmt.Errorf("save cumulative feedback: %w", err)
	}

	if err := s.feedbackCache.Set(ctx, summary); err != nil {
		s.logger.Warn("failed to refresh cumulative feedback cache",
			zap.String("interviewId", interviewID),
			zap.String("userId", userID),
			zap.Error(err))
	}

	return summary, nil
}

// GetCumulativeFeedback returns the current summary, cache-first. When no
// summary exists yet, a placeholder document is returned instead of an error
// so the UI can degrade to a "no feedback available" screen.
func (s *AggregateService) GetCumulativeFeedback(ctx context.Context, interviewID, userID string) (*model.CompanyFeedback, error) {
	cached, err := s.feedbackCache.Get(ctx, interviewID, userID)
	if err != nil {
		s.logger.Warn("cumulative feedback cache read failed",
			zap.String("interviewId", interviewID),
			zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	stored, err := s.companyRepo.Get(ctx, interviewID, userID)
	if err != nil {
		return nil, fmt.Errorf("load cumulative feedback: %w", err)
	}
	if stored == nil {
		return &model.CompanyFeedback{
			InterviewID:         interviewID,
			UserID:              userID,
			RoundScores:         []model.RoundScore{},
			Strengths:           []string{},
			AreasForImprovement: []string{},
			FinalAssessment:     noFeedbackAssessment,
		}, nil
	}

	if err := s.feedbackCache.Set(ctx, stored); err != nil {
		s.logger.Warn("failed to backfill cumulative feedback cache", zap.Error(err))
	}
	return stored, nil
}

// latestPerRound collapses feedback documents to one per round, keeping the
// highest attempt and breaking ties by most recent createdAt.
func latestPerRound(feedbacks []*model.RoundFeedback) map[string]*model.RoundFeedback {
	latest := make(map[string]*model.RoundFeedback)
	for _, fb := range feedbacks {
		current, ok := latest[fb.RoundID]
		if !ok || fb.Attempt > current.Attempt ||
			(fb.Attempt == current.Attempt && fb.CreatedAt.After(current.CreatedAt)) {
			latest[fb.RoundID] = fb
		}
	}
	return latest
}

func (s *AggregateService) fillSummary(summary *model.CompanyFeedback, template *model.InterviewTemplate, retained map[string]*model.RoundFeedback) {
	// Round scores in template round order, then any retained feedback for
	// rounds no longer on the template.
	ordered := make([]*model.RoundFeedback, 0, len(retained))
	seen := make(map[string]bool, len(retained))
	for _, round := range template.Rounds {
		if fb, ok := retained[round.ID]; ok {
			ordered = append(ordered, fb)
			seen[round.ID] = true
		}
	}
	for _, fb := range retained {
		if !seen[fb.RoundID] {
			ordered = append(ordered, fb)
		}
	}

	scoreSum := 0
	passedCount := 0
	typeSums := make(map[model.RoundType]int)
	typeCounts := make(map[model.RoundType]int)

	for _, fb := range ordered {
		summary.RoundScores = append(summary.RoundScores, model.RoundScore{
			RoundID:   fb.RoundID,
			RoundName: fb.RoundName,
			RoundType: fb.RoundType,
			Score:     fb.Score,
			Passed:    fb.Passed,
		})
		scoreSum += fb.Score
		if fb.Passed {
			passedCount++
		}
		typeSums[fb.RoundType] += fb.Score
		typeCounts[fb.RoundType]++
	}

	summary.AverageScore = int(math.Round(float64(scoreSum) / float64(len(ordered))))

	strengths := []string{}
	areas := []string{}

	if passedCount == len(ordered) {
		strengths = append(strengths, "Passed all completed rounds")
	}
	for _, rt := range []model.RoundType{model.RoundTypeAptitude, model.RoundTypeCode} {
		if typeCounts[rt] == 0 {
			continue
		}
		mean := float64(typeSums[rt]) / float64(typeCounts[rt])
		switch {
		case mean >= strengthMeanScore:
			strengths = append(strengths, typeStrength(rt))
		case mean < improvementMeanScore:
			areas = append(areas, typeImprovement(rt))
		}
	}

	// Fold in each round's own commentary (e.g. grader output).
	for _, fb := range ordered {
		strengths = append(strengths, fb.Strengths...)
		areas = append(areas, fb.AreasForImprovement...)
	}

	summary.Strengths = dedupe(strengths)
	summary.AreasForImprovement = dedupe(areas)

	summary.FinalAssessment = fmt.Sprintf(
		"Completed %d rounds with an average score of %d/100. %d rounds passed out of %d completed.",
		summary.CompletedRounds, summary.AverageScore, passedCount, summary.CompletedRounds)
}

func typeStrength(rt model.RoundType) string {
	switch rt {
	case model.RoundTypeAptitude:
		return "Strong aptitude and reasoning performance"
	case model.RoundTypeCode:
		return "Strong coding performance"
	}
	return "Strong performance in " + string(rt) + " rounds"
}

func typeImprovement(rt model.RoundType) string {
	switch rt {
	case model.RoundTypeAptitude:
		return "Aptitude fundamentals need more practice"
	case model.RoundTypeCode:
		return "Coding rounds need more practice"
	}
	return string(rt) + " rounds need more practice"
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := []string{}
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
