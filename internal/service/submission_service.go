package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"prepwise/internal/model"
	"prepwise/internal/repository"
)

// SubmissionService orchestrates one round submission: resolve the round
// definition and its questions, score the submission, persist the round
// feedback, then mark the round complete.
type SubmissionService struct {
	interviewRepo repository.InterviewRepo
	templateRepo  repository.TemplateRepo
	bankRepo      repository.QuestionBankRepo
	scores        *ScoreService
	feedback      *FeedbackService
	interviews    *InterviewService
	logger        *zap.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	interviewRepo repository.InterviewRepo,
	templateRepo repository.TemplateRepo,
	bankRepo repository.QuestionBankRepo,
	scores *ScoreService,
	feedback *FeedbackService,
	interviews *InterviewService,
	logger *zap.Logger,
) *SubmissionService {
	return &SubmissionService{
		interviewRepo: interviewRepo,
		templateRepo:  templateRepo,
		bankRepo:      bankRepo,
		scores:        scores,
		feedback:      feedback,
		interviews:    interviews,
		logger:        logger,
	}
}

// SubmitRound handles one candidate submission for one round.
func (s *SubmissionService) SubmitRound(ctx context.Context, interviewID, userID, roundID string, req *model.SubmitRoundRequest) (*model.RecordOutcome, error) {
	interview, err := s.interviewRepo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, fmt.Errorf("load interview: %w", err)
	}
	if interview == nil || interview.UserID != userID {
		return nil, ErrInterviewNotFound
	}

	template, err := s.templateRepo.GetByID(ctx, interview.TemplateID)
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

	input, err := s.buildInput(ctx, round, req)
	if err != nil {
		return nil, err
	}

	result, err := s.scores.Score(ctx, round.Type, input)
	if err != nil {
		return nil, err
	}

	outcome, err := s.feedback.RecordRoundResult(ctx,
		interviewID, userID, interview.TemplateID,
		round.ID, round.Name, round.Type, result)
	if err != nil {
		return nil, err
	}

	// The round result is committed; a completion-tracking failure is
	// retryable through the explicit complete endpoint.
	if err := s.interviews.MarkRoundComplete(ctx, interviewID, round.ID); err != nil {
		s.logger.Error("failed to mark round complete after submission",
			zap.String("interviewId", interviewID),
			zap.String("roundId", round.ID),
			zap.Error(err))
	}

	return outcome, nil
}

// buildInput assembles the scoring input for the round's type.
func (s *SubmissionService) buildInput(ctx context.Context, round *model.Round, req *model.SubmitRoundRequest) (*SubmissionInput, error) {
	switch round.Type {
	case model.RoundTypeAptitude:
		bank, err := s.bankRepo.GetByID(ctx, round.QuestionBankID)
		if err != nil {
			return nil, fmt.Errorf("load question bank: %w", err)
		}
		if bank == nil {
			return nil, ErrQuestionBankNotFound
		}
		questions := bank.Questions
		if round.QuestionCount > 0 && round.QuestionCount < len(questions) {
			questions = questions[:round.QuestionCount]
		}
		return &SubmissionInput{Questions: questions, Answers: req.Answers}, nil

	case model.RoundTypeCode:
		bank, err := s.bankRepo.GetByID(ctx, round.QuestionBankID)
		if err != nil {
			return nil, fmt.Errorf("load question bank: %w", err)
		}
		if bank == nil {
			return nil, ErrQuestionBankNotFound
		}
		question := bank.FindQuestion(req.QuestionID)
		if question == nil {
			return nil, ErrQuestionNotFound
		}
		return &SubmissionInput{
			Question:   question,
			SourceCode: req.SourceCode,
			LanguageID: req.LanguageID,
		}, nil

	case model.RoundTypeVoice, model.RoundTypeText:
		return &SubmissionInput{Transcript: req.Transcript}, nil
	}

	return nil, fmt.Errorf("%w: unknown round type %q", ErrValidation, round.Type)
}
