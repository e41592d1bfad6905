package service

import (
	"context"
	"fmt"
	"math"

	"prepwise/internal/judge"
	"prepwise/internal/model"
)

// SubmissionInput is everything a scoring strategy may need for one round
// submission. Each strategy reads only the fields for its round type.
type SubmissionInput struct {
	// Aptitude: the questions the candidate was asked, with answer keys.
	Questions []model.Question
	Answers   []model.SubmittedAnswer

	// Coding: the current question and the candidate's program.
	Question   *model.Question
	SourceCode string
	LanguageID string

	// Voice and text: the conversation transcript.
	Transcript []model.TranscriptMessage
}

// scoreStrategy reduces one round's raw submission to a 0-100 score plus
// supporting commentary. Strategies are pure transforms; persistence is the
// caller's job.
type scoreStrategy interface {
	Score(ctx context.Context, in *SubmissionInput) (*model.RoundResult, error)
}

// ScoreService dispatches a submission to the scoring strategy for its round
// type. Adding a round type means adding one strategy here.
type ScoreService struct {
	strategies map[model.RoundType]scoreStrategy
}

// NewScoreService creates a score service wired with one strategy per round type
func NewScoreService(runner CodeRunner, grader Grader) *ScoreService {
	graded := &gradedStrategy{grader: grader}
	return &ScoreService{
		strategies: map[model.RoundType]scoreStrategy{
			model.RoundTypeAptitude: &aptitudeStrategy{},
			model.RoundTypeCode:     &codingStrategy{runner: runner},
			model.RoundTypeVoice:    graded,
			model.RoundTypeText:     graded,
		},
	}
}

// Score computes the round result for a submission of the given round type.
func (s *ScoreService) Score(ctx context.Context, roundType model.RoundType, in *SubmissionInput) (*model.RoundResult, error) {
	strategy, ok := s.strategies[roundType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown round type %q", ErrValidation, roundType)
	}
	return strategy.Score(ctx, in)
}

// percentScore rounds 100*part/total to the nearest integer.
func percentScore(part, total int) int {
	return int(math.Round(100 * float64(part) / float64(total)))
}

// aptitudeStrategy scores by answer-key comparison. Unanswered questions
// count as incorrect, never as excluded from the denominator.
type aptitudeStrategy struct{}

func (st *aptitudeStrategy) Score(ctx context.Context, in *SubmissionInput) (*model.RoundResult, error) {
	if len(in.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	byQuestion := make(map[string]model.SubmittedAnswer, len(in.Answers))
	for _, ans := range in.Answers {
		byQuestion[ans.QuestionID] = ans
	}

	correct := 0
	for _, q := range in.Questions {
		ans, answered := byQuestion[q.ID]
		if !answered {
			continue
		}
		if q.CorrectOption != nil {
			if ans.OptionIndex != nil && *ans.OptionIndex == *q.CorrectOption {
				correct++
			}
			continue
		}
		if ans.Value == q.CorrectAnswer {
			correct++
		}
	}

	return &model.RoundResult{
		Score:   percentScore(correct, len(in.Questions)),
		Answers: in.Answers,
	}, nil
}

// codingStrategy scores by the fraction of test cases whose execution output
// matches the expected output after normalization.
type codingStrategy struct {
	runner CodeRunner
}

func (st *codingStrategy) Score(ctx context.Context, in *SubmissionInput) (*model.RoundResult, error) {
	if in.Question == nil {
		return nil, fmt.Errorf("%w: missing coding question", ErrValidation)
	}
	if len(in.Question.TestCases) == 0 {
		return nil, ErrNoTestCases
	}

	passed := 0
	for _, tc := range in.Question.TestCases {
		result, err := st.runner.Run(ctx, in.SourceCode, in.LanguageID, tc.Input)
		if err != nil {
			// Without execution results the score cannot be computed.
			return nil, fmt.Errorf("run test case: %w", err)
		}
		if judge.Judge(result.Stdout, tc.ExpectedOutput) == judge.VerdictAccepted {
			passed++
		}
	}

	return &model.RoundResult{
		Score: percentScore(passed, len(in.Question.TestCases)),
		Answers: []model.SubmittedAnswer{
			{QuestionID: in.Question.ID, Value: in.SourceCode},
		},
	}, nil
}

// gradedStrategy delegates voice and text rounds to the interview grader.
// The grader itself degrades to a neutral fallback, so grading never fails
// a submission.
type gradedStrategy struct {
	grader Grader
}

func (st *gradedStrategy) Score(ctx context.Context, in *SubmissionInput) (*model.RoundResult, error) {
	if len(in.Transcript) == 0 {
		return nil, ErrEmptyTranscript
	}

	eval := st.grader.Grade(ctx, in.Transcript)

	answers := make([]model.SubmittedAnswer, 0, len(in.Transcript))
	for _, msg := range in.Transcript {
		answers = append(answers, model.SubmittedAnswer{Value: msg.Role + ": " + msg.Content})
	}

	return &model.RoundResult{
		Score:               eval.TotalScore,
		Answers:             answers,
		CategoryScores:      eval.CategoryScores,
		Strengths:           eval.Strengths,
		AreasForImprovement: eval.AreasForImprovement,
		Assessment:          eval.FinalAssessment,
	}, nil
}
