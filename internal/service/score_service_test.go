package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"prepwise/internal/config"
	"prepwise/internal/model"
)

func aptitudeQuestions() []model.Question {
	return []model.Question{
		{ID: "q1", Options: []string{"a", "b"}, CorrectOption: intPtr(0)},
		{ID: "q2", Options: []string{"a", "b"}, CorrectOption: intPtr(1)},
		{ID: "q3", Options: []string{"a", "b", "c", "d"}, CorrectOption: intPtr(2)},
		{ID: "q4", CorrectAnswer: "x"},
	}
}

func TestAptitudeScoreThreeOfFour(t *testing.T) {
	svc := NewScoreService(&fakeRunner{}, &fakeGrader{})

	result, err := svc.Score(context.Background(), model.RoundTypeAptitude, &SubmissionInput{
		Questions: aptitudeQuestions(),
		Answers: []model.SubmittedAnswer{
			{QuestionID: "q1", OptionIndex: intPtr(0)},
			{QuestionID: "q2", OptionIndex: intPtr(1)},
			{QuestionID: "q3", OptionIndex: intPtr(3)},
			{QuestionID: "q4", Value: "x"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 75, result.Score)
}

func TestAptitudeUnansweredCountsAgainst(t *testing.T) {
	svc := NewScoreService(&fakeRunner{}, &fakeGrader{})

	// Two correct answers, two questions never answered.
	result, err := svc.Score(context.Background(), model.RoundTypeAptitude, &SubmissionInput{
		Questions: aptitudeQuestions(),
		Answers: []model.SubmittedAnswer{
			{QuestionID: "q1", OptionIndex: intPtr(0)},
			{QuestionID: "q4", Value: "x"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 50, result.Score)
}

func TestAptitudeFreeTextIsExactMatch(t *testing.T) {
	svc := NewScoreService(&fakeRunner{}, &fakeGrader{})

	result, err := svc.Score(context.Background(), model.RoundTypeAptitude, &SubmissionInput{
		Questions: []model.Question{{ID: "q1", CorrectAnswer: "42"}},
		Answers:   []model.SubmittedAnswer{{QuestionID: "q1", Value: " 42"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
}

func TestAptitudeNoQuestionsRejected(t *testing.T) {
	svc := NewScoreService(&fakeRunner{}, &fakeGrader{})

	_, err := svc.Score(context.Background(), model.RoundTypeAptitude, &SubmissionInput{})

	assert.ErrorIs(t, err, ErrNoQuestions)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCodingScoreTwoOfThree(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"1": "2",
		"2": "4",
		"3": "wrong",
	}}
	svc := NewScoreService(runner, &fakeGrader{})

	result, err := svc.Score(context.Background(), model.RoundTypeCode, &SubmissionInput{
		Question: &model.Question{
			ID: "q1",
			TestCases: []model.TestCase{
				{Input: "1", ExpectedOutput: "2"},
				{Input: "2", ExpectedOutput: "4"},
				{Input: "3", ExpectedOutput: "6"},
			},
		},
		SourceCode: "print(int(input())*2)",
		LanguageID: "python",
	})

	require.NoError(t, err)
	assert.Equal(t, 67, result.Score)
}

func TestCodingZeroTestCasesRejected(t *testing.T) {
	svc := NewScoreService(&fakeRunner{}, &fakeGrader{})

	_, err := svc.Score(context.Background(), model.RoundTypeCode, &SubmissionInput{
		Question: &model.Question{ID: "q1"},
	})

	assert.ErrorIs(t, err, ErrNoTestCases)
}

func TestCodingRunnerFailureSurfaces(t *testing.T) {
	runner := &fakeRunner{err: ErrRunnerFailed}
	svc := NewScoreService(runner, &fakeGrader{})

	_, err := svc.Score(context.Background(), model.RoundTypeCode, &SubmissionInput{
		Question: &model.Question{
			ID:        "q1",
			TestCases: []model.TestCase{{Input: "1", ExpectedOutput: "2"}},
		},
	})

	assert.ErrorIs(t, err, ErrExternal)
}

func TestGradedRoundUsesEvaluation(t *testing.T) {
	grader := &fakeGrader{eval: &model.InterviewEvaluation{
		TotalScore:      85,
		Strengths:       []string{"Clear structure"},
		FinalAssessment: "Strong round.",
	}}
	svc := NewScoreService(&fakeRunner{}, grader)

	transcript := []model.TranscriptMessage{
		{Role: "interviewer", Content: "Tell me about a project."},
		{Role: "candidate", Content: "I built a queueing system."},
	}

	for _, rt := range []model.RoundType{model.RoundTypeVoice, model.RoundTypeText} {
		result, err := svc.Score(context.Background(), rt, &SubmissionInput{Transcript: transcript})
		require.NoError(t, err)
		assert.Equal(t, 85, result.Score)
		assert.Equal(t, []string{"Clear structure"}, result.Strengths)
		assert.Len(t, result.Answers, 2)
	}
}

func TestGradedRoundEmptyTranscriptRejected(t *testing.T) {
	svc := NewScoreService(&fakeRunner{}, &fakeGrader{})

	_, err := svc.Score(context.Background(), model.RoundTypeVoice, &SubmissionInput{})

	assert.ErrorIs(t, err, ErrEmptyTranscript)
}

func TestUnknownRoundTypeRejected(t *testing.T) {
	svc := NewScoreService(&fakeRunner{}, &fakeGrader{})

	_, err := svc.Score(context.Background(), model.RoundType("panel"), &SubmissionInput{})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestGraderDisabledFallsBackToNeutralScore(t *testing.T) {
	grader := NewGraderService(&config.GraderConfig{}, 70, zap.NewNop())
	svc := NewScoreService(&fakeRunner{}, grader)

	result, err := svc.Score(context.Background(), model.RoundTypeVoice, &SubmissionInput{
		Transcript: []model.TranscriptMessage{{Role: "candidate", Content: "hello"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 70, result.Score)
	assert.Len(t, result.CategoryScores, 5)
	for _, cs := range result.CategoryScores {
		assert.Equal(t, 70, cs.Score)
	}
}

func TestPercentScoreRounding(t *testing.T) {
	assert.Equal(t, 67, percentScore(2, 3))
	assert.Equal(t, 33, percentScore(1, 3))
	assert.Equal(t, 100, percentScore(3, 3))
	assert.Equal(t, 0, percentScore(0, 5))
	assert.Equal(t, 17, percentScore(1, 6))
}
