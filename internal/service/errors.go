package service

import (
	"errors"
	"fmt"
)

// Base error tags. Handlers map these to HTTP statuses with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid request")
	ErrExternal   = errors.New("external service error")
)

var (
	ErrInterviewNotFound    = fmt.Errorf("interview %w", ErrNotFound)
	ErrTemplateNotFound     = fmt.Errorf("template %w", ErrNotFound)
	ErrRoundNotFound        = fmt.Errorf("round %w", ErrNotFound)
	ErrQuestionBankNotFound = fmt.Errorf("question bank %w", ErrNotFound)
	ErrQuestionNotFound     = fmt.Errorf("question %w", ErrNotFound)

	// Inactive templates are invisible to non-admins.
	ErrTemplateUnavailable = fmt.Errorf("template %w or inactive", ErrNotFound)

	ErrNoTestCases     = fmt.Errorf("%w: question has zero test cases", ErrValidation)
	ErrNoQuestions     = fmt.Errorf("%w: round has no questions", ErrValidation)
	ErrEmptyTranscript = fmt.Errorf("%w: transcript is empty", ErrValidation)
	ErrScoreOutOfRange = fmt.Errorf("%w: score outside 0-100", ErrValidation)

	ErrRunnerFailed = fmt.Errorf("code runner: %w", ErrExternal)
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
