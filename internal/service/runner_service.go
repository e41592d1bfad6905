package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"prepwise/internal/config"
	"prepwise/internal/model"
)

// CodeRunner executes candidate source code in the external sandbox and
// returns the raw execution result. Unlike the grader, runner failures are
// surfaced: a coding score cannot be computed without execution output.
type CodeRunner interface {
	Run(ctx context.Context, sourceCode, languageID, stdin string) (*model.ExecutionResult, error)
}

// RunnerService is an HTTP client for the code execution sandbox.
type RunnerService struct {
	config *config.RunnerConfig
	client *http.Client
}

// NewRunnerService creates a new code runner client
func NewRunnerService(cfg *config.RunnerConfig) *RunnerService {
	return &RunnerService{
		config: cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
	}
}

type runRequest struct {
	SourceCode string `json:"sourceCode"`
	LanguageID string `json:"languageId"`
	Stdin      string `json:"stdin"`
}

// Run executes one program against one stdin and returns its output.
func (s *RunnerService) Run(ctx context.Context, sourceCode, languageID, stdin string) (*model.ExecutionResult, error) {
	body, err := json.Marshal(runRequest{
		SourceCode: sourceCode,
		LanguageID: languageID,
		Stdin:      stdin,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.BaseURL+"/run", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRunnerFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRunnerFailed, resp.StatusCode)
	}

	var result model.ExecutionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrRunnerFailed, err)
	}

	return &result, nil
}
