package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"prepwise/internal/config"
	"prepwise/internal/model"
)

// Grader scores an interview transcript. Implementations must always return
// a usable evaluation: a failed grading call degrades to a neutral fallback
// so it can never block a candidate's round from completing.
type Grader interface {
	Grade(ctx context.Context, transcript []model.TranscriptMessage) *model.InterviewEvaluation
}

// GraderService grades voice and text interview transcripts via the Gemini
// API, with a documented neutral fallback when the call fails.
type GraderService struct {
	config        *config.GraderConfig
	client        *http.Client
	fallbackScore int
	logger        *zap.Logger
}

// NewGraderService creates a new grader service
func NewGraderService(cfg *config.GraderConfig, fallbackScore int, logger *zap.Logger) *GraderService {
	return &GraderService{
		config:        cfg,
		client:        &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
		fallbackScore: fallbackScore,
		logger:        logger,
	}
}

// Grade evaluates a transcript and returns the structured verdict. Grader
// failures are logged and replaced with the neutral fallback evaluation.
func (s *GraderService) Grade(ctx context.Context, transcript []model.TranscriptMessage) *model.InterviewEvaluation {
	if !s.config.IsEnabled() {
		return s.fallbackEvaluation()
	}

	prompt := s.buildGradingPrompt(transcript)
	response, err := s.callGemini(ctx, prompt)
	if err != nil {
		s.logger.Warn("grader call failed, using fallback evaluation", zap.Error(err))
		return s.fallbackEvaluation()
	}

	var eval model.InterviewEvaluation
	if err := json.Unmarshal([]byte(response), &eval); err != nil {
		s.logger.Warn("grader returned malformed JSON, using fallback evaluation", zap.Error(err))
		return s.fallbackEvaluation()
	}
	if eval.TotalScore < 0 || eval.TotalScore > 100 || len(eval.CategoryScores) != len(model.GradingCategories) {
		s.logger.Warn("grader returned out-of-contract evaluation, using fallback",
			zap.Int("totalScore", eval.TotalScore),
			zap.Int("categories", len(eval.CategoryScores)))
		return s.fallbackEvaluation()
	}

	return &eval
}

// callGemini makes a request to the Gemini API
func (s *GraderService) callGemini(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.Endpoint(), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (s *GraderService) buildGradingPrompt(transcript []model.TranscriptMessage) string {
	var sb strings.Builder
	for _, msg := range transcript {
		sb.WriteString(fmt.Sprintf("%s: %s\n", msg.Role, msg.Content))
	}

	return fmt.Sprintf(`You are an experienced interviewer grading a mock job interview. Return ONLY valid JSON matching this schema:
{
  "totalScore": 0 to 100,
  "categoryScores": [
    {"name": "Communication Skills", "score": 0 to 100, "comment": "..."},
    {"name": "Technical Knowledge", "score": 0 to 100, "comment": "..."},
    {"name": "Problem Solving", "score": 0 to 100, "comment": "..."},
    {"name": "Cultural Fit", "score": 0 to 100, "comment": "..."},
    {"name": "Confidence and Clarity", "score": 0 to 100, "comment": "..."}
  ],
  "strengths": ["strength 1", "strength 2"],
  "areasForImprovement": ["area 1", "area 2"],
  "finalAssessment": "two or three sentence verdict"
}

Transcript:
%s

Grade strictly: vague or evasive answers score low, concrete and structured answers score high.`, sb.String())
}

// fallbackEvaluation is the documented neutral verdict used when grading is
// unavailable.
func (s *GraderService) fallbackEvaluation() *model.InterviewEvaluation {
	categories := make([]model.CategoryScore, 0, len(model.GradingCategories))
	for _, name := range model.GradingCategories {
		categories = append(categories, model.CategoryScore{
			Name:    name,
			Score:   s.fallbackScore,
			Comment: "Automated grading was unavailable for this round.",
		})
	}

	return &model.InterviewEvaluation{
		TotalScore:          s.fallbackScore,
		CategoryScores:      categories,
		Strengths:           []string{"Completed the interview round"},
		AreasForImprovement: []string{"Detailed feedback unavailable; consider retaking this round"},
		FinalAssessment:     "Automated grading was unavailable, so a neutral score was assigned.",
	}
}
