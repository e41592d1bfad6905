package config

import "os"

// GraderConfig holds configuration for the Gemini-backed interview grader.
type GraderConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	Model     string `json:"model"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultGraderConfig returns the default grader configuration.
func DefaultGraderConfig() *GraderConfig {
	return &GraderConfig{
		APIKey:    os.Getenv("GEMINI_API_KEY"),
		BaseURL:   getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
		Model:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		TimeoutMS: 15000,
	}
}

// IsEnabled returns true if the grader API is configured.
func (c *GraderConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// Endpoint returns the full generateContent endpoint for the configured model.
func (c *GraderConfig) Endpoint() string {
	return c.BaseURL + "/" + c.Model + ":generateContent"
}

// RunnerConfig holds configuration for the external code execution service.
type RunnerConfig struct {
	BaseURL   string `json:"baseUrl"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultRunnerConfig returns the default code runner configuration.
func DefaultRunnerConfig() *RunnerConfig {
	return &RunnerConfig{
		BaseURL:   getEnv("RUNNER_URL", "http://localhost:2358"),
		TimeoutMS: 20000,
	}
}
