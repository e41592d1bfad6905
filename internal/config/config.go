package config

import "os"

// ScoringConfig centralizes the scoring defaults used by the feedback writer
// and the score calculators.
type ScoringConfig struct {
	// DefaultPassingScore applies when a round definition leaves passingScore unset.
	DefaultPassingScore int

	// FallbackVoiceScore is the neutral score used when the grader is
	// unavailable, so a flaky AI call never blocks round completion.
	FallbackVoiceScore int
}

type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string
	Scoring   ScoringConfig
}

func Load() *Config {
	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "prepwise"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		Scoring: ScoringConfig{
			DefaultPassingScore: 70,
			FallbackVoiceScore:  70,
		},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
