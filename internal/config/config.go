package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the podcast engine service
type Config struct {
	// Server configuration
	Port        string   `envconfig:"PORT" default:"8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`

	// Speech provider configuration (generateContent-style REST API)
	SpeechAPIKey  string `envconfig:"SPEECH_API_KEY" required:"true"`
	SpeechModel   string `envconfig:"SPEECH_MODEL" default:"gemini-2.0-flash-exp"`
	SpeechBaseURL string `envconfig:"SPEECH_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`

	// LLM configuration for transcript generation (optional; the transcript
	// endpoints return an error when the key is unset)
	LLMAPIKey string `envconfig:"LLM_API_KEY" default:""`
	LLMModel  string `envconfig:"LLM_MODEL" default:"gpt-4o"`

	// Audio output configuration
	AudioDir          string `envconfig:"AUDIO_DIR" default:"podcast_outputs"`
	AudioURLPrefix    string `envconfig:"AUDIO_URL_PREFIX" default:"/audio"`
	DefaultSampleRate int    `envconfig:"DEFAULT_SAMPLE_RATE" default:"24000"` // Hz, assumed for untagged PCM payloads

	// Synthesis retry configuration
	SynthMaxRetries  int `envconfig:"SYNTH_MAX_RETRIES" default:"3"`     // Attempts per turn before giving up
	SynthBaseBackoff int `envconfig:"SYNTH_BASE_BACKOFF" default:"1000"` // Initial backoff in milliseconds
	SynthMaxBackoff  int `envconfig:"SYNTH_MAX_BACKOFF" default:"32000"` // Backoff ceiling in milliseconds

	// Circuit breaker configuration for the speech provider
	BreakerMaxFailures  int `envconfig:"BREAKER_MAX_FAILURES" default:"5"`   // Failures before opening circuit
	BreakerResetTimeout int `envconfig:"BREAKER_RESET_TIMEOUT" default:"30"` // Seconds before attempting recovery

	// Audio processing configuration
	NormalizeTargetDBFS float64 `envconfig:"NORMALIZE_TARGET_DBFS" default:"-20.0"` // Target peak loudness
	SilenceMs           int     `envconfig:"SILENCE_MS" default:"500"`              // Gap inserted between turns
	CrossfadeMs         int     `envconfig:"CROSSFADE_MS" default:"1000"`           // Blend duration at each join

	// Observability configuration
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`       // Log level: debug, info, warn, error
	LogPretty      bool   `envconfig:"LOG_PRETTY" default:"false"`     // Pretty print logs (for development)
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"` // Enable Prometheus metrics
}

// Load reads configuration from environment variables.
// It first attempts to load from .env file if it exists, then from environment.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	return LoadFromEnv()
}

// LoadFromEnv loads configuration directly from environment variables
// without attempting to load .env file (useful for containerized deployments)
func LoadFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.SpeechAPIKey == "" {
		return nil, fmt.Errorf("SPEECH_API_KEY is required")
	}
	if cfg.SynthMaxRetries < 1 {
		return nil, fmt.Errorf("SYNTH_MAX_RETRIES must be at least 1")
	}
	if cfg.SilenceMs < 0 || cfg.CrossfadeMs < 0 {
		return nil, fmt.Errorf("SILENCE_MS and CROSSFADE_MS must be non-negative")
	}

	return &cfg, nil
}

// GetEnv returns the value of an environment variable or a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
