package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service configuration read from the environment
type Config struct {
	Port         string
	SharedSecret string
	StaticDir    string
	LogLevel     string
	ModelTimeout time.Duration
	LLM          LLMConfig
}

// LLMConfig selects and configures the model provider
type LLMConfig struct {
	Provider  string
	Model     string
	BaseURL   string
	APIKey    string
	MaxTokens int
}

// Supported model providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load the env vars: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:         valueOr(getenv("PORT"), "8080"),
		SharedSecret: getenv("API_SHARED_SECRET"),
		StaticDir:    getenv("STATIC_DIR"),
		LogLevel:     strings.ToLower(valueOr(getenv("LOG_LEVEL"), "info")),
		ModelTimeout: 60 * time.Second,
		LLM: LLMConfig{
			Provider:  strings.ToLower(valueOr(getenv("LLM_PROVIDER"), ProviderOpenAI)),
			Model:     getenv("LLM_MODEL"),
			BaseURL:   getenv("LLM_BASE_URL"),
			MaxTokens: 4096,
		},
	}

	if v := getenv("MODEL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MODEL_TIMEOUT %q: %w", v, err)
		}
		cfg.ModelTimeout = d
	}

	if v := getenv("LLM_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_MAX_TOKENS %q: %w", v, err)
		}
		cfg.LLM.MaxTokens = n
	}

	switch cfg.LLM.Provider {
	case ProviderOpenAI:
		cfg.LLM.APIKey = getenv("OPENAI_API_KEY")
	case ProviderAnthropic:
		cfg.LLM.APIKey = getenv("ANTHROPIC_API_KEY")
	case ProviderGemini:
		cfg.LLM.APIKey = getenv("GEMINI_API_KEY")
	}

	return cfg, nil
}

// Validate validates the configuration needed to serve requests
func (c *Config) Validate() []string {
	var errors []string

	if c.SharedSecret == "" {
		errors = append(errors, "API_SHARED_SECRET is required")
	}

	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini:
		if c.LLM.APIKey == "" {
			errors = append(errors, fmt.Sprintf("API key for provider %q is required", c.LLM.Provider))
		}
	default:
		errors = append(errors, fmt.Sprintf("LLM_PROVIDER must be one of openai, anthropic, gemini (got %q)", c.LLM.Provider))
	}

	if c.ModelTimeout <= 0 {
		errors = append(errors, "MODEL_TIMEOUT must be positive")
	}

	if c.LLM.MaxTokens <= 0 {
		errors = append(errors, "LLM_MAX_TOKENS must be positive")
	}

	return errors
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
