// Package config provides centralized configuration for the frontend
// agent host. Configuration is loaded from environment variables with
// sensible defaults; an optional YAML file overlays the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend provider names.
const (
	ProviderHTTP   = "http"
	ProviderOpenAI = "openai"
)

// Config holds all application configuration.
type Config struct {
	LogLevel     string `yaml:"log_level"`
	AgentVersion string `yaml:"agent_version"`
	DefaultAgent string `yaml:"default_agent"`

	// Generation backend
	EnableLLM       bool          `yaml:"enable_llm"`
	BackendProvider string        `yaml:"backend_provider"`
	ModelName       string        `yaml:"model_name"`
	ModelEndpoint   string        `yaml:"model_endpoint"`
	ModelAPIKey     string        `yaml:"-"` // never serialize
	ModelMaxTokens  int           `yaml:"model_max_tokens"`
	ModelTimeout    time.Duration `yaml:"model_timeout"`
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		AgentVersion: getEnv("AGENT_VERSION", "1.0.0"),
		DefaultAgent: getEnv("DEFAULT_AGENT", ""),

		EnableLLM:       getBoolEnv("ENABLE_LLM", true),
		BackendProvider: getEnv("BACKEND_PROVIDER", ProviderHTTP),
		ModelName:       getEnv("MODEL_NAME", "gpt-4o-mini"),
		ModelEndpoint:   getEnv("MODEL_ENDPOINT", "https://models.inference.ai.azure.com"),
		ModelAPIKey:     os.Getenv("MODEL_API_KEY"),
		ModelMaxTokens:  getIntEnv("MODEL_MAX_TOKENS", 4096),
		ModelTimeout:    getDurationEnv("MODEL_TIMEOUT", 30*time.Second),
	}
}

// ApplyFile overlays configuration from a YAML file onto c.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	switch c.BackendProvider {
	case ProviderHTTP, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown backend provider %q", c.BackendProvider)
	}
	if c.EnableLLM && c.BackendProvider == ProviderOpenAI && c.ModelAPIKey == "" {
		return fmt.Errorf("MODEL_API_KEY is required for the openai backend")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
