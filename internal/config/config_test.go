package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOG_LEVEL", "AGENT_VERSION", "DEFAULT_AGENT",
		"ENABLE_LLM", "BACKEND_PROVIDER", "MODEL_NAME",
		"MODEL_ENDPOINT", "MODEL_API_KEY", "MODEL_MAX_TOKENS", "MODEL_TIMEOUT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "1.0.0", cfg.AgentVersion)
	assert.Empty(t, cfg.DefaultAgent)
	assert.True(t, cfg.EnableLLM)
	assert.Equal(t, ProviderHTTP, cfg.BackendProvider)
	assert.Equal(t, "gpt-4o-mini", cfg.ModelName)
	assert.Equal(t, "https://models.inference.ai.azure.com", cfg.ModelEndpoint)
	assert.Equal(t, 4096, cfg.ModelMaxTokens)
	assert.Equal(t, 30*time.Second, cfg.ModelTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEFAULT_AGENT", "react_agent")
	t.Setenv("ENABLE_LLM", "false")
	t.Setenv("BACKEND_PROVIDER", ProviderOpenAI)
	t.Setenv("MODEL_NAME", "gpt-4o")
	t.Setenv("MODEL_API_KEY", "secret")
	t.Setenv("MODEL_MAX_TOKENS", "1024")
	t.Setenv("MODEL_TIMEOUT", "90s")

	cfg := Load()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "react_agent", cfg.DefaultAgent)
	assert.False(t, cfg.EnableLLM)
	assert.Equal(t, ProviderOpenAI, cfg.BackendProvider)
	assert.Equal(t, "gpt-4o", cfg.ModelName)
	assert.Equal(t, "secret", cfg.ModelAPIKey)
	assert.Equal(t, 1024, cfg.ModelMaxTokens)
	assert.Equal(t, 90*time.Second, cfg.ModelTimeout)
}

func TestLoadMalformedEnvFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENABLE_LLM", "not-a-bool")
	t.Setenv("MODEL_MAX_TOKENS", "lots")
	t.Setenv("MODEL_TIMEOUT", "soon")

	cfg := Load()
	assert.True(t, cfg.EnableLLM)
	assert.Equal(t, 4096, cfg.ModelMaxTokens)
	assert.Equal(t, 30*time.Second, cfg.ModelTimeout)
}

func TestApplyFileOverlaysEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODEL_NAME", "env-model")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"log_level: warn\ndefault_agent: vue_agent\nmodel_max_tokens: 2048\n"), 0o600))

	cfg := Load()
	require.NoError(t, cfg.ApplyFile(path))

	// File values win; untouched env values survive.
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "vue_agent", cfg.DefaultAgent)
	assert.Equal(t, 2048, cfg.ModelMaxTokens)
	assert.Equal(t, "env-model", cfg.ModelName)
}

func TestApplyFileMissing(t *testing.T) {
	cfg := Load()
	err := cfg.ApplyFile("/nonexistent/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestApplyFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unterminated"), 0o600))

	err := Load().ApplyFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.NoError(t, cfg.Validate())

	cfg.BackendProvider = "mystery"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend provider")

	cfg.BackendProvider = ProviderOpenAI
	cfg.ModelAPIKey = ""
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MODEL_API_KEY")

	cfg.ModelAPIKey = "k"
	assert.NoError(t, cfg.Validate())

	// Disabled LLM never needs a key.
	cfg.ModelAPIKey = ""
	cfg.EnableLLM = false
	assert.NoError(t, cfg.Validate())
}
