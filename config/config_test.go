package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := Defaults()
	cfg.AuthToken = "secret"
	cfg.CallerID = "+15551234567"
	cfg.GeminiAPIKey = "key"
	return cfg
}

func TestConfig_ValidateAccepts(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestConfig_ValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing auth token", mutate: func(c *Config) { c.AuthToken = "" }},
		{name: "missing caller id", mutate: func(c *Config) { c.CallerID = "" }},
		{name: "missing gemini key", mutate: func(c *Config) { c.GeminiAPIKey = "" }},
		{name: "openai without key", mutate: func(c *Config) { c.Provider = ProviderOpenAI }},
		{name: "anthropic without key", mutate: func(c *Config) { c.Provider = ProviderAnthropic }},
		{name: "unknown provider", mutate: func(c *Config) { c.Provider = "llama" }},
		{name: "unknown transport", mutate: func(c *Config) { c.Transport = "grpc" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.validate())
		})
	}
}

func TestNew_TrimsWhitespace(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "  secret \n")
	t.Setenv("MY_NUMBER", " +15551234567 ")
	t.Setenv("GEMINI_API_KEY", " key ")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.AuthToken)
	assert.Equal(t, "+15551234567", cfg.CallerID)
	assert.Equal(t, "key", cfg.GeminiAPIKey)
}

func TestNew_BlankCredentialFails(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "   ")
	t.Setenv("MY_NUMBER", "+15551234567")
	t.Setenv("GEMINI_API_KEY", "key")

	_, err := New()
	assert.Error(t, err)
}
