// Package config loads process configuration from the environment. A .env
// file is honored when present, then environment variables are parsed over
// the defaults. Required credentials are validated once at startup so a
// misconfigured process refuses to serve any request.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Provider selects which narrative backend the engine talks to.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Transport selects how the tool surface is served.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Config holds all startup configuration for the adventure engine.
type Config struct {
	AuthToken string `env:"AUTH_TOKEN"` // Bearer token required on every HTTP tool call
	CallerID  string `env:"MY_NUMBER"`  // Deployment identity returned by the validate tool

	Provider        string `env:"NARRATOR_PROVIDER"` // gemini|openai|anthropic
	NarratorModel   string `env:"NARRATOR_MODEL"`    // Provider model id; empty uses the provider default
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`    // Required when Provider is gemini
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`    // Required when Provider is openai
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"` // Required when Provider is anthropic

	BindAddr  string `env:"BIND_ADDR"` // HTTP listen address for the tool surface
	Transport string `env:"TRANSPORT"` // http|stdio

	LogLevel  string `env:"LOG_LEVEL"`  // debug|info|warn|error
	LogFormat string `env:"LOG_FORMAT"` // json|text
}

// Defaults returns a configuration with preset values, overridden by .env
// and the process environment.
func Defaults() *Config {
	return &Config{
		Provider:  ProviderGemini,
		BindAddr:  "0.0.0.0:8086",
		Transport: TransportHTTP,
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// New loads and validates the configuration. Invisible whitespace in .env
// values is a recurring deployment mistake, so every credential is trimmed
// before the blank check.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.AuthToken = strings.TrimSpace(cfg.AuthToken)
	cfg.CallerID = strings.TrimSpace(cfg.CallerID)
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	cfg.NarratorModel = strings.TrimSpace(cfg.NarratorModel)
	cfg.GeminiAPIKey = strings.TrimSpace(cfg.GeminiAPIKey)
	cfg.OpenAIAPIKey = strings.TrimSpace(cfg.OpenAIAPIKey)
	cfg.AnthropicAPIKey = strings.TrimSpace(cfg.AnthropicAPIKey)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.AuthToken == "" {
		return fmt.Errorf("AUTH_TOKEN must be set")
	}
	if c.CallerID == "" {
		return fmt.Errorf("MY_NUMBER must be set")
	}

	switch c.Provider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY must be set when NARRATOR_PROVIDER is %s", ProviderGemini)
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY must be set when NARRATOR_PROVIDER is %s", ProviderOpenAI)
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY must be set when NARRATOR_PROVIDER is %s", ProviderAnthropic)
		}
	default:
		return fmt.Errorf("unknown NARRATOR_PROVIDER %q", c.Provider)
	}

	switch c.Transport {
	case TransportHTTP, TransportStdio:
	default:
		return fmt.Errorf("unknown TRANSPORT %q", c.Transport)
	}
	return nil
}
