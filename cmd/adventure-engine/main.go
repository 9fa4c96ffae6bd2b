// Command adventure-engine runs the MCP server hosting the interactive
// fiction tool surface. Configuration comes from the environment (and an
// optional .env file); the process refuses to start when required
// credentials are missing.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/cr7ritesh/adventure-engine/config"
	"github.com/cr7ritesh/adventure-engine/engine"
	"github.com/cr7ritesh/adventure-engine/logging"
	"github.com/cr7ritesh/adventure-engine/narrator"
	anthropicnarrator "github.com/cr7ritesh/adventure-engine/narrator/anthropic"
	gemininarrator "github.com/cr7ritesh/adventure-engine/narrator/gemini"
	openainarrator "github.com/cr7ritesh/adventure-engine/narrator/openai"
	"github.com/cr7ritesh/adventure-engine/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("adventure-engine: %v", err)
	}
}

// run holds the process lifecycle so deferred cleanups fire on every exit
// path; main only maps its error to the exit code.
func run() error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:     parseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Component: "adventure-engine",
	}).WithContext("transport", cfg.Transport)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n, cleanup, err := newNarrator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("narrator setup: %w", err)
	}
	defer cleanup()
	logger.Info("narrator ready provider=%s model=%s", n.Info().Provider, n.Info().Name)

	eng := engine.New(n, func(o *engine.Options) {
		o.Logger = logger.WithComponent("engine")
	})
	srv := server.New(eng, cfg.CallerID, cfg.AuthToken, func(o *server.Options) {
		o.Logger = logger.WithComponent("server")
	})

	switch cfg.Transport {
	case config.TransportStdio:
		return srv.RunStdio(ctx)
	default:
		return srv.ServeHTTP(ctx, cfg.BindAddr)
	}
}

// newNarrator instantiates the configured provider. The returned cleanup
// releases provider resources and is safe to call unconditionally.
func newNarrator(ctx context.Context, cfg *config.Config) (narrator.Narrator, func(), error) {
	noop := func() {}
	switch cfg.Provider {
	case config.ProviderGemini:
		n, err := gemininarrator.New(ctx, cfg.GeminiAPIKey, func(o *gemininarrator.Options) {
			if cfg.NarratorModel != "" {
				o.Model = cfg.NarratorModel
			}
		})
		if err != nil {
			return nil, noop, err
		}
		return n, func() { _ = n.Close() }, nil
	case config.ProviderOpenAI:
		// The OpenAI SDK reads OPENAI_API_KEY from the environment; config
		// validation already guaranteed it is present.
		n := openainarrator.New(func(o *openainarrator.Options) {
			if cfg.NarratorModel != "" {
				o.Model = cfg.NarratorModel
			}
		})
		return n, noop, nil
	case config.ProviderAnthropic:
		n := anthropicnarrator.New(func(o *anthropicnarrator.Options) {
			o.APIKey = cfg.AnthropicAPIKey
			if cfg.NarratorModel != "" {
				o.Model = anthropic.Model(cfg.NarratorModel)
			}
		})
		return n, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown narrator provider %q", cfg.Provider)
	}
}

func parseLevel(level string) logging.LogLevel {
	switch level {
	case "debug":
		return logging.LogLevelDebug
	case "warn":
		return logging.LogLevelWarn
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}
