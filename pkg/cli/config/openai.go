package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"
)

// OpenAI holds configuration for the OpenAI LLM client
type OpenAI struct {
	apiKey         string
	model          string
	embeddingModel string
}

// Flags returns CLI flags for OpenAI configuration
func (o *OpenAI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Sources:     cli.EnvVars("SOLECHAT_OPENAI_API_KEY"),
			Destination: &o.apiKey,
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "OpenAI completion model",
			Value:       "gpt-4o-mini",
			Sources:     cli.EnvVars("SOLECHAT_OPENAI_MODEL"),
			Destination: &o.model,
		},
		&cli.StringFlag{
			Name:        "openai-embedding-model",
			Usage:       "OpenAI embedding model",
			Value:       "text-embedding-3-small",
			Sources:     cli.EnvVars("SOLECHAT_OPENAI_EMBEDDING_MODEL"),
			Destination: &o.embeddingModel,
		},
	}
}

// LogAttrs returns log attributes for the OpenAI configuration.
// The API key is intentionally absent.
func (o *OpenAI) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("model", o.model),
		slog.String("embedding_model", o.embeddingModel),
		slog.Bool("api_key_set", o.apiKey != ""),
	}
}

// Configure creates a new OpenAI LLM client from the configured flags.
// Returns nil if no API key is configured (semantic blog matching and
// the chat endpoint will be disabled).
func (o *OpenAI) Configure(ctx context.Context) (gollem.LLMClient, error) {
	if o.apiKey == "" {
		return nil, nil
	}

	client, err := openai.New(ctx, o.apiKey,
		openai.WithModel(o.model),
		openai.WithEmbeddingModel(o.embeddingModel),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create OpenAI client")
	}

	return client, nil
}
