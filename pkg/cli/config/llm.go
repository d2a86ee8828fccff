package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/m-mizutani/gollem/llm/openai"
	"github.com/urfave/cli/v3"
)

// LLM holds configuration for the text-generation backend
type LLM struct {
	provider       string
	model          string
	openaiAPIKey   string
	geminiProject  string
	geminiLocation string
}

// Flags returns CLI flags for LLM configuration
func (x *LLM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "llm-provider",
			Usage:       "Text-generation provider (openai or gemini)",
			Value:       "openai",
			Sources:     cli.EnvVars("TALOS_LLM_PROVIDER"),
			Destination: &x.provider,
		},
		&cli.StringFlag{
			Name:        "llm-model",
			Usage:       "Model identifier sent with every request",
			Value:       "gpt-4o",
			Sources:     cli.EnvVars("TALOS_LLM_MODEL"),
			Destination: &x.model,
		},
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key (required for the openai provider)",
			Sources:     cli.EnvVars("TALOS_OPENAI_API_KEY", "OPENAI_API_KEY"),
			Destination: &x.openaiAPIKey,
		},
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project ID for the gemini provider",
			Sources:     cli.EnvVars("TALOS_GEMINI_PROJECT"),
			Destination: &x.geminiProject,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud location for the gemini provider",
			Value:       "us-central1",
			Sources:     cli.EnvVars("TALOS_GEMINI_LOCATION"),
			Destination: &x.geminiLocation,
		},
	}
}

// LogAttrs returns log attributes for the LLM configuration. The API
// key is never logged.
func (x *LLM) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("provider", x.provider),
		slog.String("model", x.model),
	}
}

// Configure creates the LLM client from the configured flags
func (x *LLM) Configure(ctx context.Context) (gollem.LLMClient, error) {
	switch x.provider {
	case "openai":
		if x.openaiAPIKey == "" {
			return nil, goerr.New("openai-api-key is required for the openai provider")
		}
		client, err := openai.New(ctx, x.openaiAPIKey, openai.WithModel(x.model))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create OpenAI client")
		}
		return client, nil

	case "gemini":
		if x.geminiProject == "" {
			return nil, goerr.New("gemini-project is required for the gemini provider")
		}
		client, err := gemini.New(ctx, x.geminiProject, x.geminiLocation, gemini.WithModel(x.model))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Gemini client")
		}
		return client, nil

	default:
		return nil, goerr.New("invalid LLM provider", goerr.V("provider", x.provider))
	}
}
