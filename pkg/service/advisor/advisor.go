// Package advisor wraps the external text-generation call behind a
// uniform result type. Every failure (session creation, generation,
// empty response) is contained in the returned advisory; callers never
// see a Go error from this package.
package advisor

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/integrity-lab/talos/pkg/domain/interfaces"
	"github.com/integrity-lab/talos/pkg/domain/model"
	"github.com/integrity-lab/talos/pkg/domain/types"
	"github.com/integrity-lab/talos/pkg/utils/logging"
)

// systemPrompt is the single fixed system instruction sent with every request
const systemPrompt = "You are an asset integrity advisor."

type client struct {
	llmClient gollem.LLMClient
}

var _ interfaces.Advisor = &client{}

// Option is a functional option for client configuration
type Option func(*client)

// New creates an Advisor backed by the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (interfaces.Advisor, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient: llmClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Advise sends the prompt to the text-generation backend and returns a
// tagged advisory. One session per call: advisory calls are independent
// and share no conversational state.
func (c *client) Advise(ctx context.Context, sc types.Scenario, prompt string) *model.Advisory {
	logger := logging.From(ctx)

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return c.fail(ctx, sc, prompt, goerr.Wrap(err, "failed to create LLM session"))
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return c.fail(ctx, sc, prompt, goerr.Wrap(err, "failed to generate advisory"))
	}
	if len(resp.Texts) == 0 {
		return c.fail(ctx, sc, prompt, goerr.New("advisory generation returned empty response"))
	}

	advisory := model.NewAdvisory(sc, strings.TrimSpace(resp.Texts[0]))
	advisory.Prompt = prompt

	logger.Debug("advisory generated",
		"scenario", sc,
		"prompt_length", len(prompt),
		"text_length", len(advisory.Text),
	)

	return advisory
}

func (c *client) fail(ctx context.Context, sc types.Scenario, prompt string, err error) *model.Advisory {
	logging.From(ctx).Error("advisory generation failed",
		"scenario", sc,
		"error", err.Error(),
	)

	advisory := model.NewFailedAdvisory(sc, err)
	advisory.Prompt = prompt
	return advisory
}
