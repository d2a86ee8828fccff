// Package notify posts generated advisories to external channels.
package notify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/integrity-lab/talos/pkg/domain/interfaces"
	"github.com/integrity-lab/talos/pkg/domain/model"
	"github.com/integrity-lab/talos/pkg/domain/types"
)

type slackNotifier struct {
	client  *slack.Client
	channel string
}

var _ interfaces.Notifier = &slackNotifier{}

// NewSlack creates a Notifier that posts advisories to a Slack channel
func NewSlack(botToken, channel string) (interfaces.Notifier, error) {
	if botToken == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channel == "" {
		return nil, goerr.New("Slack channel is required")
	}

	return &slackNotifier{
		client:  slack.New(botToken),
		channel: channel,
	}, nil
}

// Notify posts the advisory to the configured channel. The attachment
// color follows the panel classification.
func (x *slackNotifier) Notify(ctx context.Context, advisory *model.Advisory) error {
	title := fmt.Sprintf("Advisory: %s", advisory.Scenario)
	if advisory.AssetID != "" {
		title = fmt.Sprintf("Advisory: %s (%s)", advisory.Scenario, advisory.AssetID)
	}

	attachment := slack.Attachment{
		Title: title,
		Text:  advisory.DisplayText(),
		Color: attachmentColor(advisory.PanelClass()),
	}

	_, _, err := x.client.PostMessageContext(ctx, x.channel,
		slack.MsgOptionAttachments(attachment),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post advisory to Slack",
			goerr.V("channel", x.channel),
			goerr.V("scenario", advisory.Scenario),
		)
	}

	return nil
}

func attachmentColor(class types.PanelClass) string {
	switch class {
	case types.PanelError:
		return "danger"
	case types.PanelWarning:
		return "warning"
	default:
		return "good"
	}
}
