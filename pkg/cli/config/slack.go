package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/integrity-lab/talos/pkg/domain/interfaces"
	"github.com/integrity-lab/talos/pkg/service/notify"
)

// Slack holds configuration for the optional Slack advisory notifier
type Slack struct {
	botToken string
	channel  string
}

// Flags returns CLI flags for Slack configuration
func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack bot token for posting critical work order advisories",
			Sources:     cli.EnvVars("TALOS_SLACK_BOT_TOKEN"),
			Destination: &x.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID that receives advisories",
			Sources:     cli.EnvVars("TALOS_SLACK_CHANNEL"),
			Destination: &x.channel,
		},
	}
}

// IsConfigured reports whether Slack notification is enabled
func (x *Slack) IsConfigured() bool {
	return x.botToken != "" || x.channel != ""
}

// Configure creates the Slack notifier, or returns nil when Slack is
// not configured at all. Partial configuration is an error.
func (x *Slack) Configure() (interfaces.Notifier, error) {
	if x.botToken == "" && x.channel == "" {
		return nil, nil
	}
	if x.botToken == "" || x.channel == "" {
		return nil, goerr.New("slack-bot-token and slack-channel must be set together")
	}

	return notify.NewSlack(x.botToken, x.channel)
}
