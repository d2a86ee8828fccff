package cli

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/integrity-lab/talos/pkg/cli/config"
	"github.com/integrity-lab/talos/pkg/utils/errutil"
	"github.com/integrity-lab/talos/pkg/utils/logging"
)

func Run(ctx context.Context, args []string, version string) error {
	// Credentials may live in a local .env file, matching the legacy
	// dashboard. A missing file is fine.
	if err := godotenv.Load(); err != nil {
		logging.Default().Debug("no .env file loaded", "error", err.Error())
	}

	var loggerCfg config.Logger
	var closer func()

	app := &cli.Command{
		Name:    "talos",
		Usage:   "Talos asset integrity advisory service",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Info("Starting talos", "logger", &loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdAdvise(),
			cmdRegister(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return errutil.Handle(ctx, err, "failed to run app")
	}

	return nil
}
