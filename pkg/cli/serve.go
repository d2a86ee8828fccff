package cli

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/integrity-lab/talos/pkg/cli/config"
	httpctrl "github.com/integrity-lab/talos/pkg/controller/http"
	"github.com/integrity-lab/talos/pkg/service/advisor"
	"github.com/integrity-lab/talos/pkg/service/register"
	"github.com/integrity-lab/talos/pkg/usecase"
	"github.com/integrity-lab/talos/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var seed uint64
	var llmCfg config.LLM
	var catalogCfg config.Catalog
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("TALOS_ADDR"),
			Destination: &addr,
		},
		&cli.Uint64Flag{
			Name:        "seed",
			Usage:       "Random seed for the asset register (0 = non-deterministic)",
			Sources:     cli.EnvVars("TALOS_SEED"),
			Destination: &seed,
		},
	}
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the dashboard HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := buildUseCases(ctx, seed, &llmCfg, &catalogCfg, &slackCfg)
			if err != nil {
				return err
			}

			httpHandler, err := httpctrl.New(uc)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}

// buildUseCases wires the register snapshot, cost catalog, advisor and
// optional notifier from CLI configuration. The register is generated
// exactly once here; everything downstream reads the same snapshot.
func buildUseCases(ctx context.Context, seed uint64, llmCfg *config.LLM, catalogCfg *config.Catalog, slackCfg *config.Slack) (*usecase.UseCases, error) {
	genOpts := []register.Option{}
	if seed != 0 {
		genOpts = append(genOpts, register.WithRand(rand.New(rand.NewPCG(seed, seed))))
		logging.Default().Info("Using fixed random seed", "seed", seed)
	}
	gen := register.New(genOpts...)
	snapshot := gen.Generate()
	logging.Default().Info("Generated asset register", "assets", snapshot.Len())

	llmClient, err := llmCfg.Configure(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure LLM client")
	}
	logging.Default().LogAttrs(ctx, slog.LevelInfo, "Configured LLM client", llmCfg.LogAttrs()...)

	adv, err := advisor.New(llmClient)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create advisor")
	}

	costCatalog, err := catalogCfg.Configure()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load cost catalog")
	}

	ucOpts := []usecase.Option{
		usecase.WithCatalog(costCatalog),
		usecase.WithRand(gen.Rand()),
	}

	if slackCfg != nil {
		notifier, err := slackCfg.Configure()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure Slack notifier")
		}
		if notifier != nil {
			ucOpts = append(ucOpts, usecase.WithNotifier(notifier))
			logging.Default().Info("Slack notification enabled")
		}
	}

	return usecase.New(snapshot, adv, ucOpts...), nil
}
