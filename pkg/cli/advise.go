package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/integrity-lab/talos/pkg/cli/config"
	"github.com/integrity-lab/talos/pkg/domain/types"
	"github.com/integrity-lab/talos/pkg/usecase"
	"github.com/integrity-lab/talos/pkg/utils/safe"
)

func cmdAdvise() *cli.Command {
	var note string
	var seed uint64
	var llmCfg config.LLM
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "note",
			Usage:       "Technician note for the field-report scenario",
			Destination: &note,
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

	return &cli.Command{
		Name:      "advise",
		Aliases:   []string{"a"},
		Usage:     "Run one advisory scenario and print the result",
		ArgsUsage: "<scenario|all> (" + scenarioList() + ")",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			name := c.Args().First()
			if name == "" {
				return goerr.New("scenario argument is required", goerr.V("valid", scenarioList()))
			}

			uc, err := buildUseCases(ctx, seed, &llmCfg, &catalogCfg, nil)
			if err != nil {
				return err
			}

			if name == "all" {
				results, err := collectAll(ctx, uc, note)
				if err != nil {
					return err
				}
				for _, result := range results {
					printPanel(ctx, result)
				}
				return nil
			}

			sc, err := types.ParseScenario(name)
			if err != nil {
				return goerr.Wrap(err, "unknown scenario", goerr.V("valid", scenarioList()))
			}

			result, err := runScenario(ctx, uc, sc, note)
			if err != nil {
				return err
			}
			printPanel(ctx, result)

			return nil
		},
	}
}

// collectAll runs every advisory scenario in declaration order: the
// independent panels concurrently via Prefetch, the remaining ones
// sequentially.
func collectAll(ctx context.Context, uc *usecase.UseCases, note string) ([]*usecase.PanelResult, error) {
	prefetched, err := uc.Prefetch(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*usecase.PanelResult, 0, len(types.AllScenarios()))
	for _, sc := range types.AllScenarios() {
		result, ok := prefetched[sc]
		if !ok {
			result, err = runScenario(ctx, uc, sc, note)
			if err != nil {
				return nil, err
			}
		}
		results = append(results, result)
	}

	return results, nil
}

func runScenario(ctx context.Context, uc *usecase.UseCases, sc types.Scenario, note string) (*usecase.PanelResult, error) {
	switch sc {
	case types.ScenarioLifespan:
		return uc.Lifespan(ctx)
	case types.ScenarioCorrosion:
		return uc.Corrosion(ctx)
	case types.ScenarioFailureMode:
		return uc.FailureMode(ctx)
	case types.ScenarioFieldReport:
		return uc.FieldReport(ctx, note)
	case types.ScenarioCompliance:
		return uc.Compliance(ctx)
	case types.ScenarioCostForecast:
		return uc.CostForecast(ctx)
	case types.ScenarioWorkOrder:
		return uc.WorkOrder(ctx)
	default:
		return nil, goerr.New("unknown scenario", goerr.V("scenario", sc))
	}
}

func scenarioList() string {
	names := make([]string, 0, len(types.AllScenarios()))
	for _, sc := range types.AllScenarios() {
		names = append(names, sc.String())
	}
	return strings.Join(names, ", ")
}

func printPanel(ctx context.Context, result *usecase.PanelResult) {
	var sb strings.Builder

	header := color.New(color.Bold)
	sb.WriteString(header.Sprintf("=== %s ===\n", result.Scenario))

	if result.Notice != "" {
		sb.WriteString(result.Notice + "\n")
	}

	if result.Forecast != nil {
		sb.WriteString(fmt.Sprintf("Total replacement cost: $%d across %d assets\n",
			result.Forecast.TotalUSD, len(result.Forecast.Lines)))
	}

	for _, adv := range result.Advisories {
		c := panelColor(adv.PanelClass())
		if adv.AssetID != "" {
			sb.WriteString(c.Sprintf("[%s] %s\n", adv.AssetID, adv.DisplayText()))
		} else {
			sb.WriteString(c.Sprintln(adv.DisplayText()))
		}
	}

	safe.Write(ctx, os.Stdout, []byte(sb.String()))
}

func panelColor(class types.PanelClass) *color.Color {
	switch class {
	case types.PanelError:
		return color.New(color.FgRed)
	case types.PanelWarning:
		return color.New(color.FgYellow)
	case types.PanelSuccess:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgCyan)
	}
}
