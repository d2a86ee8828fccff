package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/integrity-lab/talos/pkg/domain/model"
	"github.com/integrity-lab/talos/pkg/domain/types"
	"github.com/integrity-lab/talos/pkg/utils/async"
	"github.com/integrity-lab/talos/pkg/utils/logging"
)

const (
	// warningRUL is the remaining-useful-life cutoff for the lifespan
	// and cost forecast panels
	warningRUL = 6
	// criticalRUL is the cutoff for the work order panel
	criticalRUL = 3
	// topAssetCount is the number of rows shown by the corrosion and
	// failure-mode panels
	topAssetCount = 5
)

// DefaultFieldNote is the pre-filled technician note of the field
// report panel
const DefaultFieldNote = "Pump A003 vibrating heavily and overheating. Corrosion visible."

// PanelResult is the computed content of one dashboard panel: the rows
// it displays, zero or more advisories, and an optional notice when the
// selection is empty.
type PanelResult struct {
	Scenario   types.Scenario             `json:"scenario"`
	Assets     []model.Asset              `json:"assets"`
	Advisories []*model.Advisory          `json:"advisories"`
	Forecast   *model.ReplacementForecast `json:"forecast,omitempty"`
	Notice     string                     `json:"notice,omitempty"`
}

// Lifespan runs the lifespan estimator panel: all assets nearing end of
// life, plus one advisory for a randomly sampled asset from that set.
func (uc *UseCases) Lifespan(ctx context.Context) (*PanelResult, error) {
	result := &PanelResult{
		Scenario: types.ScenarioLifespan,
		Assets:   uc.register.LowRUL(warningRUL),
	}

	target := uc.sample(result.Assets)
	if target == nil {
		result.Notice = "No assets nearing end of life."
		return result, nil
	}

	prompt, err := BuildAssetConditionPrompt(target)
	if err != nil {
		return nil, err
	}

	advisory := uc.advisor.Advise(ctx, types.ScenarioLifespan, prompt)
	advisory.AssetID = target.ID
	result.Advisories = append(result.Advisories, advisory)

	return result, nil
}

// Corrosion runs the corrosion simulator panel: the top corroding assets
// with one advisory each. The prompt is bound freshly for every row.
func (uc *UseCases) Corrosion(ctx context.Context) (*PanelResult, error) {
	return uc.perAssetPanel(ctx, types.ScenarioCorrosion, uc.register.TopByCorrosion(topAssetCount))
}

// FailureMode runs the failure mode predictor panel: the most degraded
// assets with one advisory each.
func (uc *UseCases) FailureMode(ctx context.Context) (*PanelResult, error) {
	return uc.perAssetPanel(ctx, types.ScenarioFailureMode, uc.register.TopByDegradation(topAssetCount))
}

func (uc *UseCases) perAssetPanel(ctx context.Context, sc types.Scenario, assets []model.Asset) (*PanelResult, error) {
	result := &PanelResult{
		Scenario: sc,
		Assets:   assets,
	}

	for i := range assets {
		prompt, err := BuildAssetConditionPrompt(&assets[i])
		if err != nil {
			return nil, err
		}

		advisory := uc.advisor.Advise(ctx, sc, prompt)
		advisory.AssetID = assets[i].ID
		result.Advisories = append(result.Advisories, advisory)
	}

	return result, nil
}

// FieldReport summarizes a free-text technician note into a risk
// advisory. An empty note falls back to DefaultFieldNote.
func (uc *UseCases) FieldReport(ctx context.Context, note string) (*PanelResult, error) {
	if note == "" {
		note = DefaultFieldNote
	}

	prompt, err := BuildFieldReportPrompt(note)
	if err != nil {
		return nil, err
	}

	return &PanelResult{
		Scenario:   types.ScenarioFieldReport,
		Advisories: []*model.Advisory{uc.advisor.Advise(ctx, types.ScenarioFieldReport, prompt)},
	}, nil
}

// Compliance samples one asset from the whole register and asks for
// upcoming regulatory compliance risks.
func (uc *UseCases) Compliance(ctx context.Context) (*PanelResult, error) {
	target := uc.sample(uc.register.All())
	if target == nil {
		return nil, goerr.New("register is empty")
	}

	prompt, err := BuildCompliancePrompt(target)
	if err != nil {
		return nil, err
	}

	advisory := uc.advisor.Advise(ctx, types.ScenarioCompliance, prompt)
	advisory.AssetID = target.ID

	return &PanelResult{
		Scenario:   types.ScenarioCompliance,
		Assets:     []model.Asset{*target},
		Advisories: []*model.Advisory{advisory},
	}, nil
}

// CostForecast estimates the replacement spend for assets nearing end of
// life and asks for a capital planning summary over the total. Costs are
// sampled fresh per request.
func (uc *UseCases) CostForecast(ctx context.Context) (*PanelResult, error) {
	assets := uc.register.LowRUL(warningRUL)

	result := &PanelResult{
		Scenario: types.ScenarioCostForecast,
		Assets:   assets,
	}

	if len(assets) == 0 {
		result.Notice = "No assets nearing end of life."
		return result, nil
	}

	forecast := &model.ReplacementForecast{
		Lines: make([]model.ReplacementLine, 0, len(assets)),
	}
	now := uc.now()
	for i := range assets {
		cost := uc.estimateCost(&assets[i])
		forecast.Lines = append(forecast.Lines, model.ReplacementLine{
			Asset:     assets[i],
			CostUSD:   cost,
			ReplaceBy: now.AddDate(0, 0, assets[i].RULMonths*30),
		})
		forecast.TotalUSD += cost
	}
	result.Forecast = forecast

	prompt, err := BuildCostForecastPrompt(forecast.TotalUSD)
	if err != nil {
		return nil, err
	}

	result.Advisories = append(result.Advisories, uc.advisor.Advise(ctx, types.ScenarioCostForecast, prompt))

	return result, nil
}

// WorkOrder builds a prioritized work order for one randomly sampled
// critical asset. When a notifier is configured, a successful advisory
// is delivered asynchronously so posting can never block the panel.
func (uc *UseCases) WorkOrder(ctx context.Context) (*PanelResult, error) {
	critical := uc.register.LowRUL(criticalRUL)

	result := &PanelResult{
		Scenario: types.ScenarioWorkOrder,
		Assets:   critical,
	}

	target := uc.sample(critical)
	if target == nil {
		result.Notice = "No urgent work orders required."
		return result, nil
	}

	prompt, err := BuildWorkOrderPrompt(target)
	if err != nil {
		return nil, err
	}

	advisory := uc.advisor.Advise(ctx, types.ScenarioWorkOrder, prompt)
	advisory.AssetID = target.ID
	result.Advisories = append(result.Advisories, advisory)

	if uc.notifier != nil && advisory.OK() {
		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.notifier.Notify(ctx, advisory)
		})
	}

	return result, nil
}

// Prefetch runs all single-advisory panels concurrently. The register
// snapshot is read-only and each advisory call is independent, so the
// panels are safe to run in parallel.
func (uc *UseCases) Prefetch(ctx context.Context) (map[types.Scenario]*PanelResult, error) {
	panels := map[types.Scenario]func(context.Context) (*PanelResult, error){
		types.ScenarioLifespan:     uc.Lifespan,
		types.ScenarioCompliance:   uc.Compliance,
		types.ScenarioCostForecast: uc.CostForecast,
		types.ScenarioWorkOrder:    uc.WorkOrder,
	}

	var mu sync.Mutex
	results := make(map[types.Scenario]*PanelResult, len(panels))

	eg, ctx := errgroup.WithContext(ctx)
	for sc, run := range panels {
		eg.Go(func() error {
			result, err := run(ctx)
			if err != nil {
				return goerr.Wrap(err, "panel prefetch failed", goerr.V("scenario", sc))
			}
			mu.Lock()
			results[sc] = result
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("prefetched panels", "count", len(results))

	return results, nil
}
