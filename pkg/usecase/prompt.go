package usecase

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"

	"github.com/integrity-lab/talos/pkg/domain/model"
)

//go:embed prompt/asset_condition.md
var assetConditionPromptTmpl string

//go:embed prompt/field_report.md
var fieldReportPromptTmpl string

//go:embed prompt/compliance.md
var compliancePromptTmpl string

//go:embed prompt/cost_forecast.md
var costForecastPromptTmpl string

//go:embed prompt/work_order.md
var workOrderPromptTmpl string

var (
	assetConditionPrompt = template.Must(template.New("asset_condition").Parse(assetConditionPromptTmpl))
	fieldReportPrompt    = template.Must(template.New("field_report").Parse(fieldReportPromptTmpl))
	compliancePrompt     = template.Must(template.New("compliance").Parse(compliancePromptTmpl))
	costForecastPrompt   = template.Must(template.New("cost_forecast").Parse(costForecastPromptTmpl))
	workOrderPrompt      = template.Must(template.New("work_order").Parse(workOrderPromptTmpl))
)

// renderPrompt executes a prompt template. Rendering is deterministic:
// given the same data the output is byte-identical.
func renderPrompt(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to render prompt", goerr.V("template", tmpl.Name()))
	}
	return strings.TrimSpace(buf.String()), nil
}

// BuildAssetConditionPrompt renders the shared condition prompt used by
// the lifespan, corrosion and failure-mode scenarios. The template is
// deliberately shared: all three ask for an explanation of the asset's
// condition based on the same attribute set.
func BuildAssetConditionPrompt(asset *model.Asset) (string, error) {
	return renderPrompt(assetConditionPrompt, asset)
}

// BuildFieldReportPrompt embeds the technician note verbatim
func BuildFieldReportPrompt(note string) (string, error) {
	return renderPrompt(fieldReportPrompt, struct{ Note string }{Note: note})
}

// BuildCompliancePrompt renders the regulatory compliance prompt
func BuildCompliancePrompt(asset *model.Asset) (string, error) {
	return renderPrompt(compliancePrompt, asset)
}

// BuildCostForecastPrompt renders the capital planning prompt from the
// aggregated replacement total.
func BuildCostForecastPrompt(totalUSD int64) (string, error) {
	return renderPrompt(costForecastPrompt, struct{ TotalUSD int64 }{TotalUSD: totalUSD})
}

// BuildWorkOrderPrompt renders the work order prompt
func BuildWorkOrderPrompt(asset *model.Asset) (string, error) {
	return renderPrompt(workOrderPrompt, asset)
}
