package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/integrity-lab/talos/pkg/domain/types"
)

func TestParseScenario(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.Scenario
		wantErr bool
	}{
		{
			name:  "valid lifespan",
			input: "lifespan",
			want:  types.ScenarioLifespan,
		},
		{
			name:  "valid work order",
			input: "work-order",
			want:  types.ScenarioWorkOrder,
		},
		{
			name:    "invalid scenario",
			input:   "predictive-maintenance",
			wantErr: true,
		},
		{
			name:    "empty scenario",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseScenario(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestScenarioPanelClass(t *testing.T) {
	tests := []struct {
		scenario types.Scenario
		want     types.PanelClass
	}{
		{types.ScenarioLifespan, types.PanelInfo},
		{types.ScenarioCorrosion, types.PanelWarning},
		{types.ScenarioFailureMode, types.PanelError},
		{types.ScenarioFieldReport, types.PanelSuccess},
		{types.ScenarioCompliance, types.PanelInfo},
		{types.ScenarioCostForecast, types.PanelSuccess},
		{types.ScenarioWorkOrder, types.PanelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.scenario.String(), func(t *testing.T) {
			gt.Value(t, tt.scenario.PanelClass()).Equal(tt.want)
		})
	}
}

func TestAllScenariosAreValid(t *testing.T) {
	for _, sc := range types.AllScenarios() {
		gt.Bool(t, sc.IsValid()).True()
	}
}
