package types

import "fmt"

// Scenario identifies an advisory scenario, one per dashboard panel
// that calls the text-generation backend.
type Scenario string

const (
	ScenarioLifespan     Scenario = "lifespan"
	ScenarioCorrosion    Scenario = "corrosion"
	ScenarioFailureMode  Scenario = "failure-mode"
	ScenarioFieldReport  Scenario = "field-report"
	ScenarioCompliance   Scenario = "compliance"
	ScenarioCostForecast Scenario = "cost-forecast"
	ScenarioWorkOrder    Scenario = "work-order"
)

// AllScenarios returns all valid advisory scenarios
func AllScenarios() []Scenario {
	return []Scenario{
		ScenarioLifespan,
		ScenarioCorrosion,
		ScenarioFailureMode,
		ScenarioFieldReport,
		ScenarioCompliance,
		ScenarioCostForecast,
		ScenarioWorkOrder,
	}
}

// IsValid checks if the scenario is valid
func (x Scenario) IsValid() bool {
	switch x {
	case ScenarioLifespan,
		ScenarioCorrosion,
		ScenarioFailureMode,
		ScenarioFieldReport,
		ScenarioCompliance,
		ScenarioCostForecast,
		ScenarioWorkOrder:
		return true
	default:
		return false
	}
}

// String returns the string representation of the scenario
func (x Scenario) String() string {
	return string(x)
}

// ParseScenario parses a string into a Scenario
func ParseScenario(s string) (Scenario, error) {
	sc := Scenario(s)
	if !sc.IsValid() {
		return "", fmt.Errorf("invalid scenario: %s", s)
	}
	return sc, nil
}

// PanelClass is the display classification of a rendered panel message
type PanelClass string

const (
	PanelInfo    PanelClass = "info"
	PanelWarning PanelClass = "warning"
	PanelError   PanelClass = "error"
	PanelSuccess PanelClass = "success"
)

// PanelClass returns the display classification used for successful
// advisories of this scenario. Failed advisories always render as
// PanelError regardless of scenario.
func (x Scenario) PanelClass() PanelClass {
	switch x {
	case ScenarioCorrosion:
		return PanelWarning
	case ScenarioFailureMode:
		return PanelError
	case ScenarioFieldReport, ScenarioCostForecast:
		return PanelSuccess
	default:
		return PanelInfo
	}
}
