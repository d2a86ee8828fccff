package types

import "github.com/fatih/color"

// RiskLevel represents the replacement urgency of an asset, derived
// from its remaining useful life.
type RiskLevel string

const (
	// RiskCritical means immediate replacement required (RUL <= 3 months)
	RiskCritical RiskLevel = "critical"
	// RiskWarning means the asset is nearing replacement (3 < RUL <= 6 months)
	RiskWarning RiskLevel = "warning"
	// RiskSafe means no replacement pressure (RUL > 6 months)
	RiskSafe RiskLevel = "safe"
)

// ClassifyRUL maps remaining useful life in months to a risk level.
// Boundaries are inclusive: 3 months is critical, 6 months is warning.
func ClassifyRUL(months int) RiskLevel {
	switch {
	case months <= 3:
		return RiskCritical
	case months <= 6:
		return RiskWarning
	default:
		return RiskSafe
	}
}

// String returns the string representation of the risk level
func (x RiskLevel) String() string {
	return string(x)
}

// Color returns the terminal color used to render rows of this risk level
func (x RiskLevel) Color() *color.Color {
	switch x {
	case RiskCritical:
		return color.New(color.FgRed)
	case RiskWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
