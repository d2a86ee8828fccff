package model

import (
	"time"

	"github.com/integrity-lab/talos/pkg/domain/types"
)

// Asset is one row of the asset register. Values are synthetic but the
// field ranges mimic sensor-backed condition monitoring.
type Asset struct {
	ID              types.AssetID       `json:"id"`
	Type            types.EquipmentType `json:"type"`
	Location        types.Zone          `json:"location"`
	AgeYears        int                 `json:"age_years"`
	LastMaintenance time.Time           `json:"last_maintenance"`
	DegradationPct  float64             `json:"degradation_pct"`
	Status          types.AssetStatus   `json:"status"`
	Vibration       float64             `json:"vibration"`
	TemperatureC    float64             `json:"temperature_c"`
	CorrosionLevel  float64             `json:"corrosion_level"`
	RULMonths       int                 `json:"rul_months"`
}

// RiskLevel classifies the asset by its remaining useful life
func (x *Asset) RiskLevel() types.RiskLevel {
	return types.ClassifyRUL(x.RULMonths)
}
