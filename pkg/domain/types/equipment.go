package types

import "fmt"

// EquipmentType represents the kind of a physical asset
type EquipmentType string

const (
	EquipmentPump          EquipmentType = "Pump"
	EquipmentCompressor    EquipmentType = "Compressor"
	EquipmentTurbine       EquipmentType = "Turbine"
	EquipmentHeatExchanger EquipmentType = "Heat Exchanger"
	EquipmentTank          EquipmentType = "Tank"
	EquipmentVessel        EquipmentType = "Vessel"
	EquipmentPipeline      EquipmentType = "Pipeline"
	EquipmentMotor         EquipmentType = "Motor"
	EquipmentControlPanel  EquipmentType = "Control Panel"
	EquipmentSensor        EquipmentType = "Sensor"
)

// AllEquipmentTypes returns all valid equipment types in the fixed
// register generation order.
func AllEquipmentTypes() []EquipmentType {
	return []EquipmentType{
		EquipmentPump,
		EquipmentCompressor,
		EquipmentTurbine,
		EquipmentHeatExchanger,
		EquipmentTank,
		EquipmentVessel,
		EquipmentPipeline,
		EquipmentMotor,
		EquipmentControlPanel,
		EquipmentSensor,
	}
}

// IsValid checks if the equipment type is valid
func (x EquipmentType) IsValid() bool {
	switch x {
	case EquipmentPump,
		EquipmentCompressor,
		EquipmentTurbine,
		EquipmentHeatExchanger,
		EquipmentTank,
		EquipmentVessel,
		EquipmentPipeline,
		EquipmentMotor,
		EquipmentControlPanel,
		EquipmentSensor:
		return true
	default:
		return false
	}
}

// String returns the string representation of the equipment type
func (x EquipmentType) String() string {
	return string(x)
}

// ParseEquipmentType parses a string into an EquipmentType
func ParseEquipmentType(s string) (EquipmentType, error) {
	t := EquipmentType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid equipment type: %s", s)
	}
	return t, nil
}
