package types

// AssetStatus represents the operational status of an asset
type AssetStatus string

const (
	StatusOperational      AssetStatus = "Operational"
	StatusUnderMaintenance AssetStatus = "Under Maintenance"
	StatusStandby          AssetStatus = "Standby"
)

// AllAssetStatuses returns all valid asset statuses
func AllAssetStatuses() []AssetStatus {
	return []AssetStatus{
		StatusOperational,
		StatusUnderMaintenance,
		StatusStandby,
	}
}

// IsValid checks if the asset status is valid
func (x AssetStatus) IsValid() bool {
	switch x {
	case StatusOperational, StatusUnderMaintenance, StatusStandby:
		return true
	default:
		return false
	}
}

// String returns the string representation of the asset status
func (x AssetStatus) String() string {
	return string(x)
}
