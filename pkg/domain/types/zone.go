package types

// Zone represents the plant location of an asset
type Zone string

const (
	ZoneA Zone = "Zone A"
	ZoneB Zone = "Zone B"
	ZoneC Zone = "Zone C"
	ZoneD Zone = "Zone D"
)

// AllZones returns all valid zones
func AllZones() []Zone {
	return []Zone{ZoneA, ZoneB, ZoneC, ZoneD}
}

// IsValid checks if the zone is valid
func (x Zone) IsValid() bool {
	switch x {
	case ZoneA, ZoneB, ZoneC, ZoneD:
		return true
	default:
		return false
	}
}

// String returns the string representation of the zone
func (x Zone) String() string {
	return string(x)
}
