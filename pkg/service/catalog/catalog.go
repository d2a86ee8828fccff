// Package catalog estimates replacement costs per equipment type. Costs
// are resampled on every call from a type-specific range; there is no
// memoization, so repeated queries for the same type may differ.
package catalog

import (
	"math/rand/v2"

	"github.com/integrity-lab/talos/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultCostUSD is returned for any equipment type not present in the catalog
const DefaultCostUSD = 10000

// Range is an inclusive replacement cost range in whole dollars
type Range struct {
	MinUSD int64
	MaxUSD int64
}

// Validate checks if the range is usable
func (x Range) Validate() error {
	if x.MinUSD <= 0 {
		return goerr.New("cost range minimum must be positive", goerr.V("min", x.MinUSD))
	}
	if x.MinUSD >= x.MaxUSD {
		return goerr.New("cost range minimum must be below maximum",
			goerr.V("min", x.MinUSD), goerr.V("max", x.MaxUSD))
	}
	return nil
}

// Catalog maps equipment types to replacement cost ranges
type Catalog struct {
	ranges map[types.EquipmentType]Range
}

// Default returns the built-in replacement cost catalog
func Default() *Catalog {
	return &Catalog{
		ranges: map[types.EquipmentType]Range{
			types.EquipmentPump:          {MinUSD: 5000, MaxUSD: 15000},
			types.EquipmentCompressor:    {MinUSD: 20000, MaxUSD: 60000},
			types.EquipmentTurbine:       {MinUSD: 40000, MaxUSD: 120000},
			types.EquipmentTank:          {MinUSD: 15000, MaxUSD: 40000},
			types.EquipmentSensor:        {MinUSD: 500, MaxUSD: 3000},
			types.EquipmentPipeline:      {MinUSD: 10000, MaxUSD: 30000},
			types.EquipmentMotor:         {MinUSD: 8000, MaxUSD: 20000},
			types.EquipmentControlPanel:  {MinUSD: 5000, MaxUSD: 15000},
			types.EquipmentHeatExchanger: {MinUSD: 10000, MaxUSD: 25000},
			types.EquipmentVessel:        {MinUSD: 12000, MaxUSD: 35000},
		},
	}
}

// New builds a catalog from explicit ranges, e.g. loaded from a TOML
// override file. Every range must validate and refer to a known type.
func New(ranges map[types.EquipmentType]Range) (*Catalog, error) {
	for eqType, r := range ranges {
		if !eqType.IsValid() {
			return nil, goerr.New("unknown equipment type in catalog", goerr.V("type", eqType))
		}
		if err := r.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid cost range", goerr.V("type", eqType))
		}
	}

	copied := make(map[types.EquipmentType]Range, len(ranges))
	for k, v := range ranges {
		copied[k] = v
	}
	return &Catalog{ranges: copied}, nil
}

// Range returns the cost range for a type and whether it is in the catalog
func (x *Catalog) Range(eqType types.EquipmentType) (Range, bool) {
	r, ok := x.ranges[eqType]
	return r, ok
}

// Estimate samples a replacement cost for the given type uniformly from
// its range, both bounds inclusive. Unknown types always cost exactly
// DefaultCostUSD.
func (x *Catalog) Estimate(rng *rand.Rand, eqType types.EquipmentType) int64 {
	r, ok := x.ranges[eqType]
	if !ok {
		return DefaultCostUSD
	}
	return r.MinUSD + rng.Int64N(r.MaxUSD-r.MinUSD+1)
}
