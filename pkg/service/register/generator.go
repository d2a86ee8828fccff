// Package register generates the synthetic asset register: a fixed fleet
// of 140 assets with randomized condition attributes. The structure is
// deterministic (type counts and ID order are fixed) while field values
// come from the configured random source.
package register

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/integrity-lab/talos/pkg/domain/model"
	"github.com/integrity-lab/talos/pkg/domain/types"
)

// fleetCounts is the fixed number of assets per equipment type,
// in generation order. The total is 140.
var fleetCounts = map[types.EquipmentType]int{
	types.EquipmentPump:          30,
	types.EquipmentCompressor:    10,
	types.EquipmentTurbine:       5,
	types.EquipmentHeatExchanger: 10,
	types.EquipmentTank:          10,
	types.EquipmentVessel:        5,
	types.EquipmentPipeline:      15,
	types.EquipmentMotor:         10,
	types.EquipmentControlPanel:  5,
	types.EquipmentSensor:        40,
}

// FleetSize is the total number of assets in a generated register
const FleetSize = 140

// FleetCount returns the fixed number of assets generated for the given type
func FleetCount(t types.EquipmentType) int {
	return fleetCounts[t]
}

// Generator produces asset registers. The zero value is not usable;
// construct with New.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// Option configures a Generator
type Option func(*Generator)

// WithRand sets the random source. Inject a seeded source to make
// generation deterministic under test.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithNow fixes the reference time used for maintenance dates
func WithNow(now time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator. Without options it uses a non-deterministic
// random source and the wall clock, matching demo behavior.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the full asset register: exactly FleetSize assets in
// fixed type order with strictly increasing IDs.
func (g *Generator) Generate() *model.Register {
	assets := make([]model.Asset, 0, FleetSize)
	seq := 1

	zones := types.AllZones()
	statuses := types.AllAssetStatuses()

	for _, eqType := range types.AllEquipmentTypes() {
		for i := 0; i < fleetCounts[eqType]; i++ {
			assets = append(assets, model.Asset{
				ID:              types.NewAssetID(seq),
				Type:            eqType,
				Location:        zones[g.rng.IntN(len(zones))],
				AgeYears:        1 + g.rng.IntN(20),
				LastMaintenance: g.now.AddDate(0, 0, -(30 + g.rng.IntN(871))),
				DegradationPct:  round2(g.uniform(10, 90)),
				Status:          statuses[g.rng.IntN(len(statuses))],
				Vibration:       round2(g.uniform(0.1, 5.0)),
				TemperatureC:    round1(g.uniform(30, 120)),
				CorrosionLevel:  round2(g.uniform(0, 1.0)),
				RULMonths:       1 + g.rng.IntN(36),
			})
			seq++
		}
	}

	return model.NewRegister(assets)
}

// Rand exposes the generator's random source so that downstream sampling
// (row selection, cost estimation) can share one seedable stream.
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

func (g *Generator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
