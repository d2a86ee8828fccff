package register_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/integrity-lab/talos/pkg/domain/model"
	"github.com/integrity-lab/talos/pkg/domain/types"
	"github.com/integrity-lab/talos/pkg/service/register"
)

func seededGenerator(seed uint64) *register.Generator {
	return register.New(
		register.WithRand(rand.New(rand.NewPCG(seed, seed))),
		register.WithNow(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)),
	)
}

func TestGenerateStructure(t *testing.T) {
	snapshot := seededGenerator(1).Generate()

	gt.Value(t, snapshot.Len()).Equal(register.FleetSize)

	assets := snapshot.All()
	gt.Array(t, assets).Length(140)

	t.Run("per-type counts match the fixed fleet", func(t *testing.T) {
		counts := map[types.EquipmentType]int{}
		for _, a := range assets {
			counts[a.Type]++
		}
		for _, eqType := range types.AllEquipmentTypes() {
			gt.Value(t, counts[eqType]).Equal(register.FleetCount(eqType))
		}
	})

	t.Run("IDs are unique and strictly increasing", func(t *testing.T) {
		seen := map[types.AssetID]bool{}
		for i, a := range assets {
			gt.NoError(t, a.ID.Validate())
			gt.Bool(t, seen[a.ID]).False()
			seen[a.ID] = true
			gt.Value(t, a.ID).Equal(types.NewAssetID(i + 1))
		}
	})

	t.Run("types follow the fixed generation order", func(t *testing.T) {
		idx := 0
		for _, eqType := range types.AllEquipmentTypes() {
			for i := 0; i < register.FleetCount(eqType); i++ {
				gt.Value(t, assets[idx].Type).Equal(eqType)
				idx++
			}
		}
	})
}

func TestGenerateFieldBounds(t *testing.T) {
	// Property check over repeated generations: every field must stay
	// within its declared bounds.
	const iterations = 10000

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	gen := register.New(
		register.WithRand(rand.New(rand.NewPCG(7, 7))),
		register.WithNow(now),
	)

	checkAsset := func(t *testing.T, a *model.Asset) {
		t.Helper()
		if a.AgeYears < 1 || a.AgeYears > 20 {
			t.Fatalf("age out of bounds: %d", a.AgeYears)
		}
		if a.DegradationPct < 10 || a.DegradationPct > 90 {
			t.Fatalf("degradation out of bounds: %f", a.DegradationPct)
		}
		if a.Vibration < 0.1 || a.Vibration > 5.0 {
			t.Fatalf("vibration out of bounds: %f", a.Vibration)
		}
		if a.TemperatureC < 30 || a.TemperatureC > 120 {
			t.Fatalf("temperature out of bounds: %f", a.TemperatureC)
		}
		if a.CorrosionLevel < 0 || a.CorrosionLevel > 1.0 {
			t.Fatalf("corrosion out of bounds: %f", a.CorrosionLevel)
		}
		if a.RULMonths < 1 || a.RULMonths > 36 {
			t.Fatalf("RUL out of bounds: %d", a.RULMonths)
		}

		days := now.Sub(a.LastMaintenance).Hours() / 24
		if days < 30 || days > 900 {
			t.Fatalf("last maintenance out of bounds: %f days ago", days)
		}

		gt.Bool(t, a.Location.IsValid()).True()
		gt.Bool(t, a.Status.IsValid()).True()
	}

	for i := 0; i < iterations; i++ {
		snapshot := gen.Generate()
		for _, a := range snapshot.All() {
			checkAsset(t, &a)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := seededGenerator(99).Generate()
	b := seededGenerator(99).Generate()

	gt.Value(t, a.All()).Equal(b.All())
}

func TestRegisterSelectors(t *testing.T) {
	snapshot := seededGenerator(5).Generate()

	t.Run("LowRUL respects the inclusive cutoff", func(t *testing.T) {
		for _, a := range snapshot.LowRUL(6) {
			gt.Bool(t, a.RULMonths <= 6).True()
		}
	})

	t.Run("TopByCorrosion is descending", func(t *testing.T) {
		top := snapshot.TopByCorrosion(5)
		gt.Array(t, top).Length(5)
		for i := 1; i < len(top); i++ {
			gt.Bool(t, top[i-1].CorrosionLevel >= top[i].CorrosionLevel).True()
		}
	})

	t.Run("TopByDegradation is descending", func(t *testing.T) {
		top := snapshot.TopByDegradation(5)
		gt.Array(t, top).Length(5)
		for i := 1; i < len(top); i++ {
			gt.Bool(t, top[i-1].DegradationPct >= top[i].DegradationPct).True()
		}
	})

	t.Run("Get finds every generated asset", func(t *testing.T) {
		for _, a := range snapshot.All() {
			found, err := snapshot.Get(a.ID)
			gt.NoError(t, err)
			gt.Value(t, found.ID).Equal(a.ID)
		}

		_, err := snapshot.Get(types.AssetID("A9999"))
		gt.Error(t, err)
	})
}
