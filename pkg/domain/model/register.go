package model

import (
	"math/rand/v2"
	"sort"

	"github.com/integrity-lab/talos/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Register is an immutable snapshot of the asset table. It is built once
// at process start and threaded through every view as an argument; there
// is no write-back from advisories.
type Register struct {
	assets []Asset
	byID   map[types.AssetID]int
}

// NewRegister builds a register from generated assets. The slice is
// copied so later mutation of the input cannot leak into the snapshot.
func NewRegister(assets []Asset) *Register {
	copied := make([]Asset, len(assets))
	copy(copied, assets)

	byID := make(map[types.AssetID]int, len(copied))
	for i, a := range copied {
		byID[a.ID] = i
	}

	return &Register{
		assets: copied,
		byID:   byID,
	}
}

// Len returns the number of assets in the register
func (x *Register) Len() int {
	return len(x.assets)
}

// All returns a copy of every asset in generation order
func (x *Register) All() []Asset {
	out := make([]Asset, len(x.assets))
	copy(out, x.assets)
	return out
}

// Get looks up an asset by ID
func (x *Register) Get(id types.AssetID) (*Asset, error) {
	idx, ok := x.byID[id]
	if !ok {
		return nil, goerr.New("asset not found", goerr.V("id", id))
	}
	a := x.assets[idx]
	return &a, nil
}

// FilterByRisk returns all assets of the given risk level in generation order
func (x *Register) FilterByRisk(level types.RiskLevel) []Asset {
	var out []Asset
	for _, a := range x.assets {
		if a.RiskLevel() == level {
			out = append(out, a)
		}
	}
	return out
}

// LowRUL returns all assets whose remaining useful life is at most
// maxMonths, in generation order.
func (x *Register) LowRUL(maxMonths int) []Asset {
	var out []Asset
	for _, a := range x.assets {
		if a.RULMonths <= maxMonths {
			out = append(out, a)
		}
	}
	return out
}

// TopByCorrosion returns the n assets with the highest corrosion level,
// descending. Ties keep generation order.
func (x *Register) TopByCorrosion(n int) []Asset {
	return x.topBy(n, func(a, b *Asset) bool {
		return a.CorrosionLevel > b.CorrosionLevel
	})
}

// TopByDegradation returns the n assets with the highest degradation
// percentage, descending. Ties keep generation order.
func (x *Register) TopByDegradation(n int) []Asset {
	return x.topBy(n, func(a, b *Asset) bool {
		return a.DegradationPct > b.DegradationPct
	})
}

func (x *Register) topBy(n int, less func(a, b *Asset) bool) []Asset {
	sorted := x.All()
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(&sorted[i], &sorted[j])
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Sample picks one asset uniformly at random from the given set.
// Returns nil for an empty set.
func Sample(rng *rand.Rand, assets []Asset) *Asset {
	if len(assets) == 0 {
		return nil
	}
	a := assets[rng.IntN(len(assets))]
	return &a
}
