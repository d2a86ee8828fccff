package usecase

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/integrity-lab/talos/pkg/domain/interfaces"
	"github.com/integrity-lab/talos/pkg/domain/model"
	"github.com/integrity-lab/talos/pkg/service/catalog"
)

// UseCases orchestrates the dashboard panels: it selects rows from the
// immutable register snapshot, builds prompts and invokes the advisor.
// The register is read-only after construction; every advisory call is
// independent.
type UseCases struct {
	register *model.Register
	catalog  *catalog.Catalog
	advisor  interfaces.Advisor
	notifier interfaces.Notifier
	now      func() time.Time

	// rng guarded by mu: panels may run concurrently but share one
	// seedable random stream.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option is a functional option for UseCases
type Option func(*UseCases)

// WithCatalog replaces the built-in cost catalog
func WithCatalog(c *catalog.Catalog) Option {
	return func(uc *UseCases) {
		uc.catalog = c
	}
}

// WithNotifier enables advisory delivery to an external channel
func WithNotifier(n interfaces.Notifier) Option {
	return func(uc *UseCases) {
		uc.notifier = n
	}
}

// WithRand sets the random source used for row sampling and cost
// estimation. Inject a seeded source for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(uc *UseCases) {
		uc.rng = rng
	}
}

// WithClock fixes the reference time used for replace-by dates
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

// New creates the UseCases over an immutable register snapshot
func New(register *model.Register, advisor interfaces.Advisor, opts ...Option) *UseCases {
	uc := &UseCases{
		register: register,
		catalog:  catalog.Default(),
		advisor:  advisor,
		now:      time.Now,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Register returns the immutable asset register snapshot
func (uc *UseCases) Register() *model.Register {
	return uc.register
}

// sample picks one asset uniformly from the set under the rng lock
func (uc *UseCases) sample(assets []model.Asset) *model.Asset {
	uc.rngMu.Lock()
	defer uc.rngMu.Unlock()
	return model.Sample(uc.rng, assets)
}

// estimateCost samples a replacement cost under the rng lock
func (uc *UseCases) estimateCost(a *model.Asset) int64 {
	uc.rngMu.Lock()
	defer uc.rngMu.Unlock()
	return uc.catalog.Estimate(uc.rng, a.Type)
}
