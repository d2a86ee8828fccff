package interfaces

import (
	"context"

	"github.com/integrity-lab/talos/pkg/domain/model"
	"github.com/integrity-lab/talos/pkg/domain/types"
)

// Advisor wraps one external text-generation call. Implementations must
// contain every failure in the returned advisory: the call never returns
// a Go error and never panics.
type Advisor interface {
	Advise(ctx context.Context, sc types.Scenario, prompt string) *model.Advisory
}

// Notifier delivers a generated advisory to an external channel
type Notifier interface {
	Notify(ctx context.Context, advisory *model.Advisory) error
}
