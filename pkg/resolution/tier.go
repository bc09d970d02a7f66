package resolution

import (
	"context"

	"github.com/dmitrymomot/devicekit/pkg/signal"
)

// Tier is one strategy in the resolution cascade. Attempt either
// produces a definitive result (ok=true, halting the cascade) or
// declines (ok=false) because its preconditions are not met or its
// lookups found nothing it can vouch for.
//
// Keeping tiers behind this interface makes their order and per-tier
// confidence independently testable, instead of burying the priority
// rules in one nested conditional.
type Tier interface {
	Name() TierName
	Attempt(ctx context.Context, sig signal.Set) (*Result, bool)
}
