package resolution

import (
	"context"
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/match"
	"github.com/dmitrymomot/devicekit/pkg/signal"
)

// advancedTier runs the bounded brand+model candidate query for signal
// sets the fingerprint tiers could not place.
type advancedTier struct {
	matcher *match.Matcher
}

// NewAdvancedTier builds the advanced match tier.
func NewAdvancedTier(m *match.Matcher) Tier {
	return &advancedTier{matcher: m}
}

func (t *advancedTier) Name() TierName { return TierAdvancedMatch }

func (t *advancedTier) Attempt(ctx context.Context, sig signal.Set) (*Result, bool) {
	if !sig.IdentityPresent() {
		return nil, false
	}

	rec, ok := t.matcher.AdvancedMatch(ctx, match.AdvancedQuery{
		Brand:        sig.Brand,
		Model:        sig.Model,
		ScreenWidth:  sig.ScreenWidth,
		ScreenHeight: sig.ScreenHeight,
		GPURenderer:  sig.GPURenderer,
	})
	if !ok {
		return nil, false
	}

	return &Result{
		MatchedRecord: rec,
		Confidence:    ConfidenceAdvancedMatch,
		DeducedModel:  strings.TrimSpace(sig.Model),
	}, true
}
