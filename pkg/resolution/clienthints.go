package resolution

import (
	"context"
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/match"
	"github.com/dmitrymomot/devicekit/pkg/signal"
)

// clientHintsTier resolves from high-entropy client hints. It runs
// first because a volunteered hint model is the most trustworthy
// identity signal available: unlike the UA model it is never frozen.
type clientHintsTier struct {
	matcher *match.Matcher
}

// NewClientHintsTier builds the cascade's first tier.
func NewClientHintsTier(m *match.Matcher) Tier {
	return &clientHintsTier{matcher: m}
}

func (t *clientHintsTier) Name() TierName { return TierClientHints }

func (t *clientHintsTier) Attempt(ctx context.Context, sig signal.Set) (*Result, bool) {
	model := strings.TrimSpace(sig.ClientHintsModel)
	if model == "" {
		return nil, false
	}

	brand := strings.TrimSpace(sig.ClientHintsBrand)
	if brand == "" {
		brand = strings.TrimSpace(sig.Brand)
	}

	if brand != "" {
		if rec, ok := t.matcher.SearchByName(ctx, brand+" "+model); ok {
			return &Result{
				MatchedRecord: rec,
				Confidence:    ConfidenceClientHintsFull,
				DeducedModel:  model,
			}, true
		}
	}

	if rec, ok := t.matcher.SearchByName(ctx, model); ok {
		return &Result{
			MatchedRecord: rec,
			Confidence:    ConfidenceClientHintsModel,
			DeducedModel:  model,
		}, true
	}

	return nil, false
}
