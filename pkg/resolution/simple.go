package resolution

import (
	"context"
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/match"
	"github.com/dmitrymomot/devicekit/pkg/signal"
)

// simpleTier is the last resort: a plain name search over whatever
// identity text is left, with a lower-trust model-only retry.
type simpleTier struct {
	matcher *match.Matcher
}

// NewSimpleSearchTier builds the last-resort search tier.
func NewSimpleSearchTier(m *match.Matcher) Tier {
	return &simpleTier{matcher: m}
}

func (t *simpleTier) Name() TierName { return TierSimpleSearch }

func (t *simpleTier) Attempt(ctx context.Context, sig signal.Set) (*Result, bool) {
	brand := strings.TrimSpace(sig.Brand)
	model := strings.TrimSpace(sig.Model)

	var term string
	switch {
	case brand != "" && model != "":
		term = brand + " " + model
	case model != "":
		term = model
	case brand != "":
		term = brand
	default:
		return nil, false
	}

	if rec, ok := t.matcher.SearchByName(ctx, term); ok {
		return &Result{
			MatchedRecord: rec,
			Confidence:    ConfidenceSimpleSearch,
			DeducedModel:  model,
		}, true
	}

	// Brand may have polluted the term; one more try on the model alone
	// at reduced confidence.
	if model != "" && term != model {
		if rec, ok := t.matcher.SearchByName(ctx, model); ok {
			return &Result{
				MatchedRecord: rec,
				Confidence:    ConfidenceModelRetry,
				DeducedModel:  model,
			}, true
		}
	}

	return nil, false
}
