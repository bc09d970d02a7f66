package resolution

import (
	"context"

	"github.com/dmitrymomot/devicekit/pkg/fingerprint"
	"github.com/dmitrymomot/devicekit/pkg/match"
	"github.com/dmitrymomot/devicekit/pkg/signal"
)

// androidTier fingerprints masked Android devices from the GPU renderer
// string and screen width. It fires only when the user-agent identity
// is absent or masked; a usable model should be resolved by the tiers
// that trust it more.
type androidTier struct {
	matcher *match.Matcher
	table   fingerprint.AndroidTable
}

// NewAndroidTier builds the Android fingerprint tier. A nil table means
// the built-in one.
func NewAndroidTier(m *match.Matcher, table fingerprint.AndroidTable) Tier {
	return &androidTier{matcher: m, table: table}
}

func (t *androidTier) Name() TierName { return TierAndroidFingerprint }

func (t *androidTier) Attempt(ctx context.Context, sig signal.Set) (*Result, bool) {
	if sig.Brand != "" && !sig.ModelMasked() {
		return nil, false
	}
	if !sig.HasGPU() || sig.ScreenWidth <= 0 {
		return nil, false
	}

	candidates, ok := t.resolve(sig)
	if !ok {
		return nil, false
	}

	confidence := ConfidenceAmbiguousPrint
	if candidates.Unique {
		confidence = ConfidenceUniquePrint
	}

	// Probe candidates most-common first and settle on the first row
	// the corpus recognizes.
	for _, model := range candidates.Models {
		if rec, found := t.matcher.SearchByName(ctx, model); found {
			return &Result{
				MatchedRecord: rec,
				Confidence:    confidence,
				DeducedModel:  model,
				Fingerprint:   &candidates,
			}, true
		}
	}

	// No corpus hit at all: the fingerprint alone is still a definitive
	// (if low-trust) identity.
	return &Result{
		Confidence:   ConfidenceAmbiguousPrint,
		DeducedModel: candidates.DisplayName,
		Fingerprint:  &candidates,
	}, true
}

func (t *androidTier) resolve(sig signal.Set) (fingerprint.Candidates, bool) {
	if t.table != nil {
		return t.table.Resolve(sig.GPURenderer, sig.ScreenWidth, sig.ScreenHeight)
	}
	return fingerprint.ResolveAndroid(sig.GPURenderer, sig.ScreenWidth, sig.ScreenHeight)
}
