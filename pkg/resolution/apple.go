package resolution

import (
	"context"

	"github.com/dmitrymomot/devicekit/pkg/corpus"
	"github.com/dmitrymomot/devicekit/pkg/fingerprint"
	"github.com/dmitrymomot/devicekit/pkg/match"
	"github.com/dmitrymomot/devicekit/pkg/signal"
)

// appleTier resolves iPhones from exact screen geometry. Unlike the
// Android tier it collects a corpus hit for every candidate model in
// the bucket instead of stopping at the first: the candidates span
// release generations with different eSIM capabilities, and the
// capability resolver needs all the evidence to reconcile them.
type appleTier struct {
	matcher *match.Matcher
}

// NewAppleTier builds the Apple fingerprint tier.
func NewAppleTier(m *match.Matcher) Tier {
	return &appleTier{matcher: m}
}

func (t *appleTier) Name() TierName { return TierAppleFingerprint }

func (t *appleTier) Attempt(ctx context.Context, sig signal.Set) (*Result, bool) {
	if !sig.MentionsApple() {
		return nil, false
	}

	candidates, ok := fingerprint.ResolveApple(
		sig.ScreenWidth, sig.ScreenHeight, sig.PixelRatio,
		fingerprint.WithGPURenderer(sig.GPURenderer),
		fingerprint.WithHardwareConcurrency(sig.HardwareConcurrency),
	)
	if !ok {
		return nil, false
	}

	hits := t.collect(ctx, candidates.Models)

	confidence := ConfidenceAmbiguousPrint
	if candidates.Unique {
		confidence = ConfidenceUniquePrint
	}

	res := &Result{
		Confidence:       confidence,
		DeducedModel:     candidates.DisplayName,
		Fingerprint:      &candidates,
		CandidateRecords: hits,
	}
	if len(hits) > 0 {
		res.MatchedRecord = &hits[0]
	}
	return res, true
}

// collect gathers a corpus record per candidate model, falling back to
// the built-in Apple records when the corpus yields nothing at all.
func (t *appleTier) collect(ctx context.Context, models []string) []corpus.Record {
	var hits []corpus.Record
	for _, model := range models {
		if rec, ok := t.matcher.SearchByName(ctx, model); ok {
			hits = append(hits, *rec)
		}
	}
	if len(hits) > 0 {
		return hits
	}

	for _, model := range models {
		if rec, ok := fingerprint.AppleFallback(model); ok {
			hits = append(hits, *rec)
		}
	}
	return hits
}
