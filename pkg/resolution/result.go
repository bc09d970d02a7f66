package resolution

import (
	"github.com/dmitrymomot/devicekit/pkg/corpus"
	"github.com/dmitrymomot/devicekit/pkg/fingerprint"
)

// TierName identifies which cascade tier produced a result.
type TierName string

const (
	TierClientHints        TierName = "client_hints"
	TierAndroidFingerprint TierName = "android_fingerprint"
	TierAppleFingerprint   TierName = "apple_fingerprint"
	TierAdvancedMatch      TierName = "advanced_match"
	TierSimpleSearch       TierName = "simple_search"
	TierNone               TierName = "none"
)

// Per-tier confidence scores. These are fixed heuristic trust grades,
// not probabilities; tests pin them because downstream consumers key
// decisions off the exact values.
const (
	ConfidenceClientHintsFull  = 90
	ConfidenceClientHintsModel = 85
	ConfidenceUniquePrint      = 100
	ConfidenceAmbiguousPrint   = 50
	ConfidenceAdvancedMatch    = 85
	ConfidenceSimpleSearch     = 70
	ConfidenceModelRetry       = 50
	ConfidenceNone             = 0
)

// Result is the outcome of one resolution call.
type Result struct {
	// MatchedRecord is the corpus record the cascade settled on, nil
	// when no corpus evidence was found.
	MatchedRecord *corpus.Record

	// Confidence grades trust in the outcome, 0-100, fixed per tier.
	Confidence int

	// DeducedModel is the model name (or span label) the cascade
	// deduced, even when the corpus had no matching row.
	DeducedModel string

	// Fingerprint carries the candidate set when a fingerprint tier
	// fired; nil otherwise.
	Fingerprint *fingerprint.Candidates

	// CandidateRecords holds every corpus hit collected for an
	// ambiguous candidate set (one row per matched candidate). The
	// capability resolver reconciles them.
	CandidateRecords []corpus.Record

	// Tier names the cascade tier that produced this result.
	Tier TierName

	// TraceID correlates this result with logs and whatever record the
	// caller persists.
	TraceID string
}

// Matched reports whether any corpus evidence backs the result.
func (r Result) Matched() bool { return r.MatchedRecord != nil }

// Ambiguous reports whether the identity came from a non-unique
// fingerprint bucket.
func (r Result) Ambiguous() bool {
	return r.Fingerprint != nil && !r.Fingerprint.Unique
}
