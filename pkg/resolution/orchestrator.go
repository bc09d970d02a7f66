package resolution

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/devicekit/pkg/fingerprint"
	"github.com/dmitrymomot/devicekit/pkg/match"
	"github.com/dmitrymomot/devicekit/pkg/metrics"
	"github.com/dmitrymomot/devicekit/pkg/signal"
)

// Orchestrator runs the strictly ordered tier cascade. Each resolution
// call is synchronous and shares nothing with other calls except the
// corpus repository behind the matcher, so one Orchestrator serves any
// number of concurrent sessions.
type Orchestrator struct {
	tiers        []Tier
	log          *slog.Logger
	androidTable fingerprint.AndroidTable
	metrics      bool
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithLogger attaches a structured logger; nil is ignored.
func WithLogger(log *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if log != nil {
			o.log = log
		}
	}
}

// WithTiers replaces the default cascade. Order is significance: the
// first tier to produce a result wins.
func WithTiers(tiers ...Tier) OrchestratorOption {
	return func(o *Orchestrator) {
		if len(tiers) > 0 {
			o.tiers = tiers
		}
	}
}

// WithAndroidTable swaps the Android fingerprint table, normally for an
// operator-extended one built with fingerprint.ExtendedAndroidTable.
func WithAndroidTable(table fingerprint.AndroidTable) OrchestratorOption {
	return func(o *Orchestrator) { o.androidTable = table }
}

// WithMetrics toggles Prometheus counters for resolution outcomes.
func WithMetrics(enabled bool) OrchestratorOption {
	return func(o *Orchestrator) { o.metrics = enabled }
}

// NewOrchestrator builds the default five-tier cascade over matcher:
// client hints, Android fingerprint, Apple fingerprint, advanced match,
// simple search.
func NewOrchestrator(matcher *match.Matcher, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: true,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.tiers == nil {
		o.tiers = []Tier{
			NewClientHintsTier(matcher),
			NewAndroidTier(matcher, o.androidTable),
			NewAppleTier(matcher),
			NewAdvancedTier(matcher),
			NewSimpleSearchTier(matcher),
		}
	}
	return o
}

// Resolve runs the cascade and always returns a result: when every tier
// declines, the result carries TierNone and zero confidence. Tier
// fallthrough is strategy selection, not retry; nothing here blocks
// beyond the matcher's corpus lookups.
func (o *Orchestrator) Resolve(ctx context.Context, sig signal.Set) Result {
	traceID := uuid.New().String()

	for _, tier := range o.tiers {
		res, ok := tier.Attempt(ctx, sig)
		if !ok {
			continue
		}

		res.Tier = tier.Name()
		res.TraceID = traceID
		o.observe(*res)
		return *res
	}

	res := Result{Tier: TierNone, Confidence: ConfidenceNone, TraceID: traceID}
	o.observe(res)
	return res
}

func (o *Orchestrator) observe(res Result) {
	if o.metrics {
		metrics.RecordResolution(string(res.Tier), res.Confidence)
	}
	o.log.Debug("device resolved",
		slog.String("trace_id", res.TraceID),
		slog.String("tier", string(res.Tier)),
		slog.Int("confidence", res.Confidence),
		slog.String("deduced_model", res.DeducedModel),
		slog.Bool("matched", res.Matched()),
		slog.Bool("ambiguous", res.Ambiguous()),
	)
}
