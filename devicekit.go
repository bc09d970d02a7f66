package devicekit

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/devicekit/pkg/capability"
	"github.com/dmitrymomot/devicekit/pkg/corpus"
	"github.com/dmitrymomot/devicekit/pkg/fingerprint"
	"github.com/dmitrymomot/devicekit/pkg/match"
	"github.com/dmitrymomot/devicekit/pkg/resolution"
	"github.com/dmitrymomot/devicekit/pkg/signal"
)

// Engine is the device resolution engine: one synchronous facade over
// the matcher, the tier cascade and the capability resolver. Construct
// it once at startup with the loaded corpus repository and share it
// across sessions; it holds no per-call state.
type Engine struct {
	orchestrator *resolution.Orchestrator
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	log          *slog.Logger
	androidTable fingerprint.AndroidTable
	tiers        []resolution.Tier
	metrics      bool
}

// WithLogger attaches a structured logger; nil is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(c *engineConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithAndroidTable swaps the Android fingerprint table, normally for an
// operator-extended one from fingerprint.ExtendedAndroidTable.
func WithAndroidTable(table fingerprint.AndroidTable) Option {
	return func(c *engineConfig) { c.androidTable = table }
}

// WithTiers replaces the default resolution cascade.
func WithTiers(tiers ...resolution.Tier) Option {
	return func(c *engineConfig) { c.tiers = tiers }
}

// WithMetrics toggles the Prometheus counters for resolution outcomes.
func WithMetrics(enabled bool) Option {
	return func(c *engineConfig) { c.metrics = enabled }
}

// New builds an Engine over repo. A nil repo is allowed and yields the
// documented degradation mode: every corpus lookup reads as "no match"
// and capability falls back to the release-generation rule.
func New(repo corpus.Repository, opts ...Option) *Engine {
	cfg := &engineConfig{metrics: true}
	for _, opt := range opts {
		opt(cfg)
	}

	var matcherOpts []match.Option
	if cfg.log != nil {
		matcherOpts = append(matcherOpts, match.WithLogger(cfg.log))
	}
	matcher := match.NewMatcher(repo, matcherOpts...)

	orchOpts := []resolution.OrchestratorOption{
		resolution.WithMetrics(cfg.metrics),
		resolution.WithAndroidTable(cfg.androidTable),
	}
	if cfg.log != nil {
		orchOpts = append(orchOpts, resolution.WithLogger(cfg.log))
	}
	if len(cfg.tiers) > 0 {
		orchOpts = append(orchOpts, resolution.WithTiers(cfg.tiers...))
	}

	return &Engine{orchestrator: resolution.NewOrchestrator(matcher, orchOpts...)}
}

// Resolve runs the full pipeline for one signal snapshot and returns
// the identity resolution plus the eSIM capability verdict. It never
// fails: missing signals, an empty corpus and store-level faults all
// degrade to lower confidence or an unknown verdict, and the caller is
// expected to persist whatever comes back.
func (e *Engine) Resolve(ctx context.Context, sig signal.Set) (resolution.Result, capability.Verdict) {
	res := e.orchestrator.Resolve(ctx, sig)
	return res, capability.Resolve(res)
}
