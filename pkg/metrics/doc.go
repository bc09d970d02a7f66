// Package metrics exposes the engine's Prometheus counters: resolution
// outcomes by tier and confidence, corpus lookup outcomes, and
// capability verdicts by evidence source.
//
// Counters register on the default Prometheus registry via promauto;
// the hosting service decides whether and where to serve them. The
// Record helpers are safe for concurrent use and never fail, so callers
// sprinkle them without error handling.
package metrics
