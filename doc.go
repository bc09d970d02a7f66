// Package devicekit resolves which real-world device a visiting client
// is using, and whether that device supports embedded-SIM (eSIM)
// connectivity, from passive signals alone: user-agent-derived brand
// and model, screen geometry, the WebGL renderer string, and optional
// high-entropy client hints.
//
// The engine is a pure library and owns no I/O. A collaborator collects
// the signals into a signal.Set, another imports the reference corpus
// (pkg/corpus) once at startup, and the caller persists whatever the
// engine returns. One Engine instance serves any number of concurrent
// sessions because the corpus snapshot is read-only and each resolution
// call is self-contained.
//
//	res, err := corpus.Import(sourceFile)
//	if err != nil { ... }
//	engine := devicekit.New(corpus.NewMemoryStore(res.Records),
//	    devicekit.WithLogger(log))
//
//	result, verdict := engine.Resolve(ctx, sig)
//
// Resolution runs a priority-ordered cascade (pkg/resolution): client
// hints, Android GPU fingerprint, Apple geometry fingerprint, advanced
// corpus match, simple search. The capability verdict (pkg/capability)
// prefers corpus evidence and falls back to a release-generation rule
// when evidence is missing or contradictory. When several models share
// one hardware signature the ambiguity is surfaced with capped
// confidence rather than hidden behind a guess.
package devicekit
