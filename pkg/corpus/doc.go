// Package corpus models the external device reference corpus the
// resolution engine matches against: a registry-style table of device
// records (name, manufacturer, radio capabilities, SIM slots, eUICC
// flag) that is imported once and then queried read-only.
//
// # Architecture
//
// Record is the immutable row type, keyed by case-folded full name.
// Repository is the read interface the matcher consumes; it promises
// deterministic ordering (ascending record ID) and reports absence with
// ErrNotFound rather than failing.
//
// Two implementations are provided:
//
//   - MemoryStore, an in-process snapshot built once from an Import
//     run. Reads need no locking because the snapshot is never mutated
//     after construction, which is what makes the engine safe to call
//     from any number of concurrent sessions.
//   - SearchStore, an OpenSearch-backed repository for deployments
//     whose corpus lives in a shared search cluster. Connection
//     parameters come from the environment via SearchConfig.
//
// Import reads the pipe-delimited registry export (header row, ten
// columns ending in the eUICC flag) and drops the rows that identify
// nothing ("Not in Signaling", "Not Known", empty names) so the engine
// only ever sees usable records.
//
// # Usage
//
//	f, _ := os.Open("corpus.psv")
//	res, err := corpus.Import(f)
//	if err != nil {
//	    // source unreadable; resolution still works, every lookup
//	    // just reports "no match"
//	}
//	store := corpus.NewMemoryStore(res.Records)
package corpus
