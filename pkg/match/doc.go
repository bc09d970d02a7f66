// Package match turns free-form device name text into reference corpus
// records.
//
// SearchByName is the workhorse of the resolution cascade: exact folded
// equality first, then substring containment, then a tokenized probe of
// the longer words in the term. AdvancedMatch serves the cascade's
// fourth tier with a bounded brand+model candidate query; its screen
// and GPU fields are accepted but deliberately unused; narrowing by
// geometry is a possible future enhancement, and the current behavior
// (first substring hit verbatim) is the contract callers rely on.
//
// A Matcher never returns an error. Repository faults are logged,
// counted and treated as "no match" so an empty or unreachable corpus
// degrades resolution quality without ever failing a caller.
package match
