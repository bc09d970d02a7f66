// Package capability turns a resolution result into an eSIM verdict.
//
// The preferred evidence is the reference corpus: a single matched
// record answers directly, and an ambiguous candidate set answers when
// every collected record agrees on the eUICC flag. Disagreement falls
// back to the release-generation rule (iPhone X incapable, XS/XR and
// generation 11+ capable), applied to every candidate and combined with
// logical AND: the set is capable only if each member is.
//
// Two deliberate policies worth knowing: model strings the rule cannot
// parse count as capable (a permissive default, preserved and pinned by
// tests rather than silently tightened), and Verdict.ResolutionBased
// marks any verdict whose device identity came from a non-unique
// fingerprint bucket so downstream consumers can discount it.
package capability
