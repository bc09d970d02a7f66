// Package resolution decides which real-world device a signal snapshot
// belongs to.
//
// The decision is a priority-ordered cascade of tiers, each a strategy
// that either produces a definitive Result or declines:
//
//  1. client hints: a volunteered high-entropy model (confidence 90
//     with brand, 85 without);
//  2. Android fingerprint: GPU renderer + screen width for masked
//     identities (100 unique, 50 ambiguous);
//  3. Apple fingerprint: exact screen geometry for iPhones, collecting
//     corpus evidence for every candidate (100 unique, 50 ambiguous);
//  4. advanced match: bounded brand+model corpus query (85);
//  5. simple search: last-resort name search (70, model-only retry 50).
//
// The first tier to produce a result halts the cascade; when all
// decline the Result carries TierNone and zero confidence; absence of
// an answer is an answer, not an error. Ambiguity is preserved rather
// than resolved by guessing: a non-unique fingerprint caps confidence
// at 50 and ships the full candidate set to the capability resolver.
package resolution
