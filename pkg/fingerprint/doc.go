// Package fingerprint resolves masked devices from the hardware traits
// a browser cannot hide: exact screen geometry for iPhones and the
// WebGL renderer string plus geometry for Android devices.
//
// Both resolvers are deterministic lookups against fixed tables: no
// learning, no network. A lookup yields a Candidates set: one model
// when the signature is unambiguous, or the full list of models sharing
// the signature plus a synthesized span label ("iPhone 12 / 14 Series")
// when it is not. Ambiguity is a first-class outcome; callers lower
// their confidence instead of guessing.
//
// The Apple path accepts GPU and concurrency hints for a refinement
// step that is documented to be inconclusive today: Safari masks the
// renderer string identically across the generations that share a
// geometry bucket. The seam stays so a future discriminating hint can
// slot in without touching callers.
//
// The Android table ships with built-in entries and can be extended
// with operator-maintained YAML via ExtendedAndroidTable. Built-in
// entries always keep priority.
package fingerprint
