// Package signal defines the immutable signal snapshot the device
// resolution engine consumes.
//
// A signal.Set bundles everything a collaborator collected about one
// visiting client: the brand/model pair a user-agent parser produced,
// screen geometry and GPU strings from client telemetry, and optional
// high-entropy client hints. The engine treats the snapshot as
// read-only and never retains it across calls.
//
// The package also encodes the one piece of domain knowledge about the
// snapshot itself: reduced-entropy Chromium user agents mask the model
// as "K", which Set.ModelMasked recognizes so that downstream tiers can
// prefer fingerprinting over a value that looks present but is not.
package signal
