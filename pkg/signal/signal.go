package signal

import "strings"

// maskedModelSentinel is the model value reported by reduced-entropy
// Chromium user agents on Android. When the UA is frozen, every device
// claims to be model "K", so the value carries no identity at all.
const maskedModelSentinel = "k"

// Set is an immutable snapshot of the passive signals collected from a
// single visiting client: user-agent-derived fields, client telemetry
// (screen geometry, GPU strings, hardware concurrency) and optional
// high-entropy client hints. A Set is consumed by exactly one resolution
// call and discarded; the engine keeps no cross-call state.
type Set struct {
	// User-agent-derived identity. Model may be absent or masked.
	Brand string
	Model string

	// Client telemetry.
	ScreenWidth         int
	ScreenHeight        int
	PixelRatio          float64
	GPURenderer         string
	GPUVendor           string
	HardwareConcurrency int

	// High-entropy client hints, present only when the client runtime
	// volunteered them. Generally more trustworthy than Model, which a
	// frozen user agent may mask.
	ClientHintsModel           string
	ClientHintsBrand           string
	ClientHintsPlatformVersion string
	ClientHintsArchitecture    string
	ClientHintsFullVersionList string
}

// ModelMasked reports whether the user-agent model carries no usable
// identity: either it is empty or it equals the reduced-UA sentinel.
func (s Set) ModelMasked() bool {
	m := strings.TrimSpace(strings.ToLower(s.Model))
	return m == "" || m == maskedModelSentinel
}

// HasGeometry reports whether the full screen triple required by the
// Apple geometry lookup is present.
func (s Set) HasGeometry() bool {
	return s.ScreenWidth > 0 && s.ScreenHeight > 0 && s.PixelRatio > 0
}

// HasGPU reports whether a GPU renderer string was collected.
func (s Set) HasGPU() bool {
	return strings.TrimSpace(s.GPURenderer) != ""
}

// MentionsApple reports whether the user-agent identity points at an
// Apple device, regardless of how much of it is masked.
func (s Set) MentionsApple() bool {
	brand := strings.ToLower(s.Brand)
	model := strings.ToLower(s.Model)
	return strings.Contains(brand, "apple") || strings.Contains(model, "iphone")
}

// IdentityPresent reports whether at least one of brand or model was
// parsed from the user agent.
func (s Set) IdentityPresent() bool {
	return strings.TrimSpace(s.Brand) != "" || strings.TrimSpace(s.Model) != ""
}
