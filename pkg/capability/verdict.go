package capability

// Support is the three-valued eSIM capability answer.
type Support int

const (
	// SupportUnknown means no evidence was available either way.
	SupportUnknown Support = iota
	SupportCapable
	SupportIncapable
)

// String implements fmt.Stringer for logs and metrics labels.
func (s Support) String() string {
	switch s {
	case SupportCapable:
		return "capable"
	case SupportIncapable:
		return "incapable"
	default:
		return "unknown"
	}
}

// Bool reports the capability as (capable, known).
func (s Support) Bool() (bool, bool) {
	switch s {
	case SupportCapable:
		return true, true
	case SupportIncapable:
		return false, true
	default:
		return false, false
	}
}

// Source names the evidence behind a verdict.
type Source string

const (
	// SourceReference means the flag came from corpus record(s).
	SourceReference Source = "reference"
	// SourceFallbackRule means the release-generation rule decided.
	SourceFallbackRule Source = "fallback_rule"
	// SourceNone means there was nothing to decide from.
	SourceNone Source = "none"
)

// Verdict is the engine's eSIM capability answer for one resolution.
type Verdict struct {
	Support Support
	Source  Source

	// ResolutionBased is true when the device identity came from a
	// non-unique fingerprint bucket. It flags reduced trust to
	// downstream consumers regardless of where the flag itself came
	// from.
	ResolutionBased bool
}
