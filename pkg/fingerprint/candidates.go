package fingerprint

// Candidates is the outcome of a fingerprint table lookup: the device
// models that share one hardware signature, ordered most-common first.
type Candidates struct {
	// Models holds the candidate model names. Never empty on a hit.
	Models []string

	// Unique is true iff exactly one model matches the signature, or a
	// refinement step narrowed an ambiguous bucket to a single answer.
	Unique bool

	// DisplayName is a human-readable label for the candidate set. For
	// a unique set it is the model itself; for an ambiguous set it is a
	// synthesized span label such as "iPhone 12 / 14 Series".
	DisplayName string
}
