package corpus

import "context"

// Repository provides read access to the reference corpus snapshot.
//
// Implementations must be safe for unsynchronized concurrent reads and
// must order multi-row results by ascending record ID so that ties
// resolve deterministically. Absence is reported with ErrNotFound, never
// with a panic: the engine degrades every repository fault to "no match".
type Repository interface {
	// Exact returns the record whose full name equals name after case
	// folding. Returns ErrNotFound when no record matches.
	Exact(ctx context.Context, name string) (*Record, error)

	// Substring returns up to limit records whose full name contains
	// term after case folding, ordered by ascending ID. A limit of zero
	// or less means unbounded. Returns ErrNotFound when nothing matches.
	Substring(ctx context.Context, term string, limit int) ([]Record, error)
}
