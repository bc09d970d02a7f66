package corpus

import "errors"

var (
	// ErrNotFound signals absence of a matching record. Callers on the
	// resolution path treat it as "no match", never as a failure.
	ErrNotFound = errors.New("corpus: record not found")

	ErrInvalidSource     = errors.New("corpus: invalid import source")
	ErrConnectionFailed  = errors.New("corpus: failed to connect to search cluster")
	ErrHealthcheckFailed = errors.New("corpus: search cluster healthcheck failed")
	ErrQueryFailed       = errors.New("corpus: search query failed")
)
