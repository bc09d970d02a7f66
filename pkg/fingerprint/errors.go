package fingerprint

import "errors"

var (
	ErrInvalidTable      = errors.New("fingerprint: invalid android table source")
	ErrInvalidTableEntry = errors.New("fingerprint: android table entry missing gpu, width or models")
)
