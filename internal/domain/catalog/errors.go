package catalog

import "errors"

// Sentinel kinds for catalog lookups.
var (
	ErrUnknownCode = errors.New("unknown RIASEC code")
)
