package wizard

import "errors"

// Sentinel kinds for wizard transitions.
var (
	ErrInvalidTransition = errors.New("invalid wizard transition")
)
