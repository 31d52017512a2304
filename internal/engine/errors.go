package engine

import "errors"

// ErrInvalidIndex is returned when a voice, cart, or patch index passed to
// a lifecycle operation is out of range (§7).
var ErrInvalidIndex = errors.New("engine: invalid voice, cart, or patch index")
