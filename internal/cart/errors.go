package cart

import "errors"

// ErrInvalidIndex is returned when a cart or patch index is out of range
// (§7). It is never returned for out-of-range parameter values inside an
// otherwise valid patch slot; see Validate/ValidatePatch for that case.
var ErrInvalidIndex = errors.New("cart: invalid cart or patch index")
