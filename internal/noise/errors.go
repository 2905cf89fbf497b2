package noise

import "errors"

// ErrConfiguration is returned for invalid construction parameters and
// empty category lists. Specific failures wrap it.
var ErrConfiguration = errors.New("noise: invalid configuration")
