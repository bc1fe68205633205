package demand

import "errors"

// ErrEmptyTrafficMatrix is returned when a loaded traffic-distribution file
// parses to zero rows, which would make normalization divide by zero.
var ErrEmptyTrafficMatrix = errors.New("demand: traffic distribution matrix is empty")
