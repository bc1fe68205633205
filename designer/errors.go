package designer

import "errors"

// ErrNoRouteAtAll is returned when a demand's SD has no candidate route in
// the topology whatsoever, which the initial assign-all loop cannot recover
// from by expanding capacity.
var ErrNoRouteAtAll = errors.New("designer: no route candidate exists for demand")
