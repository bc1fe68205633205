package pathfinder

import "errors"

var (
	// ErrNoRoute indicates every route candidate for a demand's SD was
	// tried and none admitted a common free slot along any continuity-
	// respecting fiber/core chain.
	ErrNoRoute = errors.New("pathfinder: no feasible route found")

	// ErrPolicyUnavailable indicates the configured routing policy is
	// recognized but not implemented. The reference implementation's
	// layer_search (recursive_new) panics mid-search on its own test
	// topologies; rather than carry that over, this reimplementation
	// rejects it up front.
	ErrPolicyUnavailable = errors.New("pathfinder: routing policy not available")

	// ErrUnsupportedTypePair indicates a fiber's endpoint XCType pair
	// matched none of the continuity rules the path finder knows how to
	// stitch through. The type-pair matrix in the expander is the
	// authoritative set of supported combinations; reaching this error
	// means the network contains a fiber kind combination the path finder
	// was never taught, which must surface as an explicit error rather
	// than being silently skipped.
	ErrUnsupportedTypePair = errors.New("pathfinder: unsupported xc type pair")
)
