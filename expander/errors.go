package expander

import "errors"

var (
	// ErrTargetTooShort indicates a bypass expansion was requested for
	// fewer than two edges: a one-edge "bypass" is just a fiber add and
	// has no intermediate cross-connect to install.
	ErrTargetTooShort = errors.New("expander: target edge chain must have at least two edges")

	// ErrUnsupportedExpansion indicates the requested [top-layer,
	// bypass-layer] XCType pair is not one of the combinations this
	// expander knows how to lay fiber for. Per the type-pair matrix,
	// every combination the designer can select must be handled
	// explicitly; reaching this error means a caller asked for a
	// combination outside that matrix.
	ErrUnsupportedExpansion = errors.New("expander: unsupported xc type pair for expansion")

	// ErrStitchFailed indicates installing a switching-table entry
	// between two freshly laid or reused fibers failed (e.g. the port
	// pair was already connected). This should never happen for fibers
	// this package itself just created; seeing it means the network's
	// existing plant was in an unexpected state.
	ErrStitchFailed = errors.New("expander: failed to stitch bypass chain together")
)
