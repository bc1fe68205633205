// Package designer implements the iterative control loop that turns an
// all-Wxc-Wxc baseline plant into a bypassed network: assign every demand,
// discover recurring sub-routes, try collapsing them into a single
// lower-granularity bypass, and keep the result only if it does not grow
// the plant's equivalent fiber count beyond a configured tolerance.
//
// Run is the package's single entry point; everything else is the
// initial-assignment retry loop (route-then-expand-on-failure), per-round
// route selection for a proposed bypass, and the fiber-count-ratio accept
// criterion the outer loop rolls back against.
package designer
