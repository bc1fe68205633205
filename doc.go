// Command-suite layernet designs a multi-layer optical transport network
// topology: it assigns every demand in a traffic matrix a continuous
// lightpath (route, spectral slot, core) over a physical topology, then
// iteratively collapses frequently recurring sub-routes into bypass fiber
// chains stitched through lower-granularity cross-connects, reducing the
// count of wavelength-granular cross-connections at intermediate nodes
// subject to a total-fiber-count growth budget.
//
// The packages are organized bottom-up:
//
//	ids/         — stable typed identifiers (Node, Edge, SD)
//	statematrix/ — fixed-width spectral occupancy bit vector and waveband math
//	network/     — fibers, cross-connects, ports and the fiber/XC registry
//	topology/    — physical plant loading and k-shortest route candidates
//	pathfinder/  — route/slot/core/waveband assignment search
//	expander/    — bypass fiber-chain installation through XC switching tables
//	discovery/   — frequent sub-route (bypass candidate) enumeration
//	demand/      — traffic matrix normalization and demand synthesis
//	designer/    — the trial-accept-rollback iterative control loop
//	report/      — plain-text reporting artifacts
//	config/      — the parameter record every subsystem reads once at startup
//	cmd/layernet — the CLI entry point
package layernet
