// Package demand synthesizes the traffic a designer trial must route: a
// list of Demand values with deterministic arrival times drawn from a
// Poisson process per source/destination pair, seeded from config.Params so
// that two runs with the same seed produce byte-identical demand lists.
//
// Synthesize is the package's only entry point. Everything else here is the
// traffic-matrix plumbing (uniform fallback, optional CSV load, intensity
// normalization) it depends on.
package demand
