// Package config holds the parameter record the designer reads once at
// startup. Loading that record from a TOML file, decorating a progress bar,
// invoking a plotting script and writing artifacts to an output directory
// are all external collaborators outside the scope of this module; config
// only defines the shapes those collaborators and the core
// designer agree on.
package config

import "fmt"

// DesignMode selects how the iterative designer explores the trial space.
type DesignMode string

const (
	// ModeSingle runs one pass of the outer bypass-length loop.
	ModeSingle DesignMode = "single"
	// ModeBest runs MeanTrials independent single-mode trials with
	// distinct seeds and keeps the one with the best fiber-reduction score.
	ModeBest DesignMode = "best"
	// ModeWbxc is an alias for single-mode runs targeted at a Wxc/Wbxc
	// layer pair; the distinction only matters to callers choosing xc
	// types, not to the loop itself.
	ModeWbxc DesignMode = "wbxc"
	// ModeAverage is carried for interface compatibility only: the
	// reference implementation's average-mode body is commented out and
	// panics if reached. Validate rejects it explicitly.
	ModeAverage DesignMode = "average"
)

// NodeConfiguration selects the lower-granularity XC technology installed
// at intermediate nodes by the bypass expander.
type NodeConfiguration string

const (
	NodeFXC  NodeConfiguration = "FXC"
	NodeSXC  NodeConfiguration = "SXC"
	NodeWBXC NodeConfiguration = "WBXC"
)

// RoutingPolicy selects the path finder's route-candidate ordering and
// spectrum-search strategy.
type RoutingPolicy string

const (
	PolicyFF           RoutingPolicy = "FF"
	PolicyFFRandomized RoutingPolicy = "ff_randomized"
	PolicyRD           RoutingPolicy = "RD"
	PolicyRDDA         RoutingPolicy = "RD_DA"
	PolicyLayerSearch  RoutingPolicy = "layer_search"
)

// Simulation holds the parameters that shape demand synthesis and run
// bookkeeping. OutDir names the directory the reporting artifacts are
// written to; the designer itself only carries the path through.
type Simulation struct {
	TrafficIntensity float64
	RandomSeed       int64
	OutDir           string
}

// Debug holds the debug switches of the parameter record. No package in
// this module reads them: setting a switch enables no extra logging.
type Debug struct {
	LogDemandAssign bool
	LogFiberExpand  bool
	LogFiberRemove  bool
	LogBypass       bool
	LogAnalysis     bool
	LogTaboo        bool
	LogStateMatrix  bool
}

// NetworkParams holds the network-shape parameters: which topology to load,
// the fiber-growth budget, and which design mode/layer pair to run.
type NetworkParams struct {
	Topology               string
	FiberIncreaseRateLimit float64
	DesignMode             DesignMode
	NodeConfiguration      NodeConfiguration
	FiberUnification       bool

	// MeanTrials is the number of independent single-mode trials ModeBest
	// runs (with distinct derived seeds) before keeping the highest-scoring
	// network. Ignored outside ModeBest.
	MeanTrials int
}

// Policy selects the routing policy used by the path finder.
type Policy struct {
	RoutingPolicy RoutingPolicy
}

// Traffic names an optional traffic-matrix file. An empty DistributionPath means
// "uniform matrix": see demand.Synthesize.
type Traffic struct {
	DistributionPath string
}

// Params is the parameter record passed explicitly to every core
// subsystem; nothing in the designer reads ambient/global configuration.
type Params struct {
	Simulation Simulation
	Debug      Debug
	Network    NetworkParams
	Policy     Policy
	Traffic    Traffic
}

// Default returns a Params populated with default settings, suitable as a
// starting point for callers that only want to override a handful of
// fields. The fixed grid parameters (slot count, core count, bypass
// lengths) are package constants elsewhere, not Params fields.
func Default() Params {
	return Params{
		Simulation: Simulation{
			TrafficIntensity: 1.0,
			RandomSeed:       1,
			OutDir:           "./out",
		},
		Network: NetworkParams{
			Topology:               "sample",
			FiberIncreaseRateLimit: 0.1,
			DesignMode:             ModeSingle,
			NodeConfiguration:      NodeFXC,
			FiberUnification:       false,
			MeanTrials:             96,
		},
		Policy: Policy{RoutingPolicy: PolicyFF},
	}
}

// Validate reports a descriptive error if p cannot be run, e.g. an unknown
// enum value. It does not touch the filesystem: path existence is the
// concern of whatever external collaborator resolves Topology/OutDir into
// real files.
func (p Params) Validate() error {
	switch p.Network.NodeConfiguration {
	case NodeFXC, NodeSXC, NodeWBXC:
	default:
		return fmt.Errorf("config: unknown node configuration %q", p.Network.NodeConfiguration)
	}
	switch p.Network.DesignMode {
	case ModeSingle, ModeBest, ModeWbxc:
	case ModeAverage:
		return fmt.Errorf("config: design mode %q is not supported (reference implementation's average mode panics; see DESIGN.md)", p.Network.DesignMode)
	default:
		return fmt.Errorf("config: unknown design mode %q", p.Network.DesignMode)
	}
	switch p.Policy.RoutingPolicy {
	case PolicyFF, PolicyFFRandomized, PolicyRD, PolicyRDDA:
	case PolicyLayerSearch:
		return fmt.Errorf("config: routing policy %q is not available (reference implementation's recursive_new panics mid-search; see DESIGN.md)", p.Policy.RoutingPolicy)
	default:
		return fmt.Errorf("config: unknown routing policy %q", p.Policy.RoutingPolicy)
	}
	if p.Network.FiberIncreaseRateLimit < 0 {
		return fmt.Errorf("config: fiber increase rate limit must be >= 0, got %f", p.Network.FiberIncreaseRateLimit)
	}
	return nil
}

// Describe returns a human-readable summary of the bypass kind implied by
// NodeConfiguration, used in run-start logging.
func (nc NodeConfiguration) Describe() string {
	switch nc {
	case NodeFXC:
		return "Wxc -> Fxc bypass (opaque fiber cross-connect)"
	case NodeSXC:
		return "Wxc -> Sxc bypass (spatial cross-connect across MCF cores)"
	case NodeWBXC:
		return "Wxc -> Wbxc bypass (waveband cross-connect)"
	default:
		return "unknown"
	}
}
