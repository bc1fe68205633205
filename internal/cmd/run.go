package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/optrans/layernet/config"
	"github.com/optrans/layernet/designer"
	"github.com/optrans/layernet/report"
	"github.com/optrans/layernet/topology"
)

var runFlags = config.Default()
var topologyPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one topology-design trial and write its reporting artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDesign()
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&topologyPath, "topology-file", "", "path to the topology adjacency-matrix file (default: ./files/topology/<topology>.txt)")
	f.StringVar(&runFlags.Network.Topology, "topology", runFlags.Network.Topology, "topology name")
	f.Float64Var(&runFlags.Simulation.TrafficIntensity, "intensity", runFlags.Simulation.TrafficIntensity, "traffic intensity (rho)")
	f.Int64Var(&runFlags.Simulation.RandomSeed, "seed", runFlags.Simulation.RandomSeed, "PRNG seed")
	f.StringVar(&runFlags.Simulation.OutDir, "outdir", runFlags.Simulation.OutDir, "output directory for reporting artifacts")
	f.StringVar((*string)(&runFlags.Network.DesignMode), "design-mode", string(runFlags.Network.DesignMode), "design mode: single, best, wbxc")
	f.StringVar((*string)(&runFlags.Network.NodeConfiguration), "node-configuration", string(runFlags.Network.NodeConfiguration), "bypass XC kind: FXC, SXC, WBXC")
	f.StringVar((*string)(&runFlags.Policy.RoutingPolicy), "routing-policy", string(runFlags.Policy.RoutingPolicy), "route-candidate ordering: FF, ff_randomized, RD, RD_DA")
	f.Float64Var(&runFlags.Network.FiberIncreaseRateLimit, "fiber-increase-rate-limit", runFlags.Network.FiberIncreaseRateLimit, "epsilon: max tolerated fiber-count growth over baseline")
	f.BoolVar(&runFlags.Network.FiberUnification, "fiber-unification", runFlags.Network.FiberUnification, "use the deterministic shortest path instead of a random tie-break when selecting a bypass route")
	f.IntVar(&runFlags.Network.MeanTrials, "mean-trials", runFlags.Network.MeanTrials, "number of independent trials run in best mode")
	f.StringVar(&runFlags.Traffic.DistributionPath, "traffic-matrix", runFlags.Traffic.DistributionPath, "optional CSV traffic-matrix file; omitted means a uniform matrix")
}

func runDesign() error {
	if err := runFlags.Validate(); err != nil {
		return err
	}

	path := topologyPath
	if path == "" {
		path = fmt.Sprintf("./files/topology/%s.txt", runFlags.Network.Topology)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("layernet: opening topology file %q: %w", path, err)
	}
	defer f.Close()

	linkMatrix, err := topology.LoadLinkMatrix(f)
	if err != nil {
		return err
	}
	topo, err := topology.New(runFlags.Network.Topology, linkMatrix)
	if err != nil {
		return err
	}

	log.Printf("[  INFO ] running %s over topology %q (%d nodes, %d edges), policy=%s, %s",
		runFlags.Network.DesignMode, topo.Name, topo.NodeCount(), len(topo.Edges),
		runFlags.Policy.RoutingPolicy, runFlags.Network.NodeConfiguration.Describe())

	result, err := designer.Run(runFlags, topo)
	if err != nil {
		return err
	}

	if err := report.SaveAll(runFlags.Simulation.OutDir, result.Network, topo, result.Demands); err != nil {
		return err
	}

	log.Printf("[  INFO ] wrote reporting artifacts to %s", runFlags.Simulation.OutDir)
	return nil
}
