package demand

import (
	"log"
	"math"

	"github.com/optrans/layernet/config"
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/internal/rng"
	"github.com/optrans/layernet/statematrix"
	"github.com/optrans/layernet/topology"
)

// lambdaC is the Poisson rate used for both a demand's own duration and the
// next-arrival interval for its (src, dst) pair, in ticks^-1.
const lambdaC = 1.0 / 3000.0

// Synthesize builds the full demand list for one designer run: a traffic
// matrix (uniform, or loaded from p.Traffic.DistributionPath), normalized to
// the configured intensity, walked by repeatedly picking the (src, dst) pair
// with the earliest pending arrival and drawing a Poisson-distributed
// duration and next-arrival interval for it. The result is already sorted by
// StartTime (each generation round's newly-created demand always carries the
// table's current minimum).
func Synthesize(p config.Params, topo *topology.Topology) ([]Demand, error) {
	checkTrafficIntensity(p, topo)

	nodeCount := topo.NodeCount()
	matrix, err := loadOrUniformMatrix(p, nodeCount)
	if err != nil {
		return nil, err
	}
	normalizeTrafficMatrix(matrix, p.Simulation.TrafficIntensity)

	arrival := make([][]int, nodeCount)
	for i := range arrival {
		arrival[i] = make([]int, nodeCount)
		for j := range arrival[i] {
			if matrix[i][j] == 0 {
				arrival[i][j] = math.MaxInt
			}
		}
	}

	r := rng.New(p.Simulation.RandomSeed)
	pathNum := int(p.Simulation.TrafficIntensity * float64(nodeCount) * float64(nodeCount-1))
	demands := make([]Demand, 0, pathNum)

	for index := 0; index < pathNum; index++ {
		src, dst := findMinArrival(arrival)
		start := arrival[src][dst]
		intensity := matrix[src][dst]
		duration := rng.PoissonInterval(r, lambdaC)

		demands = append(demands, New(ids.NewSD(ids.Node(src), ids.Node(dst)), index, start, duration))

		interval := rng.PoissonInterval(r, intensity*lambdaC)
		arrival[src][dst] += interval
	}

	return demands, nil
}

func loadOrUniformMatrix(p config.Params, nodeCount int) ([][]float64, error) {
	if p.Traffic.DistributionPath == "" {
		return uniformTrafficMatrix(nodeCount), nil
	}
	return loadTrafficMatrix(p.Traffic.DistributionPath)
}

// checkTrafficIntensity warns when the configured intensity can't keep a
// single-fiber-per-link plant fulfilled on average, mirroring the
// reference's get_demand_list sanity check.
func checkTrafficIntensity(p config.Params, topo *topology.Topology) {
	nodeCount := topo.NodeCount()
	if nodeCount < 2 {
		return
	}
	avgHops := topo.AverageShortestHops()
	if avgHops == 0 {
		return
	}
	normalized := (float64(len(topo.Edges)) * float64(statematrix.Slots)) /
		(float64(nodeCount) * float64(nodeCount-1) * avgHops)

	if normalized > p.Simulation.TrafficIntensity {
		log.Printf("[WARNING] traffic intensity %.2f is too low to fulfill fibers on links when a link has one fiber", p.Simulation.TrafficIntensity)
		log.Printf("[  INFO ] normalized traffic intensity is %.2f", normalized)
	}
}
