package demand

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// loadTrafficMatrix parses a CSV file of non-negative floats, one row per
// line, into a square traffic-distribution matrix. Malformed or missing
// fields are skipped rather than erroring, mirroring the reference
// implementation's filter_map-based parse: a ragged or noisy source file
// still yields a best-effort matrix instead of aborting the whole run.
func loadTrafficMatrix(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		row := make([]float64, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				continue
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTrafficMatrix
	}
	return rows, nil
}

// uniformTrafficMatrix returns a nodeCount x nodeCount matrix of 1.0 off the
// diagonal and 0.0 on it (no self-traffic), the fallback used when no
// distribution file is configured.
func uniformTrafficMatrix(nodeCount int) [][]float64 {
	m := make([][]float64, nodeCount)
	for i := range m {
		m[i] = make([]float64, nodeCount)
		for j := range m[i] {
			if i != j {
				m[i][j] = 1.0
			}
		}
	}
	return m
}

// normalizeTrafficMatrix scales m in place so its total sums to
// intensity*N*(N-1), the same target the reference implementation's
// normalize_traffic_distribution_matrix enforces regardless of the input
// matrix's own scale.
func normalizeTrafficMatrix(m [][]float64, intensity float64) {
	var sum float64
	for _, row := range m {
		for _, v := range row {
			sum += v
		}
	}
	if sum == 0 {
		return
	}
	n := float64(len(m))
	target := intensity * n * (n - 1)
	scale := target / sum
	for _, row := range m {
		for i := range row {
			row[i] *= scale
		}
	}
}

// findMinArrival returns the (src, dst) indices of the smallest entry in
// table, the next pair whose demand should be generated. Ties break toward
// the first row-major occurrence, matching the reference's linear scan.
func findMinArrival(table [][]int) (int, int) {
	minRow, minCol := 0, 0
	minVal := table[0][0]
	for i, row := range table {
		for j, v := range row {
			if v < minVal {
				minVal, minRow, minCol = v, i, j
			}
		}
	}
	return minRow, minCol
}
