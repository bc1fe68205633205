package topology

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadLinkMatrix parses a CSV-of-0/1 adjacency matrix from r: one line per
// node, one comma-separated 0/1 value per destination node. The matrix is
// interpreted as a directed adjacency matrix: row i, column j set means an
// edge i->j exists. It is the sole contract with the topology-file external
// collaborator named in the specification; this function does not resolve
// a filename or apply a naming convention, only parses bytes already read.
func LoadLinkMatrix(r io.Reader) ([][]bool, error) {
	scanner := bufio.NewScanner(r)
	var rows [][]bool
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		row := make([]bool, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("topology: parsing link matrix row %d col %d: %w", len(rows), i, err)
			}
			row[i] = v != 0
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("topology: reading link matrix: %w", err)
	}
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("topology: link matrix row %d has %d columns, want %d (matrix must be square)", i, len(row), n)
		}
	}
	return rows, nil
}
