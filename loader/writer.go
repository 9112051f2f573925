package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/pathfind/core"
)

// formatFloat uses the shortest representation that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteEdges writes records as a,b,w lines, in order.
func WriteEdges(w io.Writer, records []core.EdgeRecord) error {
	cw := csv.NewWriter(w)
	for _, r := range records {
		if err := cw.Write([]string{r.From, r.To, formatFloat(r.Weight)}); err != nil {
			return fmt.Errorf("loader: write edge %s,%s: %w", r.From, r.To, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCoordinates writes node,x,y lines. order lists the vertices to write;
// when it is empty every vertex is written in sorted ID order.
func WriteCoordinates(w io.Writer, coords core.Coordinates, order ...string) error {
	if len(order) == 0 {
		order = coords.IDs()
	}
	cw := csv.NewWriter(w)
	for _, id := range order {
		p, err := coords.Lookup(id)
		if err != nil {
			return fmt.Errorf("loader: %w", err)
		}
		if err := cw.Write([]string{id, formatFloat(p.X()), formatFloat(p.Y())}); err != nil {
			return fmt.Errorf("loader: write node %s: %w", id, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
