package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadOccupancy parses a text occupancy grid, one row per line. '.' and
// ' ' are free (0), '#' is a wall (1), and a digit stands for its value.
// Blank lines are skipped; rows may differ in length (the builder rejects
// ragged grids).
func ReadOccupancy(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			switch {
			case ch == '.' || ch == ' ':
				row = append(row, 0)
			case ch == '#':
				row = append(row, 1)
			case ch >= '0' && ch <= '9':
				row = append(row, int(ch-'0'))
			default:
				return nil, fmt.Errorf("%w: line %d: column %d: cell %q", ErrMalformedRecord, line, col+1, ch)
			}
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	return grid, nil
}
