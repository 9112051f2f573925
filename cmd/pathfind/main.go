// Command pathfind searches robot maps stored as edge-list / node-CSV
// pairs with BFS, DFS or A*, runs YAML scenarios of such searches, and
// generates synthetic maps in the same format.
//
//	pathfind search --data-dir data --id 01 --algo astar --heuristic euclidean --from N_0 --to N_24
//	pathfind run scenario.yaml --parallel 4
//	pathfind generate grid --rows 10 --cols 10 --out data --id 02
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
