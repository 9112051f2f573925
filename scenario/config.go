package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfind/heuristic"
	"github.com/katalvlaran/pathfind/loader"
)

// Sentinel errors for scenario files.
var (
	// ErrInvalidScenario is wrapped by every Validate failure.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm.
	ErrUnknownAlgorithm = errors.New("scenario: unknown algorithm")
)

// Algorithm names a search engine.
type Algorithm string

// Supported algorithms.
const (
	BFS   Algorithm = "bfs"
	DFS   Algorithm = "dfs"
	AStar Algorithm = "astar"
)

// ParseAlgorithm accepts "bfs", "dfs", "astar" and "a*".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "bfs", "BFS":
		return BFS, nil
	case "dfs", "DFS":
		return DFS, nil
	case "astar", "a*", "A*", "ASTAR":
		return AStar, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Weighted reports whether a reads edge weights.
func (a Algorithm) Weighted() bool { return a == AStar }

// Label is the upper-case name used in report sentences.
func (a Algorithm) Label() string {
	switch a {
	case AStar:
		return "A*"
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	}

	return string(a)
}

// DefaultAlgorithms is used when a case lists none.
var DefaultAlgorithms = []Algorithm{BFS, DFS, AStar}

// DefaultHeuristics is used for A* when a case lists none.
var DefaultHeuristics = []string{"chebyshev", "euclidean", "manhattan"}

// Case is one map plus one start/goal query.
type Case struct {
	ID         string      `yaml:"id"`
	Start      string      `yaml:"start"`
	Goal       string      `yaml:"goal"`
	Algorithms []Algorithm `yaml:"algorithms,omitempty"`
	Heuristics []string    `yaml:"heuristics,omitempty"`

	// EdgeFile and NodeFile override the TestCase_<id>_* defaults.
	// Relative paths are resolved against DataDir.
	EdgeFile string `yaml:"edge_file,omitempty"`
	NodeFile string `yaml:"node_file,omitempty"`
}

// Paths returns the case's edge and node files under dataDir.
func (c Case) Paths(dataDir string) (edgePath, nodePath string) {
	edgePath, nodePath = loader.CasePaths(dataDir, c.ID)
	if c.EdgeFile != "" {
		edgePath = resolve(dataDir, c.EdgeFile)
	}
	if c.NodeFile != "" {
		nodePath = resolve(dataDir, c.NodeFile)
	}

	return edgePath, nodePath
}

// Config is a parsed scenario file.
type Config struct {
	DataDir string `yaml:"data_dir"`
	Cases   []Case `yaml:"cases"`
}

// Load reads and validates the scenario at path. A relative data_dir is
// resolved against the directory holding the file; unknown keys are errors.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("scenario: decode %s: %w", path, err)
	}
	cfg.DataDir = resolve(filepath.Dir(path), cfg.DataDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every case and fills in default algorithms and heuristics.
// Heuristic names are normalised to their canonical lower-case form.
func (cfg *Config) Validate() error {
	if len(cfg.Cases) == 0 {
		return fmt.Errorf("%w: no cases", ErrInvalidScenario)
	}
	seen := make(map[string]bool, len(cfg.Cases))
	for i := range cfg.Cases {
		c := &cfg.Cases[i]
		switch {
		case c.ID == "":
			return fmt.Errorf("%w: case %d has no id", ErrInvalidScenario, i)
		case seen[c.ID]:
			return fmt.Errorf("%w: duplicate case id %q", ErrInvalidScenario, c.ID)
		case c.Start == "" || c.Goal == "":
			return fmt.Errorf("%w: case %q needs start and goal", ErrInvalidScenario, c.ID)
		}
		seen[c.ID] = true

		if len(c.Algorithms) == 0 {
			c.Algorithms = append([]Algorithm(nil), DefaultAlgorithms...)
		}
		for j, a := range c.Algorithms {
			parsed, err := ParseAlgorithm(string(a))
			if err != nil {
				return fmt.Errorf("%w: case %q: %w", ErrInvalidScenario, c.ID, err)
			}
			c.Algorithms[j] = parsed
		}

		if len(c.Heuristics) == 0 {
			c.Heuristics = append([]string(nil), DefaultHeuristics...)
		}
		for j, h := range c.Heuristics {
			if _, err := heuristic.ByName(h); err != nil {
				return fmt.Errorf("%w: case %q: %w", ErrInvalidScenario, c.ID, err)
			}
			c.Heuristics[j] = canonical(h)
		}
	}

	return nil
}

// resolve joins rel onto base unless rel is absolute.
func resolve(base, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}

	return filepath.Join(base, rel)
}
