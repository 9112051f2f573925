package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfind/logging"
)

// app carries state shared by all subcommands.
type app struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "pathfind",
		Short: "Search robot maps with BFS, DFS and A*",
		Long: `pathfind loads undirected robot maps (an a,b,w edge list plus a
node,x,y coordinate file) and finds routes between vertices.

Subcommands:
  search    - run one query
  run       - run every query of a YAML scenario
  generate  - write a synthetic map`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			var json bool
			switch strings.ToLower(a.logFormat) {
			case "text":
			case "json":
				json = true
			default:
				return fmt.Errorf("unknown --log-format %q (want text or json)", a.logFormat)
			}
			a.logger = logging.New(logging.Config{
				Level:   level,
				JSON:    json,
				Output:  cmd.ErrOrStderr(),
				Service: "pathfind",
			})

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(a.newSearchCmd(), a.newRunCmd(), a.newGenerateCmd())

	return root
}
