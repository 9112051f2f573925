package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathfind/scenario"
)

func (a *app) newRunCmd() *cobra.Command {
	var parallel, maxExpansions int
	cmd := &cobra.Command{
		Use:   "run SCENARIO.yaml",
		Short: "Run every query of a scenario file",
		Long: `Run every query of a scenario file and print one line per query.

Queries of all cases run concurrently on shared read-only maps; output
keeps the order of the file. The command fails if any query failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			reports, err := scenario.Run(cmd.Context(), cfg,
				scenario.WithParallelism(parallel),
				scenario.WithMaxExpansions(maxExpansions),
				scenario.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range reports {
				if r.Err != nil {
					failed++
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d queries failed", failed, len(reports))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&parallel, "parallel", 0, "concurrent queries (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&maxExpansions, "max-expansions", 0, "abort each A* query after this many expansions (0 = unlimited)")

	return cmd
}
