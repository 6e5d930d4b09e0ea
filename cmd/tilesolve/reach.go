package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Psrit/TilegameAI/bfs"
	"github.com/Psrit/TilegameAI/tilegame"
)

// defaultMaxVisits keeps reach from enumerating the 10^13 states of a 4×4
// board by accident.
const defaultMaxVisits = 1_000_000

func (a *app) newReachCmd() *cobra.Command {
	var (
		pf        puzzleFlags
		maxDepth  int
		maxVisits int
	)
	cmd := &cobra.Command{
		Use:   "reach",
		Short: "Count the boards reachable from a scrambled board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			pf.apply(cmd.Flags(), &cfg.Puzzle)
			if err := cfg.Validate(); err != nil {
				return err
			}

			goal, initial, _, seed, err := scramble(cfg.Puzzle)
			if err != nil {
				return err
			}
			res, err := bfs.BFS[tilegame.Board, tilegame.Direction](initial,
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxDepth(maxDepth),
				bfs.WithMaxVisits(maxVisits),
			)
			if err != nil {
				return fmt.Errorf("reach: %w", err)
			}

			a.logger.Info("reachability counted",
				slog.Int64("seed", seed),
				slog.Int("discovered", res.Len()),
				slog.Int("visited", len(res.Order)),
				slog.Bool("truncated", res.Truncated),
			)
			fmt.Fprintf(a.out, "initial board (seed %d):\n%s\n\n", seed, initial)
			fmt.Fprintf(a.out, "reachable boards: %d (visited %d", res.Len(), len(res.Order))
			if res.Truncated {
				fmt.Fprint(a.out, ", truncated")
			}
			fmt.Fprintln(a.out, ")")

			depth, ok := res.Depth(goal)
			if !ok {
				fmt.Fprintln(a.out, "solved board not reached")
				return nil
			}
			fmt.Fprintf(a.out, "solved board at depth %d\n", depth)
			return nil
		},
	}

	fs := cmd.Flags()
	pf.register(fs)
	fs.IntVar(&maxDepth, "max-depth", 0, "stop exploring beyond this many moves (0 = unlimited)")
	fs.IntVar(&maxVisits, "max-visits", defaultMaxVisits, "stop after visiting this many boards (0 = unlimited)")
	return cmd
}
