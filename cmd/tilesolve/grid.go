package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Psrit/TilegameAI/gridworld"
	"github.com/Psrit/TilegameAI/telemetry"
)

func (a *app) newGridCmd() *cobra.Command {
	var (
		sf       searchFlags
		diagonal bool
	)
	cmd := &cobra.Command{
		Use:   "grid <map-file>",
		Short: "Find the cheapest route from S to G in a text map",
		Long: `grid reads a map where '.' is open, '#' is a wall, 'S' and 'G' mark the
start and goal, and the digits 1-9 are open cells costing that much to enter.
Manhattan distance guides the search, or Chebyshev with --diagonal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			sf.apply(cmd.Flags(), &cfg.Search)
			if err := cfg.Validate(); err != nil {
				return err
			}

			conn := gridworld.Conn4
			if diagonal {
				conn = gridworld.Conn8
			}
			fh, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer fh.Close()
			grid, start, goal, err := gridworld.ParseMap(fh, conn)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if !grid.Connected(start, goal) {
				a.logger.Debug("start and goal lie in different components",
					slog.String("start", start.String()),
					slog.String("goal", goal.String()),
				)
			}

			inst, registry, err := a.instrument()
			if err != nil {
				return err
			}
			res, err := telemetry.Search[gridworld.Cell, gridworld.Move](
				cmd.Context(), inst, "gridworld", start, gridworld.Goal(goal), gridworld.HeuristicFor(goal),
				searchOptions(cfg.Search)...)
			if sf.metrics {
				defer func() {
					if werr := writeMetrics(a.out, registry); werr != nil {
						a.logger.Error("metrics output failed", slog.Any("error", werr))
					}
				}()
			}
			if err != nil {
				return fmt.Errorf("grid: %w", err)
			}
			if !res.Found {
				return fmt.Errorf("%s to %s: %w", start, goal, errUnreachable)
			}

			fmt.Fprintf(a.out, "route %s to %s: %d moves (cost %g, %d cells expanded)\n",
				start, goal, len(res.Actions), res.Cost, res.Expanded)
			fmt.Fprintln(a.out, joinActions(res.Actions))
			return nil
		},
	}

	fs := cmd.Flags()
	sf.register(fs)
	fs.BoolVar(&diagonal, "diagonal", false, "allow diagonal moves")
	return cmd
}
