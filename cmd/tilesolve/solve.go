package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Psrit/TilegameAI/telemetry"
	"github.com/Psrit/TilegameAI/tilegame"
)

func (a *app) newSolveCmd() *cobra.Command {
	var (
		pf        puzzleFlags
		sf        searchFlags
		heuristic string
		replay    bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Scramble a solved board and solve it again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			fs := cmd.Flags()
			pf.apply(fs, &cfg.Puzzle)
			sf.apply(fs, &cfg.Search)
			if fs.Changed("heuristic") {
				cfg.Puzzle.Heuristic = heuristic
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			goal, initial, walk, seed, err := scramble(cfg.Puzzle)
			if err != nil {
				return err
			}
			h, err := tilegame.ParseHeuristic(cfg.Puzzle.Heuristic, goal)
			if err != nil {
				return err
			}
			puzzle, err := tilegame.NewPuzzle(initial, goal)
			if err != nil {
				return err
			}
			inst, registry, err := a.instrument()
			if err != nil {
				return err
			}

			a.logger.Info("board scrambled",
				slog.Int("rows", cfg.Puzzle.Rows),
				slog.Int("cols", cfg.Puzzle.Cols),
				slog.Int64("seed", seed),
				slog.Int("shuffle_moves", len(walk)),
				slog.String("heuristic", cfg.Puzzle.Heuristic),
			)
			fmt.Fprintf(a.out, "initial board (%d shuffle moves, seed %d):\n%s\n\n", len(walk), seed, initial)

			res, err := telemetry.Search[tilegame.Board, tilegame.Direction](
				cmd.Context(), inst, "tilegame", puzzle.Initial(), puzzle.Goal(), h, searchOptions(cfg.Search)...)
			if sf.metrics {
				defer func() {
					if werr := writeMetrics(a.out, registry); werr != nil {
						a.logger.Error("metrics output failed", slog.Any("error", werr))
					}
				}()
			}
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			if !res.Found {
				return errUnreachable
			}

			fmt.Fprintf(a.out, "solved in %d moves (cost %g, %d states expanded)\n", len(res.Actions), res.Cost, res.Expanded)
			fmt.Fprintln(a.out, joinActions(res.Actions))
			if !replay {
				return nil
			}
			boards, err := puzzle.Initial().Replay(res.Actions)
			if err != nil {
				return err
			}
			for i, b := range boards {
				fmt.Fprintf(a.out, "\nstep %d:\n%s\n", i, b)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	pf.register(fs)
	sf.register(fs)
	fs.StringVar(&heuristic, "heuristic", tilegame.HeuristicManhattan, "heuristic: manhattan, misplaced or zero")
	fs.BoolVar(&replay, "replay", false, "print every board along the solution")
	return cmd
}
