package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"

	"github.com/Psrit/TilegameAI/astar"
	"github.com/Psrit/TilegameAI/config"
	"github.com/Psrit/TilegameAI/telemetry"
	"github.com/Psrit/TilegameAI/tilegame"
)

// puzzleFlags are the board flags shared by solve and reach.
type puzzleFlags struct {
	rows  int
	cols  int
	steps int
	seed  int64
}

func (f *puzzleFlags) register(fs *pflag.FlagSet) {
	d := config.Default().Puzzle
	fs.IntVar(&f.rows, "rows", d.Rows, "board rows")
	fs.IntVar(&f.cols, "cols", d.Cols, "board columns")
	fs.IntVar(&f.steps, "steps", d.ShuffleSteps, "random blank moves used to scramble the board")
	fs.Int64Var(&f.seed, "seed", d.Seed, "shuffle seed (0 picks one from the clock)")
}

// apply copies explicitly set flags over cfg.
func (f *puzzleFlags) apply(fs *pflag.FlagSet, cfg *config.PuzzleConfig) {
	if fs.Changed("rows") {
		cfg.Rows = f.rows
	}
	if fs.Changed("cols") {
		cfg.Cols = f.cols
	}
	if fs.Changed("steps") {
		cfg.ShuffleSteps = f.steps
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
}

// searchFlags are the engine flags shared by solve and grid.
type searchFlags struct {
	maxExpansions int
	timeout       time.Duration
	reopen        bool
	metrics       bool
}

func (f *searchFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.maxExpansions, "max-expansions", 0, "stop after this many expanded states (0 = unlimited)")
	fs.DurationVar(&f.timeout, "timeout", 0, "stop the search after this long (0 = none)")
	fs.BoolVar(&f.reopen, "reopen", false, "re-expand states reached again by a cheaper path")
	fs.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics after the search")
}

func (f *searchFlags) apply(fs *pflag.FlagSet, cfg *config.SearchConfig) {
	if fs.Changed("max-expansions") {
		cfg.MaxExpansions = f.maxExpansions
	}
	if fs.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if fs.Changed("reopen") {
		cfg.Reopen = f.reopen
	}
}

// searchOptions translates cfg into engine options.
func searchOptions(cfg config.SearchConfig) []astar.Option {
	opts := []astar.Option{astar.WithMaxExpansions(cfg.MaxExpansions)}
	if cfg.Timeout > 0 {
		opts = append(opts, astar.WithTimeout(cfg.Timeout))
	}
	if cfg.Reopen {
		opts = append(opts, astar.WithReopen())
	}
	return opts
}

// instrument wires metrics into a private registry, tracing through the
// --trace provider (or the global one) and logging through the app logger.
func (a *app) instrument() (telemetry.Instrumentation, *prometheus.Registry, error) {
	registry := prometheus.NewRegistry()
	mcfg := telemetry.DefaultMetricsConfig()
	mcfg.Registry = registry
	metrics, err := telemetry.NewMetrics(mcfg)
	if err != nil {
		return telemetry.Instrumentation{}, nil, err
	}
	return telemetry.Instrumentation{
		Metrics: metrics,
		Tracer:  telemetry.NewTracer(a.tracer),
		Logger:  a.logger,
	}, registry, nil
}

// writeMetrics prints every gathered family in the text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

// scramble shuffles the solved board described by cfg. A zero seed is
// replaced by one taken from the clock; the seed used is returned so the
// run can be repeated.
func scramble(cfg config.PuzzleConfig) (goal, initial tilegame.Board, walk []tilegame.Direction, seed int64, err error) {
	goal, err = tilegame.NewBoard(cfg.Rows, cfg.Cols)
	if err != nil {
		return goal, initial, nil, 0, err
	}
	seed = cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	initial, walk, err = goal.Shuffle(rand.New(rand.NewSource(seed)), cfg.ShuffleSteps)
	return goal, initial, walk, seed, err
}

// joinActions renders a path as space-separated action names.
func joinActions[A fmt.Stringer](actions []A) string {
	if len(actions) == 0 {
		return "(none)"
	}
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return strings.Join(names, " ")
}
