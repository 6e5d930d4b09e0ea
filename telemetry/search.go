package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/Psrit/TilegameAI/astar"
	"github.com/Psrit/TilegameAI/state"
)

// Instrumentation bundles the sinks Search reports to. Nil fields are skipped.
type Instrumentation struct {
	Metrics *Metrics
	Tracer  *Tracer
	Logger  *slog.Logger
}

// Search runs astar.Search inside a span and records its outcome.
// ctx (carrying the span) is handed to the engine through astar.WithContext
// ahead of opts, so a later WithContext in opts still wins. Logger, when
// set, is handed over the same way.
func Search[S state.State[S, A], A any](
	ctx context.Context,
	inst Instrumentation,
	domain string,
	initial S,
	goal astar.GoalFunc[S],
	h astar.Heuristic[S],
	opts ...astar.Option,
) (*astar.Result[S, A], error) {
	var finish func(Outcome)
	if inst.Tracer != nil {
		spanCtx, span := inst.Tracer.Start(ctx, domain)
		ctx = spanCtx
		finish = func(o Outcome) { inst.Tracer.Finish(span, o) }
	}

	all := make([]astar.Option, 0, len(opts)+2)
	all = append(all, astar.WithContext(ctx))
	if inst.Logger != nil {
		all = append(all, astar.WithLogger(inst.Logger.With(slog.String("domain", domain))))
	}
	all = append(all, opts...)

	start := time.Now()
	res, err := astar.Search[S, A](initial, goal, h, all...)
	o := outcomeOf(domain, res, err, time.Since(start))

	if inst.Metrics != nil {
		inst.Metrics.Observe(o)
	}
	if finish != nil {
		finish(o)
	}
	if inst.Logger != nil {
		inst.Logger.LogAttrs(ctx, slog.LevelInfo, "search finished",
			slog.String("domain", domain),
			slog.String("result", o.Result()),
			slog.Int("expanded", o.Expanded),
			slog.Int("path_length", o.PathLength),
			slog.Float64("cost", o.Cost),
			slog.Duration("took", o.Duration),
		)
	}

	return res, err
}
