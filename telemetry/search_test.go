package telemetry_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Psrit/TilegameAI/astar"
	"github.com/Psrit/TilegameAI/gridworld"
	"github.com/Psrit/TilegameAI/telemetry"
)

func TestSearch_Instrumented(t *testing.T) {
	_, start, goal, err := gridworld.ParseMap(strings.NewReader("S..\n.#.\n..G\n"), gridworld.Conn4)
	require.NoError(t, err)

	cfg := telemetry.DefaultMetricsConfig()
	cfg.Registry = prometheus.NewRegistry()
	metrics, err := telemetry.NewMetrics(cfg)
	require.NoError(t, err)

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	inst := telemetry.Instrumentation{Metrics: metrics, Tracer: telemetry.NewTracer(tp), Logger: logger}
	res, err := telemetry.Search[gridworld.Cell, gridworld.Move](context.Background(), inst, "grid",
		start, gridworld.Goal(goal), gridworld.Manhattan(goal))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 4.0, res.Cost)

	require.Len(t, sr.Ended(), 1)
	out := buf.String()
	assert.Contains(t, out, "astar search finished")
	assert.Contains(t, out, "search finished")
	assert.Contains(t, out, "domain=grid")
	assert.Contains(t, out, "result=found")
}

func TestSearch_NoSinks(t *testing.T) {
	_, start, goal, err := gridworld.ParseMap(strings.NewReader("S#G\n"), gridworld.Conn4)
	require.NoError(t, err)

	res, err := telemetry.Search[gridworld.Cell, gridworld.Move](context.Background(), telemetry.Instrumentation{}, "grid",
		start, gridworld.Goal(goal), gridworld.Manhattan(goal))
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestSearch_PropagatesCancellation(t *testing.T) {
	_, start, goal, err := gridworld.ParseMap(strings.NewReader("S..G\n"), gridworld.Conn4)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = telemetry.Search[gridworld.Cell, gridworld.Move](ctx, telemetry.Instrumentation{}, "grid",
		start, gridworld.Goal(goal), gridworld.Manhattan(goal), astar.WithMaxExpansions(10))
	require.ErrorIs(t, err, context.Canceled)
}
