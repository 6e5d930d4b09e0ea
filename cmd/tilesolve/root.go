package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/Psrit/TilegameAI/config"
	"github.com/Psrit/TilegameAI/logging"
	"github.com/Psrit/TilegameAI/telemetry"
)

// errUnreachable is returned by commands whose search finished without
// reaching the goal.
var errUnreachable = errors.New("goal unreachable")

// app carries state shared by every subcommand of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string
	logFormat  string
	trace      bool

	cfg      config.Config
	logger   *slog.Logger
	tracer   trace.TracerProvider // nil means the global provider
	shutdown []func(context.Context) error
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut, cfg: config.Default(), logger: logging.Discard()}
}

// close releases what setup acquired.
func (a *app) close(ctx context.Context) error {
	var errs []error
	for _, fn := range a.shutdown {
		errs = append(errs, fn(ctx))
	}
	a.shutdown = nil
	return errors.Join(errs...)
}

func (a *app) rootCmd() *cobra.Command {

	root := &cobra.Command{
		Use:   "tilesolve",
		Short: "Solve sliding-tile puzzles and grid maps with A* search",
		Long: `tilesolve scrambles a solved sliding-tile board with random moves and
solves it again, or finds the cheapest route through a text grid map.

Settings come from defaults, then the --config file, then flags.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (default from config)")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json (default from config)")
	pf.BoolVar(&a.trace, "trace", false, "write search spans to stderr as JSON")

	root.AddCommand(a.newSolveCmd(), a.newGridCmd(), a.newReachCmd())
	return root
}

// setup loads the configuration and builds the logger. Every record of
// one invocation carries the same run_id.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}

	logger, err := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  a.errOut,
		Service: "tilesolve",
	})
	if err != nil {
		return err
	}
	if a.trace {
		tp, err := telemetry.NewWriterTracerProvider(a.errOut)
		if err != nil {
			return err
		}
		a.tracer = tp
		a.shutdown = append(a.shutdown, tp.Shutdown)
	}
	a.cfg = cfg
	a.logger = logger.With(slog.String("run_id", uuid.NewString()))
	a.logger.Debug("configuration loaded",
		slog.String("config", a.configPath),
		slog.String("command", cmd.Name()),
	)
	return nil
}
