// Command tilesolve scrambles and solves sliding-tile puzzles and finds
// shortest routes through text grid maps, both with A* search.
//
// Usage:
//
//	tilesolve solve [--rows 3 --cols 3 --steps 40 --seed 7 --heuristic manhattan]
//	tilesolve grid [--diagonal] <map-file>
//	tilesolve reach [--rows 3 --cols 3 --max-depth 10]
//
// Exit status is 0 when a goal was reached, 2 when it is unreachable and
// 1 on any other error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitUnreachable = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line in args and maps the outcome to an exit code.
func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	a := newApp(out, errOut)
	root := a.rootCmd()
	root.SetArgs(args)
	err := errors.Join(root.ExecuteContext(ctx), a.close(context.WithoutCancel(ctx)))
	if err == nil {
		return exitOK
	}
	fmt.Fprintln(errOut, "tilesolve:", err)
	if errors.Is(err, errUnreachable) {
		return exitUnreachable
	}
	return exitError
}
