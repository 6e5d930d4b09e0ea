package telemetry

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Psrit/TilegameAI/astar"
)

func TestOutcome_Result(t *testing.T) {
	cases := []struct {
		name string
		o    Outcome
		want string
	}{
		{"Found", Outcome{Found: true}, ResultFound},
		{"Unreachable", Outcome{}, ResultUnreachable},
		{"Limit", Outcome{Err: fmt.Errorf("%w: 10", astar.ErrExpansionLimit)}, ResultLimit},
		{"Cancelled", Outcome{Err: fmt.Errorf("stopped: %w", context.Canceled)}, ResultCancelled},
		{"Deadline", Outcome{Err: context.DeadlineExceeded}, ResultCancelled},
		{"Other", Outcome{Err: errors.New("boom")}, ResultError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.o.Result())
		})
	}
}

func TestOutcomeOf_NilResult(t *testing.T) {
	o := outcomeOf[int, int]("grid", nil, astar.ErrNilGoal, 0)
	assert.Equal(t, ResultError, o.Result())
	assert.Zero(t, o.Expanded)
}
