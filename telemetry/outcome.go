package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/Psrit/TilegameAI/astar"
)

// Result labels.
const (
	ResultFound       = "found"
	ResultUnreachable = "unreachable"
	ResultLimit       = "limit"
	ResultCancelled   = "cancelled"
	ResultError       = "error"
)

// Outcome is the type-erased summary of one search.
type Outcome struct {
	Domain     string
	Found      bool
	Expanded   int
	Reopened   int
	PathLength int
	Cost       float64
	Duration   time.Duration
	Err        error
}

// Result classifies the outcome into one of the Result* labels.
func (o Outcome) Result() string {
	switch {
	case o.Err == nil && o.Found:
		return ResultFound
	case o.Err == nil:
		return ResultUnreachable
	case errors.Is(o.Err, astar.ErrExpansionLimit):
		return ResultLimit
	case errors.Is(o.Err, context.Canceled), errors.Is(o.Err, context.DeadlineExceeded):
		return ResultCancelled
	default:
		return ResultError
	}
}

// outcomeOf summarizes res, which may be nil on validation errors.
func outcomeOf[S any, A any](domain string, res *astar.Result[S, A], err error, took time.Duration) Outcome {
	o := Outcome{Domain: domain, Duration: took, Err: err}
	if res != nil {
		o.Found = res.Found
		o.Expanded = res.Expanded
		o.Reopened = res.Reopened
		o.PathLength = len(res.Actions)
		o.Cost = res.Cost
	}
	return o
}
