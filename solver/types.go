// SPDX-License-Identifier: MIT
// Package solver: sentinel error set, options and the common capability
// interface. All solver failures are these sentinels (or those of package
// route); tests match via errors.Is.

package solver

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/optiroute/lp"
	"github.com/katalvlaran/optiroute/route"
)

var (
	// ErrInfeasible - the exact solver proved that no valid route exists
	// under the instance's arcs and mode.
	ErrInfeasible = errors.New("solver: no feasible route")

	// ErrTimeout - the exact solver exceeded its configured budget
	// (wall-clock time limit or backend node limit).
	ErrTimeout = errors.New("solver: time budget exceeded")

	// ErrInterrupted - the surrounding context was canceled while the
	// backend was running.
	ErrInterrupted = errors.New("solver: interrupted")

	// ErrDeadEnd - the greedy walk reached a location with no defined arc
	// toward any remaining target. Myopic by nature: a dead end does not
	// prove the instance infeasible.
	ErrDeadEnd = errors.New("solver: greedy walk dead-ended")

	// ErrClosedTerminal - Options.ClosedCycle was requested for a terminal
	// instance; terminal routes cannot close.
	ErrClosedTerminal = errors.New("solver: closed cycle incompatible with terminal instance")

	// ErrBackend - the LP backend returned a result the formulation cannot
	// interpret (unexpected status or a non-route assignment).
	ErrBackend = errors.New("solver: backend returned an unusable result")
)

// Options configures both solvers. The zero value is a valid default:
// open-path routes, start at the first location (or the instance start
// terminal), no time budget, pure-Go branch-and-bound backend.
type Options struct {
	// Start overrides the starting location for visit-all instances.
	// Empty means "first location". Ignored for terminal instances, which
	// carry their own start.
	Start route.Location

	// ClosedCycle asks for a cycle (return to start) instead of an open
	// path. Valid for visit-all instances only.
	ClosedCycle bool

	// TimeLimit caps the exact solver's wall-clock time; 0 means no limit.
	// On expiry MILP.Solve returns ErrTimeout. Greedy ignores it.
	TimeLimit time.Duration

	// Backend is the MILP engine; nil selects lp.NewBranchBound().
	Backend lp.Backend
}

// DefaultOptions returns the documented defaults (the zero value, spelled
// out for call-site readability).
func DefaultOptions() Options { return Options{} }

// Solver is the common capability contract both strategies satisfy.
type Solver interface {
	Solve(ctx context.Context, inst *route.Instance) (route.Solution, error)
}

// backendOf resolves the effective backend.
func backendOf(o Options) lp.Backend {
	if o.Backend != nil {
		return o.Backend
	}

	return lp.NewBranchBound()
}

// startIndexOf resolves the effective start index for inst under o.
// Terminal instances always use their own start terminal.
func startIndexOf(inst *route.Instance, o Options) (int, error) {
	if inst.TerminalMode() {
		s, _ := inst.TerminalIndexes()

		return s, nil
	}
	if o.Start == "" {
		return 0, nil
	}
	i, ok := inst.IndexOf(o.Start)
	if !ok {
		return 0, route.ErrUnknownLocation
	}

	return i, nil
}
