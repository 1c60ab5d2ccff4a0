// Package solver - comparator/reporter.

package solver

import (
	"context"

	"github.com/katalvlaran/optiroute/route"
)

// Report is the outcome of running both strategies on one instance.
// Each side is reported independently: a nil Solution pairs with a non-nil
// error and vice versa, so a failure on one side still leaves the other
// side's result usable (partial report).
type Report struct {
	// MILP is the exact solution, nil when MILPErr is set.
	MILP *route.Solution

	// Greedy is the heuristic solution, nil when GreedyErr is set.
	Greedy *route.Solution

	// MILPErr and GreedyErr carry the per-strategy failure reason.
	MILPErr   error
	GreedyErr error

	// Gap is greedy total minus exact total, >= 0 by construction since the
	// exact side is optimal. Populated only when both sides succeeded.
	Gap float64
}

// Complete reports whether both strategies produced a solution.
func (r Report) Complete() bool { return r.MILPErr == nil && r.GreedyErr == nil }

// Compare runs the exact and the greedy strategy sequentially on the same
// read-only instance and aggregates both outcomes. Neither strategy's
// failure aborts the other; the only error Compare itself returns is
// route.ErrNilInstance.
//
// Complexity: MILP dominates; greedy adds O(n^2).
func Compare(ctx context.Context, inst *route.Instance, opts Options) (Report, error) {
	if inst == nil {
		return Report{}, route.ErrNilInstance
	}

	var rep Report

	if sol, err := NewMILP(opts).Solve(ctx, inst); err != nil {
		rep.MILPErr = err
	} else {
		rep.MILP = &sol
	}
	if sol, err := NewGreedy(opts).Solve(ctx, inst); err != nil {
		rep.GreedyErr = err
	} else {
		rep.Greedy = &sol
	}

	if rep.Complete() {
		rep.Gap = route.Round(rep.Greedy.TotalDistance - rep.MILP.TotalDistance)
	}

	return rep, nil
}
