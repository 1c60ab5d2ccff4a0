// Package lp - deterministic branch-and-bound driver.
//
// The driver is engine-agnostic: node relaxations go through the relaxSolver
// interface (gonum simplex or HiGHS). Search policy, kept deliberately
// simple and fully deterministic:
//
//   - depth-first, explicit stack (no recursion);
//   - branch on the most fractional integer variable (fraction closest to
//     one half; smallest index on ties);
//   - the floor child is explored before the ceil child;
//   - prune when the relaxation bound cannot beat the incumbent by more
//     than pruneEps.
//
// The context is checked once per node: nodes are dominated by a simplex
// solve, so per-node checks cost nothing measurable and keep cancellation
// latency at one relaxation.

package lp

import (
	"context"
	"math"
)

const (
	// defaultIntTol is the integrality tolerance: a value within intTol of
	// an integer counts as integral.
	defaultIntTol = 1e-6

	// pruneEps guards the incumbent comparison against FP noise.
	pruneEps = 1e-9
)

// BranchBound is an exact MILP backend: branch-and-bound over LP
// relaxations. Zero MaxNodes means "no node budget".
type BranchBound struct {
	// IntTol is the integrality tolerance (defaultIntTol when 0).
	IntTol float64

	// MaxNodes caps the number of explored nodes; on exhaustion Solve
	// returns StatusNodeLimit with the best incumbent found so far.
	MaxNodes int

	relax relaxSolver
}

// NewBranchBound returns the pure-Go backend (gonum simplex relaxations).
func NewBranchBound() *BranchBound {
	return &BranchBound{IntTol: defaultIntTol, relax: gonumRelaxation{}}
}

// NewBranchBoundHiGHS returns the HiGHS-backed variant: the identical search
// with node relaxations delegated to HiGHS via gohighs.
func NewBranchBoundHiGHS() *BranchBound {
	return &BranchBound{IntTol: defaultIntTol, relax: highsRelaxation{}}
}

// bbNode is one open node: the branching bounds it was created with.
type bbNode struct {
	lower []float64
	upper []float64
}

// Solve implements Backend.
//
// Outcomes:
//   - StatusOptimal: incumbent proven optimal (tree exhausted);
//   - StatusInfeasible: tree exhausted without any integral assignment;
//   - StatusUnbounded: the root relaxation is unbounded;
//   - StatusNodeLimit: MaxNodes exhausted (incumbent attached when found);
//   - ctx.Err() when the context expires or is canceled mid-search.
func (bb *BranchBound) Solve(ctx context.Context, m *Model) (*Result, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	var (
		n      = len(m.vars)
		intTol = bb.IntTol
		i      int
	)
	if intTol <= 0 {
		intTol = defaultIntTol
	}

	// Root bounds come straight from the model.
	root := bbNode{lower: make([]float64, n), upper: make([]float64, n)}
	for i = 0; i < n; i++ {
		root.lower[i] = m.vars[i].Lower
		root.upper[i] = m.vars[i].Upper
	}

	var (
		stack    = []bbNode{root}
		bestObj  = math.Inf(1)
		bestVals []float64
		nodes    int
		hitLimit bool
		nd       bbNode
		rel      *relaxed
		err      error
	)
	for len(stack) > 0 {
		// Cancellation first: one relaxation of latency at most.
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
		if bb.MaxNodes > 0 && nodes >= bb.MaxNodes {
			hitLimit = true
			break
		}
		nodes++

		// Pop (LIFO -> depth-first).
		nd = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		rel, err = bb.relax.relax(m, nd.lower, nd.upper)
		if err != nil {
			return nil, err
		}
		switch rel.status {
		case StatusInfeasible:
			continue
		case StatusUnbounded:
			// Only possible at the root of a well-formed model.
			return &Result{Status: StatusUnbounded}, nil
		case StatusOptimal:
			// fall through to bounding/branching
		default:
			return nil, ErrNumeric
		}

		// Bound: the relaxation is a lower bound on every descendant.
		if bestVals != nil && rel.objective >= bestObj-pruneEps {
			continue
		}

		// Branch variable: most fractional integer column.
		branchVar := pickBranchVar(m, rel.values, intTol)
		if branchVar < 0 {
			// Integral: new incumbent.
			if rel.objective < bestObj {
				bestObj = rel.objective
				bestVals = snapIntegers(m, rel.values)
			}
			continue
		}

		// Push ceil first so the floor child is explored first.
		val := rel.values[branchVar]
		ceil := nd.clone()
		ceil.lower[branchVar] = math.Ceil(val)
		stack = append(stack, ceil)

		floor := nd.clone()
		floor.upper[branchVar] = math.Floor(val)
		stack = append(stack, floor)
	}

	if hitLimit {
		res := &Result{Status: StatusNodeLimit}
		if bestVals != nil {
			res.Objective = bestObj
			res.Values = bestVals
		}
		return res, nil
	}
	if bestVals == nil {
		return &Result{Status: StatusInfeasible}, nil
	}

	return &Result{Status: StatusOptimal, Objective: bestObj, Values: bestVals}, nil
}

// clone copies the node bounds for a child.
func (n bbNode) clone() bbNode {
	c := bbNode{lower: make([]float64, len(n.lower)), upper: make([]float64, len(n.upper))}
	copy(c.lower, n.lower)
	copy(c.upper, n.upper)

	return c
}

// pickBranchVar returns the integer column whose value is farthest from
// integrality (closest to x.5), or -1 when the assignment is integral.
// Smallest index wins ties, keeping the search deterministic.
func pickBranchVar(m *Model, values []float64, intTol float64) int {
	var (
		best     = -1
		bestDist = math.Inf(1) // distance of the fraction from one half
		i        int
		frac     float64
		dist     float64
	)
	for i = range m.vars {
		if !m.vars[i].Integer {
			continue
		}
		frac = values[i] - math.Floor(values[i])
		if frac <= intTol || frac >= 1-intTol {
			continue // integral within tolerance
		}
		dist = math.Abs(frac - 0.5)
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	return best
}

// snapIntegers rounds integer columns of an integral relaxation (they are
// within the integrality tolerance already) and copies the rest verbatim.
func snapIntegers(m *Model, values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	for i := range m.vars {
		if m.vars[i].Integer {
			out[i] = math.Round(out[i])
		}
	}

	return out
}
