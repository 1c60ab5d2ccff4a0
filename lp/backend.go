package lp

import "context"

// Status classifies the outcome of a Solve call.
type Status int

const (
	// StatusOptimal - a proven optimal integer assignment was found.
	StatusOptimal Status = iota

	// StatusInfeasible - the model admits no feasible assignment.
	StatusInfeasible

	// StatusUnbounded - the objective is unbounded below.
	StatusUnbounded

	// StatusNodeLimit - the node budget ran out. Result.Values carries the
	// best incumbent found so far, if any (Values == nil otherwise).
	StatusNodeLimit
)

// String implements fmt.Stringer for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusNodeLimit:
		return "node-limit"
	default:
		return "unknown"
	}
}

// Result is a backend's answer: status, objective value and one value per
// model variable (integer variables are snapped to exact integers).
type Result struct {
	Status    Status
	Objective float64
	Values    []float64
}

// Backend solves a Model. Implementations must be deterministic for a fixed
// model, must treat the model as read-only, and must honor ctx: when the
// context is done the call returns ctx.Err() promptly instead of running on.
type Backend interface {
	Solve(ctx context.Context, m *Model) (*Result, error)
}

// relaxed is the outcome of a single LP relaxation solve.
type relaxed struct {
	status    Status // StatusOptimal / StatusInfeasible / StatusUnbounded
	objective float64
	values    []float64
}

// relaxSolver abstracts the LP engine used for node relaxations, so the same
// branch-and-bound driver runs on gonum's simplex or on HiGHS. lower/upper
// are the branching bounds of the current node (len == NumVariables).
type relaxSolver interface {
	relax(m *Model, lower, upper []float64) (*relaxed, error)
}
